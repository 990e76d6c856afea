package queue

import (
	"reflect"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	msg := Message{
		Kind:          KindInterviewScheduled,
		InterviewID:   "iv-123",
		To:            "priya.sharma@example.com",
		Subject:       "Interview Scheduled",
		CandidateName: "Priya Sharma",
		Details:       map[string]string{"date": "2030-01-02", "time": "10:00 AM", "type": "remote"},
		RequestID:     "request-456",
		EnqueuedAt:    "2026-01-30T22:00:00Z",
		Version:       MessageVersion,
	}

	payload, err := EncodeMessage(msg)
	if err != nil {
		t.Fatalf("encode message: %v", err)
	}

	got, err := DecodeMessage(payload)
	if err != nil {
		t.Fatalf("decode message: %v", err)
	}

	if !reflect.DeepEqual(got, msg) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, msg)
	}
}

func TestDecodeMessageInvalidJSON(t *testing.T) {
	if _, err := DecodeMessage([]byte(`not json`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

package interviews

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workwise-backend/internal/queue"
)

type fakeQueue struct {
	sent []queue.Message
}

func (f *fakeQueue) Send(ctx context.Context, msg queue.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

func sampleNotification() Notification {
	return NotificationFor(Interview{
		ID:             "iv-1",
		CandidateID:    "1",
		CandidateName:  "Priya Sharma",
		CandidateEmail: "priya.sharma@example.com",
		Company:        "Acme",
		Type:           TypeRemote,
		Date:           "2030-03-20",
		Time:           "10:00 AM",
		MeetingLink:    "https://meet.google.com/abcdefgh",
	})
}

func TestWebhookNotifierPostsJSON(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected request %s %s", r.Method, r.Header.Get("Content-Type"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	if err := NewWebhookNotifier(srv.URL).Notify(context.Background(), sampleNotification()); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if got["to"] != "priya.sharma@example.com" || got["subject"] != "Interview Scheduled" || got["candidateName"] != "Priya Sharma" {
		t.Fatalf("unexpected payload %v", got)
	}
	if got["type"] != "remote" || got["location"] != "https://meet.google.com/abcdefgh" {
		t.Fatalf("unexpected details %v", got)
	}
}

func TestWebhookNotifierFailsOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if err := NewWebhookNotifier(srv.URL).Notify(context.Background(), sampleNotification()); err == nil {
		t.Fatalf("expected error on 502")
	}
	if err := NewWebhookNotifier("").Notify(context.Background(), sampleNotification()); err == nil {
		t.Fatalf("expected error without url")
	}
}

func TestQueueNotifierRoundTrip(t *testing.T) {
	q := &fakeQueue{}
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	n := sampleNotification()
	if err := (&QueueNotifier{Queue: q, Now: func() time.Time { return at }}).Notify(context.Background(), n); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(q.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(q.sent))
	}
	msg := q.sent[0]
	if msg.Kind != queue.KindInterviewScheduled || msg.EnqueuedAt != "2030-01-01T00:00:00Z" || msg.Version != queue.MessageVersion {
		t.Fatalf("unexpected message envelope %+v", msg)
	}
	if back := NotificationFromMessage(msg); back != n {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, n)
	}
}

package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"workwise-backend/internal/interviews"
	"workwise-backend/internal/queue"
	"workwise-backend/internal/shared/telemetry"
)

type fakeSQS struct {
	deleted []string
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return &sqs.ReceiveMessageOutput{}, nil
}

func (f *fakeSQS) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

type fakeNotifier struct {
	err  error
	sent []interviews.Notification
}

func (f *fakeNotifier) Notify(ctx context.Context, n interviews.Notification) error {
	f.sent = append(f.sent, n)
	return f.err
}

func quiet(t *testing.T) {
	t.Helper()
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(nil) })
}

func scheduledMessage(t *testing.T, id string) sqstypes.Message {
	t.Helper()
	body, err := queue.EncodeMessage(queue.Message{
		Kind:          queue.KindInterviewScheduled,
		InterviewID:   id,
		To:            "priya.sharma@example.com",
		Subject:       interviews.NotificationSubject,
		CandidateName: "Priya Sharma",
		Details:       map[string]string{"date": "2030-03-20", "time": "10:00 AM", "type": "remote"},
		RequestID:     "req-" + id,
		Version:       queue.MessageVersion,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return sqstypes.Message{
		MessageId:     aws.String("m-" + id),
		ReceiptHandle: aws.String("r-" + id),
		Body:          aws.String(string(body)),
		Attributes:    map[string]string{"ApproximateReceiveCount": "1"},
	}
}

func TestWorkerDeletesMessageOnDelivery(t *testing.T) {
	quiet(t)
	client := &fakeSQS{}
	notifier := &fakeNotifier{}

	handleMessage(context.Background(), client, "queue", notifier, scheduledMessage(t, "iv-1"))

	if len(client.deleted) != 1 || client.deleted[0] != "r-iv-1" {
		t.Fatalf("expected delete of r-iv-1, got %v", client.deleted)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	got := notifier.sent[0]
	if got.InterviewID != "iv-1" || got.To != "priya.sharma@example.com" || got.Time != "10:00 AM" {
		t.Fatalf("unexpected notification: %+v", got)
	}
}

func TestWorkerKeepsMessageOnDeliveryFailure(t *testing.T) {
	quiet(t)
	client := &fakeSQS{}
	notifier := &fakeNotifier{err: errors.New("webhook status 502")}

	handleMessage(context.Background(), client, "queue", notifier, scheduledMessage(t, "iv-2"))

	if len(client.deleted) != 0 {
		t.Fatalf("expected no delete, got %d", len(client.deleted))
	}
}

func TestWorkerDropsUnprocessableMessages(t *testing.T) {
	quiet(t)
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "{bad-json"},
		{name: "empty body", body: "   "},
		{name: "missing interview id", body: `{"kind":"interview.scheduled","to":"a@example.com"}`},
		{name: "unknown kind", body: `{"kind":"analysis.requested","interviewId":"iv-3"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeSQS{}
			notifier := &fakeNotifier{}
			msg := sqstypes.Message{
				MessageId:     aws.String("m"),
				ReceiptHandle: aws.String("r"),
				Body:          aws.String(tc.body),
			}

			handleMessage(context.Background(), client, "queue", notifier, msg)

			if len(client.deleted) != 1 {
				t.Fatalf("expected delete, got %d", len(client.deleted))
			}
			if len(notifier.sent) != 0 {
				t.Fatalf("expected no delivery, got %d", len(notifier.sent))
			}
		})
	}
}

func TestReceiveCount(t *testing.T) {
	if got := receiveCount(sqstypes.Message{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	msg := sqstypes.Message{Attributes: map[string]string{"ApproximateReceiveCount": "3"}}
	if got := receiveCount(msg); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("WORKER_CONCURRENCY", "8")
	if got := envInt("WORKER_CONCURRENCY", 4); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	t.Setenv("WORKER_CONCURRENCY", "many")
	if got := envInt("WORKER_CONCURRENCY", 4); got != 4 {
		t.Fatalf("expected default, got %d", got)
	}
}

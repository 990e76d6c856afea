package interviews

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"workwise-backend/internal/queue"
	"workwise-backend/internal/shared/telemetry"
)

// NotificationSubject is the subject line of every interview notification.
const NotificationSubject = "Interview Scheduled"

// Notification tells a candidate about a scheduled interview.
type Notification struct {
	InterviewID   string `json:"interviewId"`
	To            string `json:"to"`
	Subject       string `json:"subject"`
	CandidateName string `json:"candidateName"`
	CandidateID   string `json:"candidateId"`
	Company       string `json:"company,omitempty"`
	Position      string `json:"position,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Type          Type   `json:"type"`
	Location      string `json:"location"`
}

// Notifier delivers interview notifications. Callers treat failures as
// non-fatal.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotificationFor builds the notification for iv. Location carries the
// meeting link for remote interviews.
func NotificationFor(iv Interview) Notification {
	location := iv.Location
	if iv.Type == TypeRemote {
		location = iv.MeetingLink
	}
	return Notification{
		InterviewID:   iv.ID,
		To:            iv.CandidateEmail,
		Subject:       NotificationSubject,
		CandidateName: iv.CandidateName,
		CandidateID:   iv.CandidateID,
		Company:       iv.Company,
		Position:      iv.Position,
		Date:          iv.Date,
		Time:          iv.Time,
		Type:          iv.Type,
		Location:      location,
	}
}

// LogNotifier only logs notifications.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n Notification) error {
	telemetry.Info("interviews.notify", map[string]any{
		"interview_id": n.InterviewID,
		"to":           n.To,
		"date":         n.Date,
		"time":         n.Time,
	})
	return nil
}

// WebhookNotifier POSTs notifications as JSON to URL.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{URL: url, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (w *WebhookNotifier) Notify(ctx context.Context, n Notification) error {
	if strings.TrimSpace(w.URL) == "" {
		return fmt.Errorf("webhook url not configured")
	}
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}

// QueueNotifier hands notifications to the queue for the worker to deliver.
type QueueNotifier struct {
	Queue queue.Client
	Now   func() time.Time
}

func (q *QueueNotifier) Notify(ctx context.Context, n Notification) error {
	now := time.Now
	if q.Now != nil {
		now = q.Now
	}
	return q.Queue.Send(ctx, MessageFor(n, now()))
}

// MessageFor wraps a notification in a queue message.
func MessageFor(n Notification, at time.Time) queue.Message {
	return queue.Message{
		Kind:          queue.KindInterviewScheduled,
		InterviewID:   n.InterviewID,
		To:            n.To,
		Subject:       n.Subject,
		CandidateName: n.CandidateName,
		Details: map[string]string{
			"candidateId": n.CandidateID,
			"company":     n.Company,
			"position":    n.Position,
			"date":        n.Date,
			"time":        n.Time,
			"type":        string(n.Type),
			"location":    n.Location,
		},
		EnqueuedAt: at.UTC().Format(time.RFC3339),
		Version:    queue.MessageVersion,
	}
}

// NotificationFromMessage reverses MessageFor.
func NotificationFromMessage(msg queue.Message) Notification {
	d := msg.Details
	return Notification{
		InterviewID:   msg.InterviewID,
		To:            msg.To,
		Subject:       msg.Subject,
		CandidateName: msg.CandidateName,
		CandidateID:   d["candidateId"],
		Company:       d["company"],
		Position:      d["position"],
		Date:          d["date"],
		Time:          d["time"],
		Type:          Type(d["type"]),
		Location:      d["location"],
	}
}

var (
	_ Notifier = LogNotifier{}
	_ Notifier = (*WebhookNotifier)(nil)
	_ Notifier = (*QueueNotifier)(nil)
)

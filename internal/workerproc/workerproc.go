// Package workerproc decodes queued interview notifications and delivers
// them. It is shared by the long-poll worker and the Lambda SQS handler.
package workerproc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"workwise-backend/internal/interviews"
	"workwise-backend/internal/queue"
)

// MessageMeta captures details useful for logging and diagnostics.
type MessageMeta struct {
	BodyLen int
	BodySHA string
}

// ComputeMeta returns the body length and SHA-256 hash.
func ComputeMeta(body string) MessageMeta {
	if body == "" {
		return MessageMeta{}
	}
	sum := sha256.Sum256([]byte(body))
	return MessageMeta{BodyLen: len(body), BodySHA: hex.EncodeToString(sum[:])}
}

// ErrEmptyBody indicates an empty queue payload.
type ErrEmptyBody struct {
	Meta MessageMeta
}

func (e ErrEmptyBody) Error() string { return "empty message body" }

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Meta MessageMeta
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode message"
	}
	return "decode message: " + e.Err.Error()
}

// ErrMissingInterviewID indicates a message without an interview id.
type ErrMissingInterviewID struct {
	Meta      MessageMeta
	RequestID string
}

func (e ErrMissingInterviewID) Error() string { return "missing interview id" }

// ErrUnknownKind indicates a message this worker does not handle.
type ErrUnknownKind struct {
	Kind string
}

func (e ErrUnknownKind) Error() string { return "unknown message kind: " + e.Kind }

// ErrDeliver indicates delivery failed after successful parsing. These are
// the only failures worth retrying.
type ErrDeliver struct {
	InterviewID string
	RequestID   string
	Err         error
}

func (e ErrDeliver) Error() string {
	if e.Err == nil {
		return "deliver notification"
	}
	return "deliver notification: " + e.Err.Error()
}

func (e ErrDeliver) Unwrap() error { return e.Err }

// Retryable reports whether err came from delivery rather than from a
// payload that will never parse.
func Retryable(err error) bool {
	var deliver ErrDeliver
	return errors.As(err, &deliver)
}

// ParseMessage validates and decodes the queue payload.
func ParseMessage(body string) (queue.Message, MessageMeta, error) {
	meta := ComputeMeta(body)
	if strings.TrimSpace(body) == "" {
		return queue.Message{}, meta, ErrEmptyBody{Meta: meta}
	}

	msg, err := queue.DecodeMessage([]byte(body))
	if err != nil {
		return queue.Message{}, meta, ErrDecode{Meta: meta, Err: err}
	}
	if msg.Kind != "" && msg.Kind != queue.KindInterviewScheduled {
		return msg, meta, ErrUnknownKind{Kind: msg.Kind}
	}
	if strings.TrimSpace(msg.InterviewID) == "" {
		return msg, meta, ErrMissingInterviewID{Meta: meta, RequestID: msg.RequestID}
	}
	return msg, meta, nil
}

type parsedMessageKey struct{}

// WithParsedMessage stores a decoded message in the context for reuse.
func WithParsedMessage(ctx context.Context, msg queue.Message) context.Context {
	return context.WithValue(ctx, parsedMessageKey{}, msg)
}

func parsedMessageFromContext(ctx context.Context) (queue.Message, bool) {
	if ctx == nil {
		return queue.Message{}, false
	}
	msg, ok := ctx.Value(parsedMessageKey{}).(queue.Message)
	return msg, ok
}

// HandleMessage parses the payload, unless a parsed message is already in
// ctx, and delivers it through notifier.
func HandleMessage(ctx context.Context, notifier interviews.Notifier, body string) error {
	if notifier == nil {
		return errors.New("notifier not configured")
	}

	msg, ok := parsedMessageFromContext(ctx)
	if !ok {
		var err error
		msg, _, err = ParseMessage(body)
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(msg.InterviewID) == "" {
		return ErrMissingInterviewID{Meta: ComputeMeta(body), RequestID: msg.RequestID}
	}

	if err := notifier.Notify(ctx, interviews.NotificationFromMessage(msg)); err != nil {
		return ErrDeliver{InterviewID: msg.InterviewID, RequestID: msg.RequestID, Err: err}
	}
	return nil
}

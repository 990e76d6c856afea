// Package queue carries interview notifications from the API to the
// notification worker.
package queue

import "context"

// Client sends messages to a queue backend.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

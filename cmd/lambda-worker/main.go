package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=amd64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-worker

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"workwise-backend/internal/interviews"
	"workwise-backend/internal/shared/config"
	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/telemetry"
	"workwise-backend/internal/workerproc"
)

var (
	initOnce sync.Once
	notifier interviews.Notifier
)

func initNotifier() {
	cfg := config.Load()
	if strings.TrimSpace(cfg.NotifyWebhookURL) == "" {
		notifier = interviews.LogNotifier{}
		return
	}
	notifier = interviews.NewWebhookNotifier(cfg.NotifyWebhookURL)
}

func handler(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	initOnce.Do(initNotifier)
	return process(ctx, notifier, event), nil
}

// process reports only retryable delivery failures back to SQS. Payloads
// that can never be decoded are logged and acknowledged.
func process(ctx context.Context, n interviews.Notifier, event events.SQSEvent) events.SQSEventResponse {
	failures := make([]events.SQSBatchItemFailure, 0)
	for _, record := range event.Records {
		metrics.IncWorkerReceived()
		err := workerproc.HandleMessage(ctx, n, record.Body)
		if err == nil {
			metrics.IncWorkerDelivered()
			continue
		}
		fields := map[string]any{
			"sqs_message_id": record.MessageId,
			"error":          err.Error(),
		}
		if workerproc.Retryable(err) {
			telemetry.Error("worker.notification.failed", fields)
			metrics.IncNotificationsFailed()
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}
		telemetry.Error("worker.notification.dropped", fields)
		metrics.IncWorkerDropped()
	}
	return events.SQSEventResponse{BatchItemFailures: failures}
}

func main() {
	lambda.Start(handler)
}

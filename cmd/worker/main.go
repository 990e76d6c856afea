package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"workwise-backend/internal/interviews"
	"workwise-backend/internal/queue"
	"workwise-backend/internal/shared/config"
	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/telemetry"
	"workwise-backend/internal/workerproc"
)

const (
	defaultVisibilitySeconds  = 300
	defaultWorkerConcurrency  = 4
	defaultShutdownTimeoutSec = 30
)

func main() {
	cfg := config.Load()

	queueURL := strings.TrimSpace(cfg.NotifyQueueURL)
	if queueURL == "" {
		telemetry.Error("worker.config_invalid", map[string]any{"error": "NOTIFY_SQS_QUEUE_URL is required"})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	visibilitySeconds := envInt("WORKER_VISIBILITY_TIMEOUT_SECONDS", defaultVisibilitySeconds)
	concurrency := envInt("WORKER_CONCURRENCY", defaultWorkerConcurrency)
	shutdownTimeout := time.Duration(envInt("WORKER_SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownTimeoutSec)) * time.Second

	awsCfg, err := queue.LoadAWSConfig(ctx)
	if err != nil {
		telemetry.Error("worker.aws_config_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	var sqsClient sqsAPI = sqs.NewFromConfig(awsCfg)
	notifier := buildNotifier(cfg)

	sem := make(chan struct{}, max(1, concurrency))
	var wg sync.WaitGroup

	telemetry.Info("worker.started", map[string]any{
		"queue_url":          queueURL,
		"concurrency":        concurrency,
		"visibility_seconds": visibilitySeconds,
	})

pollLoop:
	for {
		select {
		case <-ctx.Done():
			break pollLoop
		default:
		}

		resp, err := sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20,
			VisibilityTimeout:   int32(visibilitySeconds),
			AttributeNames:      []sqstypes.QueueAttributeName{sqstypes.QueueAttributeName("ApproximateReceiveCount")},
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				break pollLoop
			}
			telemetry.Warn("worker.receive_failed", map[string]any{"error": err.Error()})
			continue
		}

		for _, msg := range resp.Messages {
			select {
			case <-ctx.Done():
				break pollLoop
			case sem <- struct{}{}:
			}
			metrics.IncWorkerReceived()
			wg.Add(1)
			go func(m sqstypes.Message) {
				defer wg.Done()
				defer func() { <-sem }()
				handleMessage(ctx, sqsClient, queueURL, notifier, m)
			}(msg)
		}
	}

	telemetry.Info("worker.shutdown_requested", map[string]any{"timeout": shutdownTimeout.String()})
	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(shutdownTimeout):
		telemetry.Warn("worker.shutdown_timeout", map[string]any{"timeout": shutdownTimeout.String()})
	}
}

// buildNotifier delivers through the webhook when one is configured and
// falls back to logging otherwise.
func buildNotifier(cfg config.Config) interviews.Notifier {
	if strings.TrimSpace(cfg.NotifyWebhookURL) == "" {
		telemetry.Warn("worker.notifier_log_only", map[string]any{"reason": "NOTIFY_WEBHOOK_URL empty"})
		return interviews.LogNotifier{}
	}
	return interviews.NewWebhookNotifier(cfg.NotifyWebhookURL)
}

type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

func handleMessage(ctx context.Context, client sqsAPI, queueURL string, notifier interviews.Notifier, msg sqstypes.Message) {
	body := aws.ToString(msg.Body)

	decoded, meta, err := workerproc.ParseMessage(body)
	if err != nil {
		fields := baseFields(msg, decoded.InterviewID, decoded.RequestID)
		fields["body_len"] = meta.BodyLen
		if meta.BodySHA != "" {
			fields["body_sha256"] = meta.BodySHA
		}
		event := "worker.notification.decode_failed"
		var (
			empty   workerproc.ErrEmptyBody
			missing workerproc.ErrMissingInterviewID
			unknown workerproc.ErrUnknownKind
		)
		switch {
		case errors.As(err, &empty):
			event = "worker.notification.empty_body"
		case errors.As(err, &missing):
			event = "worker.notification.missing_id"
		case errors.As(err, &unknown):
			event = "worker.notification.unknown_kind"
			fields["kind"] = unknown.Kind
		default:
			fields["error"] = err.Error()
		}
		telemetry.Error(event, fields)
		if deleteMessage(ctx, client, queueURL, msg, decoded.InterviewID, decoded.RequestID) {
			metrics.IncWorkerDropped()
		}
		return
	}

	telemetry.Info("worker.notification.received", baseFields(msg, decoded.InterviewID, decoded.RequestID))

	ctxWithParsed := workerproc.WithParsedMessage(ctx, decoded)
	if err := workerproc.HandleMessage(ctxWithParsed, notifier, body); err != nil {
		fields := baseFields(msg, decoded.InterviewID, decoded.RequestID)
		fields["error"] = err.Error()
		telemetry.Error("worker.notification.failed", fields)
		metrics.IncNotificationsFailed()
		return
	}

	if deleteMessage(ctx, client, queueURL, msg, decoded.InterviewID, decoded.RequestID) {
		telemetry.Info("worker.notification.delivered", baseFields(msg, decoded.InterviewID, decoded.RequestID))
		metrics.IncWorkerDelivered()
	}
}

func deleteMessage(ctx context.Context, client sqsAPI, queueURL string, msg sqstypes.Message, interviewID, requestID string) bool {
	receipt := aws.ToString(msg.ReceiptHandle)
	if receipt == "" {
		fields := baseFields(msg, interviewID, requestID)
		fields["error"] = "missing receipt handle"
		telemetry.Error("worker.notification.delete_failed", fields)
		return false
	}
	if _, err := client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String(receipt),
	}); err != nil {
		fields := baseFields(msg, interviewID, requestID)
		fields["error"] = err.Error()
		telemetry.Error("worker.notification.delete_failed", fields)
		return false
	}
	return true
}

func baseFields(msg sqstypes.Message, interviewID, requestID string) map[string]any {
	fields := map[string]any{
		"interview_id":   interviewID,
		"sqs_message_id": aws.ToString(msg.MessageId),
		"receive_count":  receiveCount(msg),
	}
	if strings.TrimSpace(requestID) != "" {
		fields["request_id"] = requestID
	}
	return fields
}

func receiveCount(msg sqstypes.Message) int {
	if msg.Attributes == nil {
		return 0
	}
	raw := msg.Attributes["ApproximateReceiveCount"]
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}

package queue

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const defaultRegion = "us-east-1"

// SQSClient sends queue messages to AWS SQS.
type SQSClient struct {
	client   *sqs.Client
	queueURL string
}

// NewSQSClient constructs an SQS-backed queue client. An empty queueURL
// falls back to NOTIFY_SQS_QUEUE_URL.
func NewSQSClient(ctx context.Context, queueURL string) (*SQSClient, error) {
	queueURL = strings.TrimSpace(queueURL)
	if queueURL == "" {
		queueURL = strings.TrimSpace(os.Getenv("NOTIFY_SQS_QUEUE_URL"))
	}
	if queueURL == "" {
		return nil, fmt.Errorf("NOTIFY_SQS_QUEUE_URL is required")
	}

	awsCfg, err := LoadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &SQSClient{
		client:   sqs.NewFromConfig(awsCfg),
		queueURL: queueURL,
	}, nil
}

// LoadAWSConfig loads the default AWS config using AWS_REGION, or
// us-east-1 when unset.
func LoadAWSConfig(ctx context.Context) (aws.Config, error) {
	region := strings.TrimSpace(os.Getenv("AWS_REGION"))
	if region == "" {
		region = defaultRegion
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// Send delivers a message to the configured SQS queue.
func (s *SQSClient) Send(ctx context.Context, msg Message) error {
	payload, err := EncodeMessage(msg)
	if err != nil {
		return fmt.Errorf("encode sqs message: %w", err)
	}

	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(payload)),
	})
	if err != nil {
		return fmt.Errorf("sqs send message: %w", err)
	}
	return nil
}

var _ Client = (*SQSClient)(nil)

// Package queue publishes registration events to SQS for downstream
// consumers. Publishing is best-effort: a queue failure never fails the
// registration that produced the event.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
)

// Config defines SQS connection settings
type Config struct {
	QueueURL  string
	Region    string
	AccessKey string
	SecretKey string
}

// RegistrationEvent is the message body enqueued after a registration
// completes, whether it created a new user or matched an existing one.
type RegistrationEvent struct {
	Role          string `json:"role"`
	DisplayID     string `json:"display_id"`
	UserID        string `json:"user_id"`
	AuthGroup     string `json:"auth_group"`
	AlreadyExists bool   `json:"already_exists"`
}

// Publisher sends registration events. The zero-value-config publisher is a
// no-op so deployments without a queue need no special casing.
type Publisher struct {
	client   *sqs.Client
	queueURL string
}

// NewPublisher creates an SQS publisher. An empty queue URL disables
// publishing.
func NewPublisher(ctx context.Context, cfg Config) (*Publisher, error) {
	if cfg.QueueURL == "" {
		logger.Info().Msg("SQS queue URL not configured, registration events disabled")
		return &Publisher{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Publisher{
		client:   sqs.NewFromConfig(awsCfg),
		queueURL: cfg.QueueURL,
	}, nil
}

// Enabled reports whether events will actually be sent.
func (p *Publisher) Enabled() bool {
	return p.client != nil
}

// PublishRegistration enqueues a registration event. Errors are logged and
// swallowed.
func (p *Publisher) PublishRegistration(ctx context.Context, event RegistrationEvent) {
	if p.client == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode registration event")
		return
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		logger.Error().Err(err).
			Str("display_id", event.DisplayID).
			Msg("failed to publish registration event")
		return
	}

	logger.Debug().
		Str("role", event.Role).
		Str("display_id", event.DisplayID).
		Msg("registration event published")
}

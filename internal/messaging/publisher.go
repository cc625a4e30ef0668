// Package messaging publishes resolution events to RabbitMQ for downstream
// consumers (analytics, notifications). Publishing is best effort.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	publishTimeout  = 10 * time.Second
	publishAttempts = 3
	appID           = "wealth-sprint"
)

// EventPublisher - исходящие события движка.
type EventPublisher interface {
	PublishDecisionResolved(ctx context.Context, event DecisionResolvedEvent) error
	PublishScenarioResolved(ctx context.Context, event ScenarioResolvedEvent) error
}

// amqpChannel - часть *amqp.Channel, нужная паблишеру.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type rabbitMQPublisher struct {
	channel   amqpChannel
	queueName string
	logger    *zap.Logger
}

var _ EventPublisher = (*rabbitMQPublisher)(nil)

// NewRabbitMQPublisher открывает канал и объявляет очередь событий.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (EventPublisher, func() error, error) {
	log := logger.Named("EventPublisher")
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("event publisher: failed to open channel: %w", err)
	}
	if _, err = ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, nil, fmt.Errorf("event publisher: failed to declare queue '%s': %w", queueName, err)
	}
	log.Info("Event queue declared", zap.String("queue", queueName))
	p := &rabbitMQPublisher{channel: ch, queueName: queueName, logger: log}
	return p, ch.Close, nil
}

func (p *rabbitMQPublisher) PublishDecisionResolved(ctx context.Context, event DecisionResolvedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal decision event %s: %w", event.RecordID, err)
	}
	if err := p.publishMessage(ctx, string(event.Type), body); err != nil {
		p.logger.Error("Failed to publish decision event", zap.String("recordID", event.RecordID), zap.Error(err))
		return err
	}
	return nil
}

func (p *rabbitMQPublisher) PublishScenarioResolved(ctx context.Context, event ScenarioResolvedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario event %s: %w", event.EventID, err)
	}
	if err := p.publishMessage(ctx, string(event.Type), body); err != nil {
		p.logger.Error("Failed to publish scenario event", zap.Int("scenarioID", event.ScenarioID), zap.Error(err))
		return err
	}
	return nil
}

func (p *rabbitMQPublisher) publishMessage(ctx context.Context, msgType string, body []byte) error {
	if p.channel == nil {
		return errors.New("rabbitmq channel is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	var err error
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		err = p.channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         msgType,
			Body:         body,
			Timestamp:    time.Now(),
			AppId:        appID,
		})
		if err == nil {
			p.logger.Debug("Event published", zap.String("queue", p.queueName), zap.String("type", msgType), zap.Int("attempt", attempt))
			return nil
		}
		p.logger.Warn("Publish attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			return fmt.Errorf("publish to %s: %w", p.queueName, ctx.Err())
		case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
		}
	}
	return fmt.Errorf("publish to %s after retries: %w", p.queueName, err)
}

// NopPublisher используется, когда RabbitMQ не настроен.
type NopPublisher struct{}

var _ EventPublisher = NopPublisher{}

func (NopPublisher) PublishDecisionResolved(context.Context, DecisionResolvedEvent) error { return nil }
func (NopPublisher) PublishScenarioResolved(context.Context, ScenarioResolvedEvent) error { return nil }

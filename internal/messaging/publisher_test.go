package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wealth-sprint/internal/models"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeChannel падает failures раз, затем принимает сообщения.
type fakeChannel struct {
	failures  int
	calls     int
	published []amqp.Publishing
	keys      []string
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("channel closed")
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func sampleOutcome() models.DecisionOutcome {
	return models.DecisionOutcome{
		Record: models.PlayerDecision{
			ID:               uuid.New(),
			DecisionID:       "d1_real_estate_1",
			Day:              1,
			SelectedOptionID: "d1_r1_research",
			Consequences:     models.Effects{Logic: 8, Stress: -5},
			Timestamp:        time.Now().UTC(),
			BlockchainHash:   "0xabc",
		},
		Committed: true,
	}
}

func TestPublishDecisionResolved(t *testing.T) {
	ch := &fakeChannel{}
	p := &rabbitMQPublisher{channel: ch, queueName: "events", logger: zap.NewNop()}

	outcome := sampleOutcome()
	require.NoError(t, p.PublishDecisionResolved(context.Background(), NewDecisionResolvedEvent(outcome)))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "events", ch.keys[0])
	assert.Equal(t, string(EventDecisionResolved), msg.Type)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	var got DecisionResolvedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, outcome.Record.ID.String(), got.RecordID)
	assert.Equal(t, "0xabc", got.BlockchainHash)
	assert.True(t, got.Committed)
	assert.Equal(t, models.Effects{Logic: 8, Stress: -5}, got.Consequences)
}

func TestPublishRetries(t *testing.T) {
	t.Run("Succeeds after transient failures", func(t *testing.T) {
		ch := &fakeChannel{failures: 2}
		p := &rabbitMQPublisher{channel: ch, queueName: "events", logger: zap.NewNop()}
		ev := NewScenarioResolvedEvent(models.ScenarioEvent{ID: uuid.New(), ScenarioID: 3}, models.Effects{Stress: -5})
		require.NoError(t, p.PublishScenarioResolved(context.Background(), ev))
		assert.Equal(t, 3, ch.calls)
		assert.Len(t, ch.published, 1)
	})

	t.Run("Gives up after all attempts", func(t *testing.T) {
		ch := &fakeChannel{failures: publishAttempts}
		p := &rabbitMQPublisher{channel: ch, queueName: "events", logger: zap.NewNop()}
		err := p.PublishDecisionResolved(context.Background(), NewDecisionResolvedEvent(sampleOutcome()))
		assert.Error(t, err)
		assert.Equal(t, publishAttempts, ch.calls)
	})

	t.Run("Nil channel", func(t *testing.T) {
		p := &rabbitMQPublisher{queueName: "events", logger: zap.NewNop()}
		assert.Error(t, p.PublishDecisionResolved(context.Background(), NewDecisionResolvedEvent(sampleOutcome())))
	})
}

package mocks

import (
	"context"

	"wealth-sprint/internal/messaging"

	"github.com/stretchr/testify/mock"
)

// Mock EventPublisher
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishDecisionResolved(ctx context.Context, event messaging.DecisionResolvedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventPublisher) PublishScenarioResolved(ctx context.Context, event messaging.ScenarioResolvedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

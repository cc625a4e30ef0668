package mocks

import (
	"context"

	"wealth-sprint/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock Committer
type Committer struct {
	mock.Mock
}

func (m *Committer) Commit(ctx context.Context, record models.PlayerDecision) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

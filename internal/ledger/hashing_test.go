package ledger_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"wealth-sprint/internal/ledger"
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestComputeHash(t *testing.T) {
	r := record(3, "d3_health_1", "")

	h1, err := ledger.ComputeHash(r)
	require.NoError(t, err)
	h2, err := ledger.ComputeHash(r)
	require.NoError(t, err)

	assert.Equal(t, h1, h2, "hash is a pure function of the record")
	assert.Len(t, h1, ledger.HashLength)
	assert.Equal(t, 66, ledger.HashLength)
	assert.True(t, strings.HasPrefix(h1, ledger.HashPrefix))

	t.Run("Non-identity fields do not change the hash", func(t *testing.T) {
		other := r
		other.Question = "changed"
		other.Consequences = models.Effects{Logic: 99}
		h, err := ledger.ComputeHash(other)
		require.NoError(t, err)
		assert.Equal(t, h1, h)
	})

	t.Run("Identity fields change the hash", func(t *testing.T) {
		other := r
		other.SelectedOptionID = "another"
		h, err := ledger.ComputeHash(other)
		require.NoError(t, err)
		assert.NotEqual(t, h1, h)

		other = r
		other.Timestamp = r.Timestamp.Add(time.Nanosecond)
		h, err = ledger.ComputeHash(other)
		require.NoError(t, err)
		assert.NotEqual(t, h1, h)
	})
}

func TestHashCommitter(t *testing.T) {
	ctx := context.Background()
	r := record(1, "d1_lifestyle_1", "")

	t.Run("Commit returns the record hash", func(t *testing.T) {
		c := ledger.NewHashCommitter(ledger.HashCommitterConfig{}, nil, zap.NewNop())
		hash, err := c.Commit(ctx, r)
		require.NoError(t, err)
		want, _ := ledger.ComputeHash(r)
		assert.Equal(t, want, hash)
	})

	t.Run("Failure rate 1 always fails", func(t *testing.T) {
		c := ledger.NewHashCommitter(ledger.HashCommitterConfig{FailureRate: 1}, random.New(1), zap.NewNop())
		_, err := c.Commit(ctx, r)
		assert.ErrorIs(t, err, models.ErrCommitmentFailed)
	})

	t.Run("Cancelled context during latency", func(t *testing.T) {
		c := ledger.NewHashCommitter(ledger.HashCommitterConfig{Latency: time.Hour}, nil, zap.NewNop())
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := c.Commit(cctx, r)
		assert.ErrorIs(t, err, models.ErrCommitmentFailed)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

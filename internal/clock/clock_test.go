package clock_test

import (
	"context"
	"testing"

	"wealth-sprint/internal/clock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGameDay(t *testing.T) {
	ctx := context.Background()

	t.Run("Start day is at least one", func(t *testing.T) {
		assert.Equal(t, 1, clock.New(0, zap.NewNop()).Current())
		assert.Equal(t, 5, clock.New(5, zap.NewNop()).Current())
	})

	t.Run("Advance notifies listeners in order", func(t *testing.T) {
		g := clock.New(1, zap.NewNop())
		var calls []string
		g.Subscribe(func(_ context.Context, day int) {
			calls = append(calls, "first")
			assert.Equal(t, 2, day)
			assert.Equal(t, 2, g.Current(), "listener sees the new day")
		})
		g.Subscribe(func(_ context.Context, day int) { calls = append(calls, "second") })

		assert.Equal(t, 2, g.Advance(ctx))
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("Reset does not notify", func(t *testing.T) {
		g := clock.New(3, zap.NewNop())
		notified := false
		g.Subscribe(func(context.Context, int) { notified = true })
		g.Reset(-2)
		assert.Equal(t, 1, g.Current())
		assert.False(t, notified)
	})
}

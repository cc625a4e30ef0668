package ledger_test

import (
	"context"
	"testing"
	"time"

	"wealth-sprint/internal/ledger"
	"wealth-sprint/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(day int, decisionID, hash string) models.PlayerDecision {
	return models.PlayerDecision{
		ID:               uuid.New(),
		DecisionID:       decisionID,
		Day:              day,
		SelectedOptionID: decisionID + "_opt",
		Timestamp:        time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC),
		BlockchainHash:   hash,
	}
}

func TestMemoryLedger_HistoryOrder(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemoryLedger()

	r1 := record(1, "a", "0x1")
	r2 := record(1, "b", "")
	r3 := record(2, "c", "0x3")
	for _, r := range []models.PlayerDecision{r1, r2, r3} {
		require.NoError(t, l.Append(ctx, r))
	}

	all, err := l.History(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{r3.ID, r2.ID, r1.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	day1, err := l.HistoryForDay(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{r2.ID, r1.ID}, []uuid.UUID{day1[0].ID, day1[1].ID})

	none, err := l.HistoryForDay(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryLedger_Retrieve(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemoryLedger()
	r := record(1, "a", "0xabc")
	require.NoError(t, l.Append(ctx, r))

	got, err := l.Retrieve(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = l.Retrieve(ctx, "0xmissing")
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestMemoryLedger_AppendOnly(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemoryLedger()
	r := record(1, "a", "")
	require.NoError(t, l.Append(ctx, r))

	assert.ErrorIs(t, l.Append(ctx, r), models.ErrInvalidInput, "same record twice")

	other := record(1, "b", "0xdup")
	require.NoError(t, l.Append(ctx, other))
	dup := record(1, "c", "0xdup")
	assert.ErrorIs(t, l.Append(ctx, dup), models.ErrInvalidInput, "hash reuse")
}

func TestMemoryLedger_AttachHashOnce(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemoryLedger()
	r := record(1, "a", "")
	require.NoError(t, l.Append(ctx, r))

	require.NoError(t, l.AttachHash(ctx, r.ID, "0xfirst"))
	assert.ErrorIs(t, l.AttachHash(ctx, r.ID, "0xsecond"), models.ErrHashAlreadySet)
	assert.ErrorIs(t, l.AttachHash(ctx, uuid.New(), "0xother"), models.ErrRecordNotFound)

	got, err := l.Retrieve(ctx, "0xfirst")
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	_, err = l.Retrieve(ctx, "0xsecond")
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestMemoryLedger_Reset(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewMemoryLedger()
	require.NoError(t, l.Append(ctx, record(1, "a", "0x1")))
	require.NoError(t, l.Reset(ctx))

	all, err := l.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	_, err = l.Retrieve(ctx, "0x1")
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

// Package ledger keeps the append-only history of resolved decisions and the
// simulated blockchain commitment attached to each record.
package ledger

import (
	"context"

	"wealth-sprint/internal/models"

	"github.com/google/uuid"
)

// Committer вычисляет "блокчейн"-хеш записи. Может упасть, вызывающий продолжает без хеша.
type Committer interface {
	Commit(ctx context.Context, record models.PlayerDecision) (string, error)
}

// Ledger - история решений только на добавление.
// Единственное поле, которое можно выставить после Append, - BlockchainHash, и только один раз.
type Ledger interface {
	Append(ctx context.Context, record models.PlayerDecision) error
	AttachHash(ctx context.Context, recordID uuid.UUID, hash string) error
	// Retrieve возвращает models.ErrRecordNotFound, если ни у одной записи нет такого хеша.
	Retrieve(ctx context.Context, hash string) (models.PlayerDecision, error)
	// History возвращает все записи, самые новые первыми.
	History(ctx context.Context) ([]models.PlayerDecision, error)
	HistoryForDay(ctx context.Context, day int) ([]models.PlayerDecision, error)
	// Reset - административная операция, очищает историю.
	Reset(ctx context.Context) error
}

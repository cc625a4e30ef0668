package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"wealth-sprint/internal/models"
	"wealth-sprint/internal/random"

	"go.uber.org/zap"
)

// HashPrefix - префикс хеша в стиле адресов блокчейна.
const HashPrefix = "0x"

// HashLength - длина хеша: префикс + 64 hex-символа SHA-256.
const HashLength = len(HashPrefix) + sha256.Size*2

// commitmentKey - поля, от которых зависит хеш записи.
type commitmentKey struct {
	ID               string `json:"id"`
	DecisionID       string `json:"decision_id"`
	Day              int    `json:"day"`
	SelectedOptionID string `json:"selected_option_id"`
	Timestamp        string `json:"timestamp"`
}

// ComputeHash - детерминированный хеш идентифицирующих полей записи.
func ComputeHash(record models.PlayerDecision) (string, error) {
	key := commitmentKey{
		ID:               record.ID.String(),
		DecisionID:       record.DecisionID,
		Day:              record.Day,
		SelectedOptionID: record.SelectedOptionID,
		Timestamp:        record.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("failed to serialize commitment key: %w", err)
	}
	sum := sha256.Sum256(data)
	return HashPrefix + hex.EncodeToString(sum[:]), nil
}

// HashCommitterConfig - параметры симуляции сети.
type HashCommitterConfig struct {
	Latency     time.Duration // Искусственная задержка на коммит
	FailureRate float64       // Доля коммитов, которые падают (0..1)
}

// HashCommitter - локальная имитация коммита в блокчейн.
type HashCommitter struct {
	cfg    HashCommitterConfig
	rng    random.Source
	logger *zap.Logger
}

var _ Committer = (*HashCommitter)(nil)

// NewHashCommitter создает HashCommitter. rng нужен только при FailureRate > 0.
func NewHashCommitter(cfg HashCommitterConfig, rng random.Source, logger *zap.Logger) *HashCommitter {
	if rng == nil {
		rng = random.NewSystem()
	}
	return &HashCommitter{cfg: cfg, rng: rng, logger: logger.Named("HashCommitter")}
}

// Commit ждёт симулированную задержку и возвращает хеш записи.
func (c *HashCommitter) Commit(ctx context.Context, record models.PlayerDecision) (string, error) {
	if c.cfg.Latency > 0 {
		timer := time.NewTimer(c.cfg.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", models.ErrCommitmentFailed, ctx.Err())
		case <-timer.C:
		}
	}

	if c.cfg.FailureRate > 0 && float64(c.rng.IntN(10000)) < c.cfg.FailureRate*10000 {
		c.logger.Warn("Simulated commitment failure", zap.String("recordID", record.ID.String()))
		return "", fmt.Errorf("%w: simulated network error", models.ErrCommitmentFailed)
	}

	hash, err := ComputeHash(record)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrCommitmentFailed, err)
	}
	c.logger.Debug("Decision committed", zap.String("recordID", record.ID.String()), zap.String("hash", hash))
	return hash, nil
}

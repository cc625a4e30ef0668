package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wealth-sprint/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	playerDecisionFields = `id, decision_id, day, question, selected_option_id, selected_option_text, consequences, "timestamp", blockchain_hash, ipfs_hash`

	insertPlayerDecisionQuery = `
        INSERT INTO player_decisions
            (id, decision_id, day, question, selected_option_id, selected_option_text, consequences, "timestamp", blockchain_hash, ipfs_hash)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	attachHashQuery = `
        UPDATE player_decisions SET blockchain_hash = $2
        WHERE id = $1 AND blockchain_hash IS NULL
    `
	recordExistsQuery       = `SELECT EXISTS (SELECT 1 FROM player_decisions WHERE id = $1)`
	getByHashQuery          = `SELECT ` + playerDecisionFields + ` FROM player_decisions WHERE blockchain_hash = $1`
	listHistoryQuery        = `SELECT ` + playerDecisionFields + ` FROM player_decisions ORDER BY seq DESC`
	listHistoryForDayQuery  = `SELECT ` + playerDecisionFields + ` FROM player_decisions WHERE day = $1 ORDER BY seq DESC`
	truncatePlayerDecisions = `TRUNCATE player_decisions RESTART IDENTITY`
)

// DBTX - минимальный интерфейс над pgxpool.Pool / pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Ledger = (*PgLedger)(nil)

// PgLedger - леджер в PostgreSQL. Схема - в migrations.
type PgLedger struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgLedger создает PgLedger.
func NewPgLedger(db DBTX, logger *zap.Logger) *PgLedger {
	return &PgLedger{db: db, logger: logger.Named("PgLedger")}
}

// decisionRow - строка таблицы; nullable колонки как указатели.
type decisionRow struct {
	ID                 uuid.UUID      `db:"id"`
	DecisionID         string         `db:"decision_id"`
	Day                int            `db:"day"`
	Question           string         `db:"question"`
	SelectedOptionID   string         `db:"selected_option_id"`
	SelectedOptionText string         `db:"selected_option_text"`
	Consequences       models.Effects `db:"consequences"`
	Timestamp          time.Time      `db:"timestamp"`
	BlockchainHash     *string        `db:"blockchain_hash"`
	IPFSHash           *string        `db:"ipfs_hash"`
}

func (r decisionRow) toModel() models.PlayerDecision {
	d := models.PlayerDecision{
		ID:                 r.ID,
		DecisionID:         r.DecisionID,
		Day:                r.Day,
		Question:           r.Question,
		SelectedOptionID:   r.SelectedOptionID,
		SelectedOptionText: r.SelectedOptionText,
		Consequences:       r.Consequences,
		Timestamp:          r.Timestamp.UTC(),
	}
	if r.BlockchainHash != nil {
		d.BlockchainHash = *r.BlockchainHash
	}
	if r.IPFSHash != nil {
		d.IPFSHash = *r.IPFSHash
	}
	return d
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (l *PgLedger) Append(ctx context.Context, record models.PlayerDecision) error {
	_, err := l.db.Exec(ctx, insertPlayerDecisionQuery,
		record.ID,
		record.DecisionID,
		record.Day,
		record.Question,
		record.SelectedOptionID,
		record.SelectedOptionText,
		record.Consequences,
		record.Timestamp,
		nullIfEmpty(record.BlockchainHash),
		nullIfEmpty(record.IPFSHash),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: duplicate record %s", models.ErrInvalidInput, record.ID)
		}
		l.logger.Error("Failed to append decision record", zap.String("recordID", record.ID.String()), zap.Error(err))
		return fmt.Errorf("append decision record: %w", err)
	}
	l.logger.Debug("Decision record appended", zap.String("recordID", record.ID.String()), zap.Int("day", record.Day))
	return nil
}

func (l *PgLedger) AttachHash(ctx context.Context, recordID uuid.UUID, hash string) error {
	tag, err := l.db.Exec(ctx, attachHashQuery, recordID, hash)
	if err != nil {
		l.logger.Error("Failed to attach hash", zap.String("recordID", recordID.String()), zap.Error(err))
		return fmt.Errorf("attach hash: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := l.db.QueryRow(ctx, recordExistsQuery, recordID).Scan(&exists); err != nil {
		return fmt.Errorf("check record existence: %w", err)
	}
	if !exists {
		return models.ErrRecordNotFound
	}
	return models.ErrHashAlreadySet
}

func (l *PgLedger) Retrieve(ctx context.Context, hash string) (models.PlayerDecision, error) {
	var row decisionRow
	if err := pgxscan.Get(ctx, l.db, &row, getByHashQuery, hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.PlayerDecision{}, models.ErrRecordNotFound
		}
		l.logger.Error("Failed to retrieve decision by hash", zap.String("hash", hash), zap.Error(err))
		return models.PlayerDecision{}, fmt.Errorf("retrieve decision: %w", err)
	}
	return row.toModel(), nil
}

func (l *PgLedger) History(ctx context.Context) ([]models.PlayerDecision, error) {
	return l.list(ctx, listHistoryQuery)
}

func (l *PgLedger) HistoryForDay(ctx context.Context, day int) ([]models.PlayerDecision, error) {
	return l.list(ctx, listHistoryForDayQuery, day)
}

func (l *PgLedger) Reset(ctx context.Context) error {
	if _, err := l.db.Exec(ctx, truncatePlayerDecisions); err != nil {
		l.logger.Error("Failed to reset ledger", zap.Error(err))
		return fmt.Errorf("reset ledger: %w", err)
	}
	l.logger.Warn("Ledger reset")
	return nil
}

func (l *PgLedger) list(ctx context.Context, query string, args ...any) ([]models.PlayerDecision, error) {
	var rows []decisionRow
	if err := pgxscan.Select(ctx, l.db, &rows, query, args...); err != nil {
		l.logger.Error("Failed to list decision history", zap.Error(err))
		return nil, fmt.Errorf("list decision history: %w", err)
	}
	out := make([]models.PlayerDecision, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

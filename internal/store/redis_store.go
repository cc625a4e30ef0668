package store

import (
	"context"
	"fmt"
	"sort"

	"wealth-sprint/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Compile-time checks
var (
	_ PlayerStatsStore = (*RedisStatsStore)(nil)
	_ FinancialStore   = (*RedisFinancialStore)(nil)
	_ SectorRegistry   = (*RedisSectorRegistry)(nil)
)

// Ключи Redis на игрока:
// wealth:{playerID}:stats    -> hash статов
// wealth:{playerID}:finance  -> hash финансов
// wealth:{playerID}:sectors  -> set купленных секторов
func statsKey(playerID string) string   { return fmt.Sprintf("wealth:%s:stats", playerID) }
func financeKey(playerID string) string { return fmt.Sprintf("wealth:%s:finance", playerID) }
func sectorsKey(playerID string) string { return fmt.Sprintf("wealth:%s:sectors", playerID) }

// RedisStatsStore хранит статы игрока в hash.
type RedisStatsStore struct {
	client   *redis.Client
	playerID string
	logger   *zap.Logger
}

// NewRedisStatsStore создает хранилище и записывает initial, если hash ещё не существует.
func NewRedisStatsStore(ctx context.Context, client *redis.Client, playerID string, initial models.PlayerStats, logger *zap.Logger) (*RedisStatsStore, error) {
	s := &RedisStatsStore{client: client, playerID: playerID, logger: logger.Named("RedisStatsStore")}
	fields := map[string]int{
		"emotion":    initial.Emotion,
		"stress":     initial.Stress,
		"karma":      initial.Karma,
		"logic":      initial.Logic,
		"reputation": initial.Reputation,
		"energy":     initial.Energy,
	}
	if err := seedHash(ctx, client, statsKey(playerID), fields); err != nil {
		return nil, fmt.Errorf("seed player stats: %w", err)
	}
	return s, nil
}

func (s *RedisStatsStore) Get(ctx context.Context) (models.PlayerStats, error) {
	var stats models.PlayerStats
	if err := s.client.HGetAll(ctx, statsKey(s.playerID)).Scan(&stats); err != nil {
		s.logger.Error("Failed to read player stats", zap.String("playerID", s.playerID), zap.Error(err))
		return models.PlayerStats{}, fmt.Errorf("read player stats: %w", err)
	}
	return stats, nil
}

func (s *RedisStatsStore) Update(ctx context.Context, patch models.PlayerStatsPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	values := make([]any, 0, 12)
	values = appendField(values, "emotion", patch.Emotion)
	values = appendField(values, "stress", patch.Stress)
	values = appendField(values, "karma", patch.Karma)
	values = appendField(values, "logic", patch.Logic)
	values = appendField(values, "reputation", patch.Reputation)
	values = appendField(values, "energy", patch.Energy)

	if err := s.client.HSet(ctx, statsKey(s.playerID), values...).Err(); err != nil {
		s.logger.Error("Failed to update player stats", zap.String("playerID", s.playerID), zap.Error(err))
		return fmt.Errorf("update player stats: %w", err)
	}
	s.logger.Debug("Player stats updated", zap.String("playerID", s.playerID), zap.Any("patch", patch))
	return nil
}

// RedisFinancialStore хранит финансы игрока в hash.
type RedisFinancialStore struct {
	client   *redis.Client
	playerID string
	logger   *zap.Logger
}

// NewRedisFinancialStore создает хранилище и записывает initial, если hash ещё не существует.
func NewRedisFinancialStore(ctx context.Context, client *redis.Client, playerID string, initial models.FinancialData, logger *zap.Logger) (*RedisFinancialStore, error) {
	s := &RedisFinancialStore{client: client, playerID: playerID, logger: logger.Named("RedisFinancialStore")}
	fields := map[string]int{
		"bank_balance":     initial.BankBalance,
		"in_hand_cash":     initial.InHandCash,
		"main_income":      initial.MainIncome,
		"side_income":      initial.SideIncome,
		"monthly_expenses": initial.MonthlyExpenses,
		"net_worth":        initial.NetWorth,
	}
	if err := seedHash(ctx, client, financeKey(playerID), fields); err != nil {
		return nil, fmt.Errorf("seed financial data: %w", err)
	}
	return s, nil
}

func (s *RedisFinancialStore) Get(ctx context.Context) (models.FinancialData, error) {
	var data models.FinancialData
	if err := s.client.HGetAll(ctx, financeKey(s.playerID)).Scan(&data); err != nil {
		s.logger.Error("Failed to read financial data", zap.String("playerID", s.playerID), zap.Error(err))
		return models.FinancialData{}, fmt.Errorf("read financial data: %w", err)
	}
	return data, nil
}

func (s *RedisFinancialStore) Update(ctx context.Context, patch models.FinancialPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	values := make([]any, 0, 12)
	values = appendField(values, "bank_balance", patch.BankBalance)
	values = appendField(values, "in_hand_cash", patch.InHandCash)
	values = appendField(values, "main_income", patch.MainIncome)
	values = appendField(values, "side_income", patch.SideIncome)
	values = appendField(values, "monthly_expenses", patch.MonthlyExpenses)
	values = appendField(values, "net_worth", patch.NetWorth)

	if err := s.client.HSet(ctx, financeKey(s.playerID), values...).Err(); err != nil {
		s.logger.Error("Failed to update financial data", zap.String("playerID", s.playerID), zap.Error(err))
		return fmt.Errorf("update financial data: %w", err)
	}
	return nil
}

// RedisSectorRegistry хранит купленные секторы в set.
type RedisSectorRegistry struct {
	client   *redis.Client
	playerID string
	logger   *zap.Logger
}

// NewRedisSectorRegistry создает реестр секторов игрока.
func NewRedisSectorRegistry(client *redis.Client, playerID string, logger *zap.Logger) *RedisSectorRegistry {
	return &RedisSectorRegistry{client: client, playerID: playerID, logger: logger.Named("RedisSectorRegistry")}
}

func (r *RedisSectorRegistry) PurchasedSectors(ctx context.Context) ([]models.Sector, error) {
	members, err := r.client.SMembers(ctx, sectorsKey(r.playerID)).Result()
	if err != nil {
		r.logger.Error("Failed to read purchased sectors", zap.String("playerID", r.playerID), zap.Error(err))
		return nil, fmt.Errorf("read purchased sectors: %w", err)
	}
	sort.Strings(members)
	out := make([]models.Sector, 0, len(members))
	for _, m := range members {
		out = append(out, models.Sector(m))
	}
	return out, nil
}

func (r *RedisSectorRegistry) Purchase(ctx context.Context, sector models.Sector) error {
	if sector.IsGeneral() || !sector.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownSector, sector)
	}
	if err := r.client.SAdd(ctx, sectorsKey(r.playerID), string(sector)).Err(); err != nil {
		r.logger.Error("Failed to purchase sector", zap.String("sector", string(sector)), zap.Error(err))
		return fmt.Errorf("purchase sector: %w", err)
	}
	r.logger.Info("Sector purchased", zap.String("playerID", r.playerID), zap.String("sector", string(sector)))
	return nil
}

// seedHash записывает поля только если их ещё нет (HSETNX), одним пайплайном.
func seedHash(ctx context.Context, client *redis.Client, key string, fields map[string]int) error {
	pipe := client.Pipeline()
	for field, value := range fields {
		pipe.HSetNX(ctx, key, field, value)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func appendField(values []any, name string, v *int) []any {
	if v == nil {
		return values
	}
	return append(values, name, *v)
}

package store_test

import (
	"context"
	"testing"

	"wealth-sprint/internal/models"
	"wealth-sprint/internal/store"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"
)

type RedisStoreTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
}

func (s *RedisStoreTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	uri, err := container.ConnectionString(ctx)
	s.Require().NoError(err)
	opts, err := redis.ParseURL(uri)
	s.Require().NoError(err)
	s.client = redis.NewClient(opts)
	s.Require().NoError(s.client.Ping(ctx).Err())
}

func (s *RedisStoreTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushDB(context.Background()).Err())
}

func (s *RedisStoreTestSuite) TestStatsSeedAndUpdate() {
	ctx := context.Background()
	initial := models.PlayerStats{Emotion: 60, Stress: 40, Karma: 50, Logic: 50, Reputation: 50, Energy: 70}

	st, err := store.NewRedisStatsStore(ctx, s.client, "p1", initial, zap.NewNop())
	s.Require().NoError(err)

	got, err := st.Get(ctx)
	s.Require().NoError(err)
	s.Equal(initial, got)

	s.Require().NoError(st.Update(ctx, models.PlayerStatsPatch{Logic: intPtr(63)}))

	// Повторный сид не перетирает сохранённые значения.
	st, err = store.NewRedisStatsStore(ctx, s.client, "p1", initial, zap.NewNop())
	s.Require().NoError(err)
	got, err = st.Get(ctx)
	s.Require().NoError(err)
	s.Equal(63, got.Logic)
	s.Equal(60, got.Emotion)
}

func (s *RedisStoreTestSuite) TestFinancialSeedAndUpdate() {
	ctx := context.Background()
	initial := models.FinancialData{BankBalance: 25000, InHandCash: 2000, MainIncome: 8000, MonthlyExpenses: 5000, NetWorth: 27000}

	fs, err := store.NewRedisFinancialStore(ctx, s.client, "p1", initial, zap.NewNop())
	s.Require().NoError(err)
	s.Require().NoError(fs.Update(ctx, models.FinancialPatch{BankBalance: intPtr(0), NetWorth: intPtr(2000)}))

	got, err := fs.Get(ctx)
	s.Require().NoError(err)
	s.Equal(models.FinancialData{BankBalance: 0, InHandCash: 2000, MainIncome: 8000, MonthlyExpenses: 5000, NetWorth: 2000}, got)
}

func (s *RedisStoreTestSuite) TestSectorsArePerPlayer() {
	ctx := context.Background()
	r1 := store.NewRedisSectorRegistry(s.client, "p1", zap.NewNop())
	r2 := store.NewRedisSectorRegistry(s.client, "p2", zap.NewNop())

	s.Require().NoError(r1.Purchase(ctx, models.SectorHealthcare))
	s.Require().NoError(r1.Purchase(ctx, models.SectorEcommerce))
	s.ErrorIs(r1.Purchase(ctx, models.SectorGeneral), models.ErrUnknownSector)

	got, err := r1.PurchasedSectors(ctx)
	s.Require().NoError(err)
	s.Equal([]models.Sector{models.SectorEcommerce, models.SectorHealthcare}, got)

	other, err := r2.PurchasedSectors(ctx)
	s.Require().NoError(err)
	s.Empty(other)
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode.")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(RedisStoreTestSuite))
}

package ledger_test

import (
	"context"
	"testing"
	"time"

	"wealth-sprint/internal/ledger"
	"wealth-sprint/internal/ledger/migrations"
	"wealth-sprint/internal/models"
	"wealth-sprint/pkg/migration"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// PgLedgerTestSuite гоняет PgLedger на настоящем PostgreSQL.
type PgLedgerTestSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool
	ledger      *ledger.PgLedger
}

func (s *PgLedgerTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("wealth_sprint_test"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(5*time.Minute),
		),
	)
	s.Require().NoError(err)
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.dbPool, err = pgxpool.New(ctx, connStr)
	s.Require().NoError(err)

	migrator := migration.NewMigrator(migration.Config{MigrationsFS: migrations.FS}, s.dbPool, zap.NewNop())
	s.Require().NoError(migrator.Up(ctx))
	version, dirty, err := migrator.Version(ctx)
	s.Require().NoError(err)
	s.Require().False(dirty)
	s.Require().EqualValues(1, version)

	s.ledger = ledger.NewPgLedger(s.dbPool, zap.NewNop())
}

func (s *PgLedgerTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		s.Require().NoError(s.pgContainer.Terminate(context.Background()))
	}
}

func (s *PgLedgerTestSuite) SetupTest() {
	s.Require().NoError(s.ledger.Reset(context.Background()))
}

func (s *PgLedgerTestSuite) TestAppendAndHistory() {
	ctx := context.Background()
	r1 := record(1, "d1_real_estate_1", "0xaa")
	r1.Consequences = models.Effects{Logic: 8, Stress: -5}
	r2 := record(1, "d1_lifestyle_1", "")
	r3 := record(2, "d2_career_1", "0xcc")
	for _, r := range []models.PlayerDecision{r1, r2, r3} {
		s.Require().NoError(s.ledger.Append(ctx, r))
	}

	all, err := s.ledger.History(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]uuid.UUID{r3.ID, r2.ID, r1.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})
	s.Equal(models.Effects{Logic: 8, Stress: -5}, all[2].Consequences)
	s.True(r1.Timestamp.Equal(all[2].Timestamp))
	s.Empty(all[1].BlockchainHash)

	day1, err := s.ledger.HistoryForDay(ctx, 1)
	s.Require().NoError(err)
	s.Len(day1, 2)

	s.ErrorIs(s.ledger.Append(ctx, r1), models.ErrInvalidInput)
}

func (s *PgLedgerTestSuite) TestRetrieveAndAttachHash() {
	ctx := context.Background()
	r := record(3, "d3_health_1", "")
	s.Require().NoError(s.ledger.Append(ctx, r))

	_, err := s.ledger.Retrieve(ctx, "0xnone")
	s.ErrorIs(err, models.ErrRecordNotFound)

	s.Require().NoError(s.ledger.AttachHash(ctx, r.ID, "0xlate"))
	s.ErrorIs(s.ledger.AttachHash(ctx, r.ID, "0xagain"), models.ErrHashAlreadySet)
	s.ErrorIs(s.ledger.AttachHash(ctx, uuid.New(), "0xother"), models.ErrRecordNotFound)

	got, err := s.ledger.Retrieve(ctx, "0xlate")
	s.Require().NoError(err)
	s.Equal(r.ID, got.ID)
	s.Equal("d3_health_1", got.DecisionID)
}

func TestPgLedgerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode.")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(PgLedgerTestSuite))
}

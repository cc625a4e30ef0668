package config

import (
	"testing"

	"wealth-sprint/internal/models"
	"wealth-sprint/shared/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateSecrets(t *testing.T) {
	t.Helper()
	prev := utils.SecretsDir
	utils.SecretsDir = t.TempDir()
	t.Cleanup(func() { utils.SecretsDir = prev })
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.LedgerBackend)
	assert.Equal(t, BackendMemory, cfg.StateBackend)
	assert.Equal(t, 1, cfg.StartDay)
	assert.Equal(t, models.PlayerStats{Emotion: 60, Stress: 40, Karma: 50, Logic: 50, Reputation: 50, Energy: 70}, cfg.InitialStats())

	fin := cfg.InitialFinancial()
	assert.Equal(t, 25000, fin.BankBalance)
	assert.Equal(t, 27000, fin.NetWorth)

	sectors, err := cfg.InitialSectors()
	require.NoError(t, err)
	assert.Empty(t, sectors)
}

func TestLoadConfig_Overrides(t *testing.T) {
	isolateSecrets(t)
	t.Setenv("LEDGER_BACKEND", BackendPostgres)
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("PURCHASED_SECTORS", "fast_food, healthcare")
	t.Setenv("COMMIT_FAILURE_RATE", "0.25")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://postgres:pw@db:5432/wealth_sprint?sslmode=disable", cfg.GetDSN())
	assert.Equal(t, 0.25, cfg.CommitFailureRate)

	sectors, err := cfg.InitialSectors()
	require.NoError(t, err)
	assert.Equal(t, []models.Sector{models.SectorFastFood, models.SectorHealthcare}, sectors)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"Unknown ledger backend", "LEDGER_BACKEND", "mongo"},
		{"Unknown state backend", "STATE_BACKEND", "etcd"},
		{"Failure rate above one", "COMMIT_FAILURE_RATE", "1.5"},
		{"Start day zero", "START_DAY", "0"},
		{"Unknown sector", "PURCHASED_SECTORS", "casino"},
		{"General is not purchasable", "PURCHASED_SECTORS", "general"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_PostgresRequiresPassword(t *testing.T) {
	isolateSecrets(t)
	t.Setenv("LEDGER_BACKEND", BackendPostgres)
	t.Setenv("DB_PASSWORD", "")
	_, err := LoadConfig()
	assert.ErrorIs(t, err, utils.ErrSecretNotFound)
}

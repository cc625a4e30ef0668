package config

import (
	"fmt"
	"strings"
	"time"

	"wealth-sprint/internal/models"
	"wealth-sprint/shared/utils"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config содержит конфигурацию сервиса Wealth Sprint
type Config struct {
	// Настройки сервера
	Port        string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	LogOutput   string `envconfig:"LOG_OUTPUT"`

	// Хранилища
	LedgerBackend string `envconfig:"LEDGER_BACKEND" default:"memory"`
	StateBackend  string `envconfig:"STATE_BACKEND" default:"memory"`
	PlayerID      string `envconfig:"PLAYER_ID" default:"local"`

	// Настройки PostgreSQL (LEDGER_BACKEND=postgres)
	DBHost        string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string        `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" default:"postgres"`
	DBName        string        `envconfig:"DB_NAME" default:"wealth_sprint"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int32         `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_MAX_IDLE" default:"5m"`
	// Секретное поле БЕЗ envconfig тега
	DBPassword string `ignored:"true"`

	// Настройки Redis (STATE_BACKEND=redis)
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`
	// Секретное поле БЕЗ envconfig тега
	RedisPassword string `ignored:"true"`

	// Настройки RabbitMQ (пустой URL отключает публикацию событий)
	RabbitMQURL     string `envconfig:"RABBITMQ_URL"`
	EventsQueueName string `envconfig:"EVENTS_QUEUE_NAME" default:"wealth_sprint_events"`

	// Симуляция коммита
	CommitLatency     time.Duration `envconfig:"COMMIT_LATENCY" default:"0s"`
	CommitFailureRate float64       `envconfig:"COMMIT_FAILURE_RATE" default:"0"`

	// Игровые параметры
	ScenarioAutoAdvance time.Duration `envconfig:"SCENARIO_AUTO_ADVANCE_DELAY" default:"3s"`
	StartDay            int           `envconfig:"START_DAY" default:"1"`
	PurchasedSectors    []string      `envconfig:"PURCHASED_SECTORS"`

	InitialEmotion    int `envconfig:"INITIAL_EMOTION" default:"60"`
	InitialStress     int `envconfig:"INITIAL_STRESS" default:"40"`
	InitialKarma      int `envconfig:"INITIAL_KARMA" default:"50"`
	InitialLogic      int `envconfig:"INITIAL_LOGIC" default:"50"`
	InitialReputation int `envconfig:"INITIAL_REPUTATION" default:"50"`
	InitialEnergy     int `envconfig:"INITIAL_ENERGY" default:"70"`

	InitialBankBalance     int `envconfig:"INITIAL_BANK_BALANCE" default:"25000"`
	InitialInHandCash      int `envconfig:"INITIAL_IN_HAND_CASH" default:"2000"`
	InitialMainIncome      int `envconfig:"INITIAL_MAIN_INCOME" default:"8000"`
	InitialSideIncome      int `envconfig:"INITIAL_SIDE_INCOME" default:"0"`
	InitialMonthlyExpenses int `envconfig:"INITIAL_MONTHLY_EXPENSES" default:"5000"`
}

// GetDSN возвращает строку подключения (DSN) для PostgreSQL
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// InitialStats - стартовые статы игрока.
func (c *Config) InitialStats() models.PlayerStats {
	return models.PlayerStats{
		Emotion:    c.InitialEmotion,
		Stress:     c.InitialStress,
		Karma:      c.InitialKarma,
		Logic:      c.InitialLogic,
		Reputation: c.InitialReputation,
		Energy:     c.InitialEnergy,
	}
}

// InitialFinancial - стартовые финансы. NetWorth = баланс + наличные.
func (c *Config) InitialFinancial() models.FinancialData {
	return models.FinancialData{
		BankBalance:     c.InitialBankBalance,
		InHandCash:      c.InitialInHandCash,
		MainIncome:      c.InitialMainIncome,
		SideIncome:      c.InitialSideIncome,
		MonthlyExpenses: c.InitialMonthlyExpenses,
		NetWorth:        c.InitialBankBalance + c.InitialInHandCash,
	}
}

// InitialSectors разбирает PURCHASED_SECTORS.
func (c *Config) InitialSectors() ([]models.Sector, error) {
	out := make([]models.Sector, 0, len(c.PurchasedSectors))
	for _, raw := range c.PurchasedSectors {
		s := models.Sector(strings.TrimSpace(raw))
		if s == "" {
			continue
		}
		if !s.IsValid() || s.IsGeneral() {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownSector, raw)
		}
		out = append(out, s)
	}
	return out, nil
}

// Validate проверяет значения, которые envconfig не может проверить сам.
func (c *Config) Validate() error {
	switch c.LedgerBackend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("unsupported LEDGER_BACKEND %q", c.LedgerBackend)
	}
	switch c.StateBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unsupported STATE_BACKEND %q", c.StateBackend)
	}
	if c.CommitFailureRate < 0 || c.CommitFailureRate > 1 {
		return fmt.Errorf("COMMIT_FAILURE_RATE must be within [0, 1], got %v", c.CommitFailureRate)
	}
	if c.StartDay < 1 {
		return fmt.Errorf("START_DAY must be positive, got %d", c.StartDay)
	}
	if _, err := c.InitialSectors(); err != nil {
		return err
	}
	return nil
}

// LoadConfig загружает конфигурацию из переменных окружения и секретов
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Секреты нужны только для выбранных бэкендов
	var loadErr error
	if cfg.LedgerBackend == BackendPostgres {
		cfg.DBPassword, loadErr = utils.ReadSecretOrEnv("db_password", "DB_PASSWORD")
		if loadErr != nil {
			return nil, loadErr
		}
	}
	if cfg.StateBackend == BackendRedis {
		// Пароль Redis необязателен
		cfg.RedisPassword, _ = utils.ReadSecretOrEnv("redis_password", "REDIS_PASSWORD")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LogFields - безопасное для логов представление конфигурации.
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("port", c.Port),
		zap.String("logLevel", c.LogLevel),
		zap.String("ledgerBackend", c.LedgerBackend),
		zap.String("stateBackend", c.StateBackend),
		zap.String("dbDSN", fmt.Sprintf("postgres://%s:***@%s:%s/%s?sslmode=%s", c.DBUser, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)),
		zap.String("redisAddr", c.RedisAddr),
		zap.Bool("eventsEnabled", c.RabbitMQURL != ""),
		zap.String("eventsQueue", c.EventsQueueName),
		zap.Duration("commitLatency", c.CommitLatency),
		zap.Float64("commitFailureRate", c.CommitFailureRate),
		zap.Duration("scenarioAutoAdvance", c.ScenarioAutoAdvance),
		zap.Int("startDay", c.StartDay),
		zap.Strings("purchasedSectors", c.PurchasedSectors),
	}
}

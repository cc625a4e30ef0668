package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wealth-sprint/internal/clock"
	"wealth-sprint/internal/config"
	"wealth-sprint/internal/effects"
	"wealth-sprint/internal/handler"
	"wealth-sprint/internal/ledger"
	"wealth-sprint/internal/ledger/migrations"
	"wealth-sprint/internal/messaging"
	"wealth-sprint/internal/random"
	"wealth-sprint/internal/service"
	"wealth-sprint/internal/session"
	"wealth-sprint/internal/store"
	"wealth-sprint/pkg/database"
	"wealth-sprint/pkg/migration"
	sharedLogger "wealth-sprint/shared/logger"
	sharedMiddleware "wealth-sprint/shared/middleware"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	log.Println("Запуск Wealth Sprint...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err) // zap еще нет
	}

	logger, err := sharedLogger.New(sharedLogger.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogOutput,
	})
	if err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer logger.Sync()
	logger.Info("Configuration loaded", cfg.LogFields()...)

	ctx := context.Background()
	rng := random.NewSystem()

	// --- Состояние игрока --- //
	var (
		statsStore     store.PlayerStatsStore
		financialStore store.FinancialStore
		sectorRegistry store.SectorRegistry
	)
	initialSectors, _ := cfg.InitialSectors() // Уже проверено в Validate
	switch cfg.StateBackend {
	case config.BackendRedis:
		rdb, err := setupRedis(ctx, cfg)
		if err != nil {
			logger.Fatal("Не удалось подключиться к Redis", zap.Error(err))
		}
		defer rdb.Close()
		logger.Info("Успешное подключение к Redis", zap.String("addr", cfg.RedisAddr))

		if statsStore, err = store.NewRedisStatsStore(ctx, rdb, cfg.PlayerID, cfg.InitialStats(), logger); err != nil {
			logger.Fatal("Не удалось инициализировать статы в Redis", zap.Error(err))
		}
		if financialStore, err = store.NewRedisFinancialStore(ctx, rdb, cfg.PlayerID, cfg.InitialFinancial(), logger); err != nil {
			logger.Fatal("Не удалось инициализировать финансы в Redis", zap.Error(err))
		}
		registry := store.NewRedisSectorRegistry(rdb, cfg.PlayerID, logger)
		for _, s := range initialSectors {
			if err := registry.Purchase(ctx, s); err != nil {
				logger.Fatal("Не удалось сохранить стартовый сектор", zap.String("sector", string(s)), zap.Error(err))
			}
		}
		sectorRegistry = registry
	default:
		statsStore = store.NewMemoryStatsStore(cfg.InitialStats())
		financialStore = store.NewMemoryFinancialStore(cfg.InitialFinancial())
		sectorRegistry = store.NewMemorySectorRegistry(initialSectors...)
	}

	// --- История решений --- //
	var history ledger.Ledger
	switch cfg.LedgerBackend {
	case config.BackendPostgres:
		db, err := database.New(ctx, database.Config{
			DSN:             cfg.GetDSN(),
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBIdleTimeout,
		}, logger)
		if err != nil {
			logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
		}
		defer db.Close()

		migrator := migration.NewMigrator(migration.Config{MigrationsFS: migrations.FS}, db.Pool, logger)
		if err := migrator.Up(ctx); err != nil {
			logger.Fatal("Не удалось применить миграции", zap.Error(err))
		}
		history = ledger.NewPgLedger(db.Pool, logger)
	default:
		history = ledger.NewMemoryLedger()
	}

	// --- События --- //
	var publisher messaging.EventPublisher = messaging.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbitConn, err := connectRabbitMQ(cfg.RabbitMQURL, logger)
		if err != nil {
			logger.Fatal("Не удалось подключиться к RabbitMQ", zap.Error(err))
		}
		defer rabbitConn.Close()
		logger.Info("Успешное подключение к RabbitMQ")

		pub, closeChannel, err := messaging.NewRabbitMQPublisher(rabbitConn, cfg.EventsQueueName, logger)
		if err != nil {
			logger.Fatal("Не удалось создать EventPublisher", zap.Error(err))
		}
		defer closeChannel()
		publisher = pub
	}

	// --- Движки --- //
	committer := ledger.NewHashCommitter(ledger.HashCommitterConfig{
		Latency:     cfg.CommitLatency,
		FailureRate: cfg.CommitFailureRate,
	}, rng, logger)
	applier := effects.NewApplier(statsStore, financialStore, logger)
	days := clock.New(cfg.StartDay, logger)

	decisionEngine := service.NewDecisionEngine(
		session.NewBuilder(rng),
		sectorRegistry,
		applier,
		history,
		committer,
		publisher,
		days,
		logger,
	)
	days.Subscribe(decisionEngine.OnDayAdvanced)
	decisionEngine.OnDayAdvanced(ctx, days.Current())

	scenarioEngine := service.NewScenarioEngine(rng, statsStore, financialStore, applier, publisher, cfg.ScenarioAutoAdvance, logger)
	if _, err := scenarioEngine.Next(ctx); err != nil {
		logger.Warn("Не удалось загрузить первый сценарий", zap.Error(err))
	}

	gameHandler := handler.NewGameHandler(decisionEngine, scenarioEngine, days, statsStore, financialStore, sectorRegistry, cfg.StartDay, logger)

	// --- HTTP --- //
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewCustomValidator()
	e.Use(echoMiddleware.RequestID())
	e.Use(sharedMiddleware.EchoZapLogger(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	gameHandler.RegisterRoutes(e)

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска HTTP сервера", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Получен сигнал завершения, начинаем graceful shutdown...")

	scenarioEngine.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при graceful shutdown Echo", zap.Error(err))
	}
	logger.Info("Wealth Sprint остановлен")
}

func setupRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

func connectRabbitMQ(url string, logger *zap.Logger) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	maxRetries := 5
	retryDelay := 5 * time.Second
	for i := 0; i < maxRetries; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		logger.Warn("Не удалось подключиться к RabbitMQ",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
			zap.Duration("retry_delay", retryDelay),
			zap.Error(err),
		)
		time.Sleep(retryDelay)
	}
	return nil, err
}

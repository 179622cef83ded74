package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/infrastructure/cache"
	"github.com/vfg2006/tpm-api/infrastructure/database/postgres"
	"github.com/vfg2006/tpm-api/infrastructure/repository"
	"github.com/vfg2006/tpm-api/internal/api"
	"github.com/vfg2006/tpm-api/internal/api/handler"
	"github.com/vfg2006/tpm-api/internal/config"
	"github.com/vfg2006/tpm-api/internal/scheduler"
	"github.com/vfg2006/tpm-api/internal/usecases/account"
	"github.com/vfg2006/tpm-api/internal/usecases/analyzing"
	"github.com/vfg2006/tpm-api/internal/usecases/budgeting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient := redisconn(ctx, cfg.Redis)
	defer redisClient.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	promotionRepo := repository.NewPromotionRepository(pgConn)
	salesDataRepo := repository.NewSalesDataRepository(pgConn)
	deductionRepo := repository.NewDeductionRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	allocationRepo := repository.NewBudgetAllocationRepository(pgConn)
	sessionRepo := repository.NewAllocationSessionRepository(redisClient)

	// Sem cache as análises são recalculadas a cada requisição
	var analyticsCache analyzing.Cache
	if cfg.Analytics.CacheEnabled {
		analyticsCache = cache.NewCache(redisClient, cfg.Analytics.CacheTTL)
		logrus.WithField("ttl", cfg.Analytics.CacheTTL.String()).Info("Cache de análises habilitado")
	}

	analyzer := analyzing.NewService(promotionRepo, salesDataRepo, deductionRepo, activityRepo, analyticsCache, cfg)
	budgeter := budgeting.NewService(allocationRepo, sessionRepo, accountRepo, cfg)
	accountService := account.NewService(accountRepo)

	promotionStatusSyncService := scheduler.NewPromotionStatusSyncService(
		promotionRepo,
		analyzer,
		scheduler.PromotionStatusSyncConfig{
			CronSchedule: cfg.PromotionStatusSync.CronSchedule,
			Enabled:      cfg.PromotionStatusSync.Enabled,
		},
	)

	deductionAgingSyncService := scheduler.NewDeductionAgingSyncService(
		deductionRepo,
		analyzer,
		scheduler.DeductionAgingSyncConfig{
			CronSchedule: cfg.DeductionAgingSync.CronSchedule,
			Enabled:      cfg.DeductionAgingSync.Enabled,
		},
	)

	// Inicia os agendadores em background
	if err := promotionStatusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de status das promoções")
	} else {
		logrus.Info("Agendador de status das promoções iniciado com sucesso")
	}

	if err := deductionAgingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de envelhecimento das deduções")
	} else {
		logrus.Info("Agendador de envelhecimento das deduções iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Analyzer:       analyzer,
		Budgeter:       budgeter,
		AccountService: accountService,
		CronJobs: handler.CronJobServices{
			PromotionStatusSyncService: promotionStatusSyncService,
			DeductionAgingSyncService:  deductionAgingSyncService,
		},
		Dependencies: []handler.Dependency{
			{Name: "postgres", Check: pgConn.Ping},
			{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }},
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn cria o cliente Redis usado pelo cache e pelas sessões de alocação
func redisconn(ctx context.Context, redisConfig config.Redis) *redis.Client {
	client, err := cache.NewRedisClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return client
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "cryptoTracker/internal/api/grpc"
	apihttp "cryptoTracker/internal/api/http"
	dashboardCtrl "cryptoTracker/internal/api/http/controllers/dashboard"
	marketCtrl "cryptoTracker/internal/api/http/controllers/market"
	"cryptoTracker/internal/api/http/controllers/stream"
	"cryptoTracker/internal/api/http/controllers/system"
	"cryptoTracker/internal/dashboard"
	"cryptoTracker/internal/infrastructure/coingecko"
	"cryptoTracker/internal/infrastructure/kafka"
	"cryptoTracker/internal/infrastructure/memory"
	"cryptoTracker/internal/infrastructure/redis"
	"cryptoTracker/internal/pkg/logger"
	"cryptoTracker/internal/ports"
	marketUsecase "cryptoTracker/internal/usecase/market"
)

// App это приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (подключения создаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// NewCache создаёт бэкенд кэша по конфигу. Возвращённый close освобождает соединения.
func NewCache(cfg Config, log *slog.Logger) (ports.ICache, func() error, error) {
	switch cfg.Cache.Backend {
	case CacheRedis:
		rdb, err := redis.New(&cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return redis.NewCache(rdb, cfg.Redis.Prefix, log), rdb.Close, nil
	default:
		return memory.NewCache(&cfg.Cache.Config, log), func() error { return nil }, nil
	}
}

// Run поднимает кэш, адаптер CoinGecko, Kafka и запускает HTTP и gRPC серверы (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, closeCache, err := NewCache(a.cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Warn("cache close", "error", err)
		}
	}()

	var broker ports.IProducer = kafka.NopProducer{}
	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		defer producer.Close()
		broker = producer
	}

	api := coingecko.New(&a.cfg.CoinGecko, log)
	uc := marketUsecase.New(api, cache, broker, a.cfg.Cache.TTLConfig, log)
	renderer := dashboard.NewRenderer(uc, log)

	if a.cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc, cache, log)
	go func() {
		if err := grpcSrv.Start(ctx); err != nil {
			log.Error("grpc server failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(cache, log),
		marketCtrl.New(uc, log),
		dashboardCtrl.New(renderer, log),
		stream.New(renderer, a.cfg.Stream, log))

	log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"grpc", grpcSrv.Addr(),
		"cache", a.cfg.Cache.Backend,
		"kafka", a.cfg.Kafka.Enabled)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}

package grpc

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"cryptoTracker/internal/api/grpc/interceptors"
	"cryptoTracker/internal/ports"
)

// ServiceName это имя сервиса в health-протоколе. Пустое имя описывает сервер целиком.
const ServiceName = "cryptotracker.Market"

// Config это настройки gRPC-сервера. Переменные: TRACKER_GRPC_HOST, TRACKER_GRPC_PORT, TRACKER_GRPC_PROBE_INTERVAL.
type Config struct {
	Host          string        `envconfig:"HOST" default:"0.0.0.0"`
	Port          string        `envconfig:"PORT" default:"9090"`
	ProbeInterval time.Duration `envconfig:"PROBE_INTERVAL" default:"15s"`
}

// Server это gRPC-сервер со стандартным grpc.health.v1. Статус следует за доступностью кэша.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	cache  ports.ICache
	cfg    Config
	log    *slog.Logger
}

// NewServer создаёт gRPC-сервер и регистрирует health и reflection.
func NewServer(cfg Config, cache ports.ICache, log *slog.Logger) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)),
		grpc.ChainStreamInterceptor(interceptors.LoggingStreamInterceptor(log)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)

	return &Server{grpc: s, health: hs, cache: cache, cfg: cfg, log: log}
}

// Addr возвращает адрес прослушивания.
func (s *Server) Addr() string {
	return s.cfg.Host + ":" + s.cfg.Port
}

// Start слушает адрес и принимает соединения (блокируется). Пробы кэша живут до отмены ctx.
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve обслуживает готовый listener.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.probe(ctx)
	go s.probeLoop(ctx)
	return s.grpc.Serve(lis)
}

func (s *Server) probeLoop(ctx context.Context) {
	interval := s.cfg.ProbeInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.probe(ctx)
		}
	}
}

// probe выставляет статус сервиса по Ping кэша.
func (s *Server) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := s.cache.Ping(pingCtx); err != nil {
		s.log.Warn("grpc health probe failed", "error", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

// Stop останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}

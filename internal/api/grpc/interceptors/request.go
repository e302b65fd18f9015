package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDKey это ключ метаданных с идентификатором запроса.
const RequestIDKey = "x-request-id"

var grpcRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tracker_grpc_requests_total",
		Help: "Total number of gRPC calls by method and code",
	},
	[]string{"method", "code"},
)

// requestID берёт идентификатор из входящих метаданных или генерирует новый.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDKey); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	return uuid.NewString()
}

func logCall(log *slog.Logger, kind, method, id string, start time.Time, err error) {
	code := status.Code(err)
	grpcRequestsTotal.WithLabelValues(method, code.String()).Inc()

	attrs := []any{"kind", kind, "method", method, "request_id", id, "latency_ms", time.Since(start).Milliseconds(), "grpc_code", code}
	if err != nil {
		if st, ok := status.FromError(err); ok {
			attrs = append(attrs, "error", st.Message())
		} else {
			attrs = append(attrs, "error", err.Error())
		}
		log.Warn("grpc request", attrs...)
		return
	}
	log.Info("grpc request", attrs...)
}

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, id, длительность, код/ошибка.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		id := requestID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, id))

		resp, err := handler(ctx, req)
		logCall(log, "unary", info.FullMethod, id, start, err)
		return resp, err
	}
}

// LoggingStreamInterceptor логирует завершение стрима (например health Watch).
func LoggingStreamInterceptor(log *slog.Logger) grpc.StreamServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		id := requestID(ss.Context())

		err := handler(srv, ss)
		if status.Code(err) == codes.Canceled {
			err = nil
		}
		logCall(log, "stream", info.FullMethod, id, start, err)
		return err
	}
}

package grpc

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"cryptoTracker/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func dial(t *testing.T, lis *bufconn.Listener) healthpb.HealthClient {
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return healthpb.NewHealthClient(conn)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		want    healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "serving", want: healthpb.HealthCheckResponse_SERVING},
		{name: "not serving", pingErr: errors.New("redis down"), want: healthpb.HealthCheckResponse_NOT_SERVING},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cache := mocks.NewMockICache(ctrl)
			cache.EXPECT().Ping(gomock.Any()).Return(tt.pingErr).AnyTimes()

			srv := NewServer(Config{ProbeInterval: time.Hour}, cache, newTestLogger())
			lis := bufconn.Listen(1 << 20)
			ctx, cancel := context.WithCancel(context.Background())
			go func() { _ = srv.Serve(ctx, lis) }()
			t.Cleanup(func() {
				cancel()
				stopCtx, stop := context.WithTimeout(context.Background(), time.Second)
				defer stop()
				_ = srv.Stop(stopCtx)
			})

			client := dial(t, lis)
			callCtx, callCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer callCancel()

			resp, err := client.Check(callCtx, &healthpb.HealthCheckRequest{Service: ServiceName})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetStatus())
		})
	}
}

package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/mock"
	"github.com/MKhiriev/trustme/internal/service"
)

func newHealthClient(t *testing.T, appInfo service.AppInfoService) grpc_health_v1.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(server, NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop()))
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return grpc_health_v1.NewHealthClient(conn)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		service string
		pingErr error
		want    grpc_health_v1.HealthCheckResponse_ServingStatus
	}{
		{name: "server serving", want: grpc_health_v1.HealthCheckResponse_SERVING},
		{name: "named service serving", service: ServiceName, want: grpc_health_v1.HealthCheckResponse_SERVING},
		{name: "database down", pingErr: errors.New("connection refused"), want: grpc_health_v1.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
			appInfo.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			client := newHealthClient(t, appInfo)
			resp, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: tt.service})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetStatus())
		})
	}
}

func TestCheck_UnknownService(t *testing.T) {
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))

	client := newHealthClient(t, appInfo)
	_, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: "other"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestWatch_Unimplemented(t *testing.T) {
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))

	client := newHealthClient(t, appInfo)
	stream, err := client.Watch(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantVersion string
		wantErr     error
	}{
		{name: "semantic version", version: "1.4.0", wantVersion: "1.4.0"},
		{name: "pre-release with build metadata", version: "v1.2.3-beta+build.42", wantVersion: "v1.2.3-beta+build.42"},
		{name: "surrounding whitespace trimmed", version: "  2.0.1\n", wantVersion: "2.0.1"},
		{name: "empty", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank", version: "   ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
)

// versionInfo answers the portal's About window. The version is fixed at
// start-up: either the -ldflags stamp or the configured override.
type versionInfo struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("portal backend version resolved")
	return versionInfo{version: version}, nil
}

func (v versionInfo) GetAppVersion(context.Context) string {
	return v.version
}

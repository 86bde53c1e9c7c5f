package service

import (
	"context"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
)

// appInfoService reports the algo-sync build that is serving requests. The
// version comes from APP_VERSION or, when unset, the linker-stamped build
// info resolved in cmd/server.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("serving algo-sync build")
	return &appInfoService{version: cfg.Version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

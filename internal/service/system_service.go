package service

import (
	"fmt"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	screener *ScreenerService
	features map[string]bool
}

// NewSystemService creates a new SystemService
func NewSystemService(screener *ScreenerService, scheduledRefresh bool) *SystemService {
	return &SystemService{
		screener: screener,
		features: map[string]bool{
			"scheduled_refresh": scheduledRefresh,
			"csv_export":        true,
		},
	}
}

// CheckHealth reports the last analysis run failure, if any.
func (s *SystemService) CheckHealth() error {
	if err := s.screener.LastError(); err != nil {
		return fmt.Errorf("last analysis run failed: %w", err)
	}
	return nil
}

// CheckVersion returns the application version and enabled features.
func (s *SystemService) CheckVersion() model.VersionInfo {
	return model.VersionInfo{
		AppVersion: version.Version,
		Features:   s.features,
	}
}

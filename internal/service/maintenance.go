package service

import (
	"nameswipe/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService handles periodic cleanup of the session store
type MaintenanceService struct {
	sessions repository.SessionRepository
	logger   *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(sessions repository.SessionRepository, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		sessions: sessions,
		logger:   logger,
	}
}

// CleanupStaleSessions removes sessions idle for more than 30 days
func (s *MaintenanceService) CleanupStaleSessions() error {
	const retentionDays = 30

	s.logger.Info("Starting cleanup of stale sessions", zap.Int("retention_days", retentionDays))

	err := s.sessions.CleanStaleSessions(retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup stale sessions", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}

package service

import (
	"errors"
	"net/http"

	"nameswipe/internal/api"
	"nameswipe/internal/domain"

	"go.uber.org/zap"
)

// DashboardService fetches the aggregate board snapshot
type DashboardService struct {
	api    api.API
	logger *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(api api.API, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		api:    api,
		logger: logger,
	}
}

// Snapshot fetches the board. It is fetched fresh on every call, never
// cached. Older backends only expose /matches; a 404 on /dashboard
// falls back to it and synthesizes a matches-only board.
func (s *DashboardService) Snapshot() (*domain.Dashboard, error) {
	board, err := s.api.Dashboard()
	if err == nil {
		return board, nil
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		return nil, err
	}

	s.logger.Debug("Dashboard endpoint missing, falling back to /matches")

	matches, err := s.api.Matches()
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{Matches: matches}, nil
}

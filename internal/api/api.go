package api

import "nameswipe/internal/domain"

// API defines the backend operations the bot consumes
type API interface {
	Users() ([]domain.User, error)
	Recommendations(userID int) ([]domain.Name, error)
	SubmitSwipe(swipe domain.Swipe) error
	Generate() (string, error)
	Dashboard() (*domain.Dashboard, error)
	Matches() ([]domain.Name, error)
}

package service

import (
	"nameswipe/internal/api"
	"nameswipe/internal/domain"
	"nameswipe/internal/repository"
)

// ProfileService handles profile listing and chat session bookkeeping
type ProfileService struct {
	api      api.API
	sessions repository.SessionRepository
}

// NewProfileService creates a new profile service
func NewProfileService(api api.API, sessions repository.SessionRepository) *ProfileService {
	return &ProfileService{
		api:      api,
		sessions: sessions,
	}
}

// Users returns the selectable profiles from the backend
func (s *ProfileService) Users() ([]domain.User, error) {
	return s.api.Users()
}

// FindUser looks a profile up by id in a fetched user list
func (s *ProfileService) FindUser(users []domain.User, id int) *domain.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// EnsureSession creates a session record for the chat if needed
func (s *ProfileService) EnsureSession(chatID int64) error {
	return s.sessions.EnsureSession(chatID)
}

// SavedProfile returns the profile last selected by the chat, or nil
func (s *ProfileService) SavedProfile(chatID int64) (*domain.User, error) {
	return s.sessions.GetProfile(chatID)
}

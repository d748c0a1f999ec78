package repository

import "nameswipe/internal/domain"

// SessionRepository defines chat session persistence: which profile a
// chat was rating, so a restarted bot restores it.
type SessionRepository interface {
	EnsureSession(chatID int64) error
	SaveProfile(chatID int64, profile domain.User) error
	GetProfile(chatID int64) (*domain.User, error)
	ClearProfile(chatID int64) error
	CleanStaleSessions(days int) error
}

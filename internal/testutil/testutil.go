package testutil

import (
	"nameswipe/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test profile
func NewTestUser(id int, name string) domain.User {
	return domain.User{ID: id, Name: name}
}

// NewTestName creates a test candidate name
func NewTestName(id int, name string) domain.Name {
	return domain.Name{ID: id, Name: name}
}

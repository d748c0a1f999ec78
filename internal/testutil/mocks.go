package testutil

import (
	"nameswipe/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) EnsureSession(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

func (m *MockSessionRepository) SaveProfile(chatID int64, profile domain.User) error {
	args := m.Called(chatID, profile)
	return args.Error(0)
}

func (m *MockSessionRepository) GetProfile(chatID int64) (*domain.User, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockSessionRepository) ClearProfile(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

func (m *MockSessionRepository) CleanStaleSessions(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockAPI is a mock for api.API
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Users() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockAPI) Recommendations(userID int) ([]domain.Name, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Name), args.Error(1)
}

func (m *MockAPI) SubmitSwipe(swipe domain.Swipe) error {
	args := m.Called(swipe)
	return args.Error(0)
}

func (m *MockAPI) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockAPI) Dashboard() (*domain.Dashboard, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockAPI) Matches() ([]domain.Name, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Name), args.Error(1)
}

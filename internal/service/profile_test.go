package service

import (
	"fmt"
	"testing"

	"nameswipe/internal/domain"
	"nameswipe/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestProfileService_Users(t *testing.T) {
	tests := []struct {
		name          string
		mockUsers     []domain.User
		mockError     error
		expectedError bool
	}{
		{
			name: "two profiles",
			mockUsers: []domain.User{
				testutil.NewTestUser(1, "Kyle"),
				testutil.NewTestUser(2, "Emily"),
			},
		},
		{
			name:      "no profiles",
			mockUsers: []domain.User{},
		},
		{
			name:          "backend error",
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := new(testutil.MockAPI)
			if tt.mockError != nil {
				mockAPI.On("Users").Return(nil, tt.mockError)
			} else {
				mockAPI.On("Users").Return(tt.mockUsers, nil)
			}

			svc := NewProfileService(mockAPI, new(testutil.MockSessionRepository))

			users, err := svc.Users()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockUsers, users)
			}

			mockAPI.AssertExpectations(t)
		})
	}
}

func TestProfileService_FindUser(t *testing.T) {
	users := []domain.User{
		testutil.NewTestUser(1, "Kyle"),
		testutil.NewTestUser(2, "Emily"),
	}

	svc := NewProfileService(new(testutil.MockAPI), new(testutil.MockSessionRepository))

	assert.Equal(t, "Emily", svc.FindUser(users, 2).Name)
	assert.Nil(t, svc.FindUser(users, 7))
	assert.Nil(t, svc.FindUser(nil, 1))
}

func TestProfileService_SavedProfile(t *testing.T) {
	kyle := testutil.NewTestUser(1, "Kyle")

	tests := []struct {
		name          string
		mockProfile   *domain.User
		mockError     error
		expectedError bool
	}{
		{name: "saved selection", mockProfile: &kyle},
		{name: "nothing saved", mockProfile: nil},
		{name: "store error", mockError: fmt.Errorf("db down"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessions := new(testutil.MockSessionRepository)
			mockSessions.On("GetProfile", testChatID).Return(tt.mockProfile, tt.mockError)

			svc := NewProfileService(new(testutil.MockAPI), mockSessions)

			profile, err := svc.SavedProfile(testChatID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockProfile, profile)
			}

			mockSessions.AssertExpectations(t)
		})
	}
}

package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"nameswipe/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepo_EnsureSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)

	chatID := int64(42)

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(chatID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.EnsureSession(chatID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_SaveProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)

	chatID := int64(42)
	profile := domain.User{ID: 1, Name: "Kyle"}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(chatID, profile.ID, profile.Name).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveProfile(chatID, profile)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetProfile(t *testing.T) {
	tests := []struct {
		name            string
		chatID          int64
		mockRows        *sqlmock.Rows
		mockError       error
		expectedProfile *domain.User
		expectedError   bool
	}{
		{
			name:            "chat with selected profile",
			chatID:          42,
			mockRows:        sqlmock.NewRows([]string{"profile_id", "profile_name"}).AddRow(1, "Kyle"),
			expectedProfile: &domain.User{ID: 1, Name: "Kyle"},
		},
		{
			name:            "chat with no selection",
			chatID:          43,
			mockRows:        sqlmock.NewRows([]string{"profile_id", "profile_name"}).AddRow(nil, nil),
			expectedProfile: nil,
		},
		{
			name:            "chat not seen before",
			chatID:          44,
			mockError:       sql.ErrNoRows,
			expectedProfile: nil,
		},
		{
			name:          "database error",
			chatID:        45,
			mockError:     fmt.Errorf("connection lost"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSessionRepo(db)

			query := "SELECT profile_id, profile_name FROM sessions WHERE chat_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.chatID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.chatID).WillReturnRows(tt.mockRows)
			}

			profile, err := repo.GetProfile(tt.chatID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProfile, profile)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepo_ClearProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)

	chatID := int64(42)

	mock.ExpectExec("UPDATE sessions").
		WithArgs(chatID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.ClearProfile(chatID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_CleanStaleSessions(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(30).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = repo.CleanStaleSessions(30)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

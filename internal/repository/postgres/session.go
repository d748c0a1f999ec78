package postgres

import (
	"database/sql"

	"nameswipe/internal/domain"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// EnsureSession creates a session row for the chat if not exists
func (r *SessionRepo) EnsureSession(chatID int64) error {
	query := `
		INSERT INTO sessions (chat_id)
		VALUES ($1)
		ON CONFLICT (chat_id) DO NOTHING
	`
	_, err := r.db.Exec(query, chatID)
	return err
}

// SaveProfile records the profile the chat is rating for
func (r *SessionRepo) SaveProfile(chatID int64, profile domain.User) error {
	query := `
		INSERT INTO sessions (chat_id, profile_id, profile_name, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (chat_id)
		DO UPDATE SET profile_id = $2, profile_name = $3, updated_at = NOW()
	`
	_, err := r.db.Exec(query, chatID, profile.ID, profile.Name)
	return err
}

// GetProfile returns the chat's saved profile, or nil when the chat has
// none selected
func (r *SessionRepo) GetProfile(chatID int64) (*domain.User, error) {
	var id sql.NullInt64
	var name sql.NullString
	query := `SELECT profile_id, profile_name FROM sessions WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&id, &name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !id.Valid {
		return nil, nil
	}

	return &domain.User{ID: int(id.Int64), Name: name.String}, nil
}

// ClearProfile drops the chat's profile selection but keeps the session
func (r *SessionRepo) ClearProfile(chatID int64) error {
	query := `
		UPDATE sessions
		SET profile_id = NULL, profile_name = NULL, updated_at = NOW()
		WHERE chat_id = $1
	`
	_, err := r.db.Exec(query, chatID)
	return err
}

// CleanStaleSessions removes sessions idle for more than the given days
func (r *SessionRepo) CleanStaleSessions(days int) error {
	query := `DELETE FROM sessions WHERE updated_at < NOW() - ($1 * INTERVAL '1 day')`
	_, err := r.db.Exec(query, days)
	return err
}

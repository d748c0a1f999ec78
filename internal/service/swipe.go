package service

import (
	"fmt"
	"sync"

	"nameswipe/internal/api"
	"nameswipe/internal/domain"
	"nameswipe/internal/repository"

	"go.uber.org/zap"
)

// refillThreshold is the queue length below which a backfill fetch is
// issued after a successful pop
const refillThreshold = 3

// SwipeService is the application controller: it owns per-chat session
// state (selected profile, candidate FIFO, drag offset) and performs
// the backend calls. Background fetches are best-effort: failures are
// logged and stale state is kept.
type SwipeService struct {
	api      api.API
	sessions repository.SessionRepository
	logger   *zap.Logger

	mu    sync.RWMutex
	chats map[int64]*domain.Session
}

// NewSwipeService creates a new swipe service
func NewSwipeService(api api.API, sessions repository.SessionRepository, logger *zap.Logger) *SwipeService {
	return &SwipeService{
		api:      api,
		sessions: sessions,
		logger:   logger,
		chats:    make(map[int64]*domain.Session),
	}
}

// Session returns a snapshot of the chat's current state
func (s *SwipeService) Session(chatID int64) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.chats[chatID]
	if !exists {
		return domain.Session{View: domain.ViewProfileSelect}
	}

	snapshot := *sess
	snapshot.Queue = append([]domain.Name(nil), sess.Queue...)
	return snapshot
}

// getOrCreate returns the mutable session for a chat. Caller must hold mu.
func (s *SwipeService) getOrCreate(chatID int64) *domain.Session {
	sess, exists := s.chats[chatID]
	if !exists {
		sess = &domain.Session{View: domain.ViewProfileSelect}
		s.chats[chatID] = sess
	}
	return sess
}

// SelectProfile sets the active profile for a chat and fetches its
// candidate queue. The selection is persisted best-effort; a fetch
// failure is logged and leaves the queue unchanged.
func (s *SwipeService) SelectProfile(chatID int64, profile domain.User) {
	if err := s.sessions.SaveProfile(chatID, profile); err != nil {
		s.logger.Error("Failed to persist profile selection",
			zap.Int64("chat_id", chatID),
			zap.Int("profile_id", profile.ID),
			zap.Error(err),
		)
	}

	s.mu.Lock()
	sess := s.getOrCreate(chatID)
	sess.Profile = &profile
	sess.View = domain.ViewSwipe
	sess.DragOffset = 0
	s.mu.Unlock()

	s.refreshQueue(chatID, profile.ID)
}

// RefreshQueue refetches the candidate queue for the chat's active
// profile, replacing it wholesale.
func (s *SwipeService) RefreshQueue(chatID int64) {
	s.mu.RLock()
	sess, exists := s.chats[chatID]
	var profileID int
	if exists && sess.Profile != nil {
		profileID = sess.Profile.ID
	}
	s.mu.RUnlock()

	if profileID == 0 {
		return
	}
	s.refreshQueue(chatID, profileID)
}

// refreshQueue fetches candidates and replaces the queue wholesale.
// Overlapping fetches are not de-duplicated: the last response to
// resolve wins.
func (s *SwipeService) refreshQueue(chatID int64, profileID int) {
	s.setLoading(chatID, true)
	defer s.setLoading(chatID, false)

	names, err := s.api.Recommendations(profileID)
	if err != nil {
		s.logger.Error("Failed to fetch recommendations",
			zap.Int64("chat_id", chatID),
			zap.Int("profile_id", profileID),
			zap.Error(err),
		)
		return
	}

	s.mu.Lock()
	sess := s.getOrCreate(chatID)
	// Selection may have changed while the fetch was in flight
	if sess.Profile != nil && sess.Profile.ID == profileID {
		sess.Queue = names
	}
	s.mu.Unlock()
}

func (s *SwipeService) setLoading(chatID int64, loading bool) {
	s.mu.Lock()
	s.getOrCreate(chatID).Loading = loading
	s.mu.Unlock()
}

// Submit records a decision for the given name. The name must be the
// current queue head: decisions carrying any other id are stale (a
// card no longer on top) and are dropped without effect. The head is
// popped only after the backend accepted the swipe; on failure the
// card stays and is simply presented again.
func (s *SwipeService) Submit(chatID int64, nameID int, decision domain.Decision) (bool, error) {
	s.mu.RLock()
	sess, exists := s.chats[chatID]
	if !exists || sess.Profile == nil {
		s.mu.RUnlock()
		return false, fmt.Errorf("no active profile for chat %d", chatID)
	}

	front := sess.FrontCard()
	if front == nil || front.ID != nameID {
		s.mu.RUnlock()
		s.logger.Debug("Dropping stale swipe",
			zap.Int64("chat_id", chatID),
			zap.Int("name_id", nameID),
		)
		return false, nil
	}

	swipe := domain.Swipe{
		UserID:   sess.Profile.ID,
		NameID:   front.ID,
		Decision: decision,
	}
	profileID := sess.Profile.ID
	s.mu.RUnlock()

	if err := s.api.SubmitSwipe(swipe); err != nil {
		s.logger.Error("Failed to submit swipe",
			zap.Int64("chat_id", chatID),
			zap.Int("name_id", nameID),
			zap.String("decision", string(decision)),
			zap.Error(err),
		)
		return false, err
	}

	s.mu.Lock()
	sess = s.getOrCreate(chatID)
	// Re-check the head: another update may have raced the POST
	if front := sess.FrontCard(); front != nil && front.ID == nameID {
		sess.Queue = sess.Queue[1:]
	}
	remaining := len(sess.Queue)
	s.mu.Unlock()

	s.logger.Info("Swipe recorded",
		zap.Int64("chat_id", chatID),
		zap.Int("profile_id", profileID),
		zap.Int("name_id", nameID),
		zap.String("decision", string(decision)),
	)

	if remaining < refillThreshold {
		s.refreshQueue(chatID, profileID)
	}
	return true, nil
}

// Generate asks the backend to synthesize new candidates and then
// refetches the queue. Unlike the background fetches, the error is
// returned to the caller for a user-visible alert.
func (s *SwipeService) Generate(chatID int64) (string, error) {
	message, err := s.api.Generate()
	if err != nil {
		s.logger.Error("Failed to generate names",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return "", err
	}

	s.logger.Info("Generated new candidates", zap.Int64("chat_id", chatID))
	s.RefreshQueue(chatID)
	return message, nil
}

// SetView switches the chat's active screen
func (s *SwipeService) SetView(chatID int64, view domain.View) {
	s.mu.Lock()
	s.getOrCreate(chatID).View = view
	s.mu.Unlock()
}

// ClearProfile returns the chat to profile selection, dropping the
// profile and queue both in memory and in the session store.
func (s *SwipeService) ClearProfile(chatID int64) {
	if err := s.sessions.ClearProfile(chatID); err != nil {
		s.logger.Error("Failed to clear persisted profile",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}

	s.mu.Lock()
	sess := s.getOrCreate(chatID)
	sess.Profile = nil
	sess.Queue = nil
	sess.DragOffset = 0
	sess.View = domain.ViewProfileSelect
	s.mu.Unlock()
}

// AdjustDrag moves the front card horizontally and returns the new offset
func (s *SwipeService) AdjustDrag(chatID int64, delta float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreate(chatID)
	sess.DragOffset += delta
	return sess.DragOffset
}

// ReleaseDrag ends the drag and classifies it. Dead-zone releases
// return ok=false: the card returns to rest and nothing is recorded.
func (s *SwipeService) ReleaseDrag(chatID int64) (domain.Decision, bool) {
	s.mu.Lock()
	sess := s.getOrCreate(chatID)
	offset := sess.DragOffset
	sess.DragOffset = 0
	s.mu.Unlock()

	return domain.ClassifyDrag(offset)
}

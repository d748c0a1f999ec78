package handler

import (
	"fmt"
	"strconv"
	"strings"

	"nameswipe/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: restore the chat's saved profile or show
// the profile-selection screen
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Sender().ID

	h.logger.Info("Chat started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	sess := h.swipeService.Session(chatID)
	if sess.Profile != nil {
		return h.showCard(c)
	}

	// A restarted bot restores the last selection from the session store
	saved, err := h.profileService.SavedProfile(chatID)
	if err != nil {
		h.logger.Error("Failed to load saved profile", zap.Error(err))
	}
	if saved != nil {
		h.swipeService.SelectProfile(chatID, *saved)
		return h.showCard(c)
	}

	return h.showProfileSelect(c)
}

// showProfileSelect renders the profile-selection screen. A failed user
// fetch is logged only and the screen simply stays empty.
func (h *Handler) showProfileSelect(c tele.Context) error {
	users, err := h.profileService.Users()
	if err != nil {
		h.logger.Error("Failed to fetch users", zap.Error(err))
	}

	if len(users) == 0 {
		return h.editOrSend(c, "👶 Who is swiping today?\n\nNo profiles available.", &tele.ReplyMarkup{})
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, user := range users {
		btn := markup.Data("👤 "+user.Name, "profile_"+strconv.Itoa(user.ID))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)

	return h.editOrSend(c, "👶 Who is swiping today?\n\nPick a profile:", markup)
}

// handleProfileSelection activates the chosen profile and shows the
// first card
func (h *Handler) handleProfileSelection(c tele.Context, data string) error {
	chatID := c.Sender().ID

	idStr := strings.TrimPrefix(strings.TrimSpace(data), "profile_")
	profileID, err := strconv.Atoi(idStr)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown profile"})
	}

	users, err := h.profileService.Users()
	if err != nil {
		h.logger.Error("Failed to fetch users", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't load profiles"})
	}

	profile := h.profileService.FindUser(users, profileID)
	if profile == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown profile"})
	}

	h.logger.Info("Profile selected",
		zap.Int64("chat_id", chatID),
		zap.Int("profile_id", profile.ID),
		zap.String("profile_name", profile.Name),
	)

	h.swipeService.SelectProfile(chatID, *profile)
	return h.showCard(c)
}

// handleSwitch clears the active profile and returns to profile selection
func (h *Handler) handleSwitch(c tele.Context) error {
	chatID := c.Sender().ID

	h.swipeService.ClearProfile(chatID)
	h.logger.Info("Profile cleared", zap.Int64("chat_id", chatID))

	return h.showProfileSelect(c)
}

// handleBackToCards returns from the board to the swipe view
func (h *Handler) handleBackToCards(c tele.Context) error {
	chatID := c.Sender().ID

	sess := h.swipeService.Session(chatID)
	if sess.Profile == nil {
		return h.showProfileSelect(c)
	}

	h.swipeService.SetView(chatID, domain.ViewSwipe)
	return h.showCard(c)
}

func profileLabel(sess domain.Session) string {
	if sess.Profile == nil {
		return ""
	}
	return fmt.Sprintf("Swiping as %s", sess.Profile.Name)
}

package handler

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"nameswipe/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var errInvalidCallback = errors.New("invalid callback data")

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not
// modified, just acknowledge the callback; otherwise acknowledge and
// return the error so the caller can send a new message.
func (h *Handler) handleEditError(err error, c tele.Context, chatID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("chat_id", chatID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", chatID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the callback's message in place, falling back to a
// fresh message, or plain-sends when there is no callback
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback handles ALL callback queries with dynamic data
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Dynamic buttons built with markup.Data carry their payload in
	// Unique when no extra args were given
	data := cleanCallbackData(callback.Data)
	if data == "" {
		data = cleanCallbackData(callback.Unique)
	}
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Sender().ID),
	)

	// Static buttons that didn't come through their own handler
	switch callback.Unique {
	case "drag_left":
		return h.handleDragLeft(c)
	case "drag_right":
		return h.handleDragRight(c)
	case "drag_release":
		return h.handleDragRelease(c)
	case "view_board":
		return h.handleBoard(c)
	case "generate":
		return h.handleGenerate(c)
	case "switch_profile":
		return h.handleSwitch(c)
	case "back_to_cards":
		return h.handleBackToCards(c)
	}

	// Dynamic buttons by data prefix
	switch {
	case strings.HasPrefix(data, "profile_"):
		return h.handleProfileSelection(c, data)
	case strings.HasPrefix(data, "decide_"):
		return h.handleDecision(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// parseDecisionData splits "decide_<decision>_<name_id>" callback data
func parseDecisionData(data string) (domain.Decision, int, error) {
	rest := strings.TrimPrefix(strings.TrimSpace(data), "decide_")
	idx := strings.LastIndex(rest, "_")
	if idx < 0 {
		return "", 0, errInvalidCallback
	}

	decision, err := domain.ParseDecision(rest[:idx])
	if err != nil {
		return "", 0, err
	}

	nameID, err := strconv.Atoi(rest[idx+1:])
	if err != nil {
		return "", 0, errInvalidCallback
	}
	return decision, nameID, nil
}

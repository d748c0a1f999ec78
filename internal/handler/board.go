package handler

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"nameswipe/internal/api"
	"nameswipe/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleBoard shows the aggregate board: mutual matches, per-profile
// likes and rejected names. The snapshot is fetched fresh every time
// the view is opened.
func (h *Handler) handleBoard(c tele.Context) error {
	chatID := c.Sender().ID

	h.swipeService.SetView(chatID, domain.ViewBoard)

	board, err := h.dashboardService.Snapshot()
	if err != nil {
		h.logger.Error("Failed to fetch board", zap.Error(err))
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Couldn't load the board"})
		}
		return c.Send("Couldn't load the board. Try again later.")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnBackToCards),
		markup.Row(btnGenerate, btnSwitch),
	)

	return h.editOrSend(c, renderBoard(board), markup)
}

// renderBoard builds the board text, with an explicit empty state when
// nothing has been decided yet
func renderBoard(board *domain.Dashboard) string {
	if board.Empty() {
		return "📊 The board\n\nNo matches yet — keep swiping!"
	}

	var sb strings.Builder
	sb.WriteString("📊 The board\n")

	sb.WriteString("\n💞 Matches:\n")
	if len(board.Matches) == 0 {
		sb.WriteString("  none yet\n")
	}
	for _, name := range board.Matches {
		sb.WriteString("  • " + name.Name + "\n")
	}

	// Stable section order for the per-profile buckets
	labels := make([]string, 0, len(board.PerUserLikes))
	for label := range board.PerUserLikes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		likes := board.PerUserLikes[label]
		if len(likes) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n❤️ %s likes:\n", label))
		for _, name := range likes {
			sb.WriteString("  • " + name.Name + "\n")
		}
	}

	if len(board.Rejected) > 0 {
		sb.WriteString(fmt.Sprintf("\n🗑 Rejected: %d name(s)\n", len(board.Rejected)))
	}

	return sb.String()
}

// handleGenerate asks the backend for new candidates. This is the one
// action whose failure is surfaced to the user, as a blocking alert
// with the server-provided detail when available.
func (h *Handler) handleGenerate(c tele.Context) error {
	chatID := c.Sender().ID

	message, err := h.swipeService.Generate(chatID)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      generateAlertText(err),
			ShowAlert: true,
		})
	}

	if message == "" {
		message = "New names generated!"
	}
	if err := c.Respond(&tele.CallbackResponse{Text: truncateAlert(message), ShowAlert: true}); err != nil {
		h.logger.Warn("Failed to show generate alert", zap.Error(err))
	}

	return h.showCard(c)
}

// generateAlertText extracts the server detail from a generate failure
func generateAlertText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return truncateAlert("Generation failed: " + apiErr.Detail)
	}
	return "Generation failed. Try again later."
}

// Telegram caps callback alert text at 200 characters
func truncateAlert(text string) string {
	const maxAlertLen = 200
	if len(text) <= maxAlertLen {
		return text
	}
	return text[:maxAlertLen-1] + "…"
}

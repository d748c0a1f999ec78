package handler

import (
	"fmt"
	"strconv"
	"strings"

	"nameswipe/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// dragStep is how far one drag button press moves the card
const dragStep = 50.0

// showCard renders the swipe view: the front card with its decision and
// drag controls, and the card stacked behind it. Only the front card's
// buttons carry a live decision payload; the back card is preview only.
func (h *Handler) showCard(c tele.Context) error {
	chatID := c.Sender().ID
	sess := h.swipeService.Session(chatID)

	if sess.Profile == nil {
		return h.showProfileSelect(c)
	}

	front := sess.FrontCard()
	if front == nil {
		markup := &tele.ReplyMarkup{}
		markup.Inline(menuRow(markup))

		text := fmt.Sprintf("%s\n\n🃏 No more names to swipe right now.\nGenerate new candidates or come back later.", profileLabel(sess))
		if sess.Loading {
			text = fmt.Sprintf("%s\n\n⏳ Loading names...", profileLabel(sess))
		}
		return h.editOrSend(c, text, markup)
	}

	markup := &tele.ReplyMarkup{}
	id := strconv.Itoa(front.ID)
	markup.Inline(
		markup.Row(
			markup.Data("❌ Dislike", "decide_dislike_"+id),
			markup.Data("🤔 Maybe", "decide_maybe_"+id),
			markup.Data("❤️ Like", "decide_like_"+id),
		),
		markup.Row(btnDragLeft, btnDragRelease, btnDragRight),
		menuRow(markup),
	)

	return h.editOrSend(c, renderCard(sess), markup)
}

// renderCard builds the swipe-view text for the session's front card
func renderCard(sess domain.Session) string {
	front := sess.FrontCard()

	var sb strings.Builder
	sb.WriteString(profileLabel(sess))
	sb.WriteString("\n\n")
	sb.WriteString("🍼 " + front.Name + "\n")

	if front.Gender != "" || front.Origin != "" {
		details := front.Gender
		if front.Origin != "" {
			if details != "" {
				details += " · "
			}
			details += front.Origin
		}
		sb.WriteString("🏷 " + details + "\n")
	}
	if front.Meaning != "" {
		sb.WriteString("💡 " + front.Meaning + "\n")
	}

	if sess.DragOffset != 0 {
		sb.WriteString("\n" + renderDrag(sess.DragOffset) + "\n")
	}

	if back := sess.BackCard(); back != nil {
		sb.WriteString(fmt.Sprintf("\nUp next: %s", back.Name))
	}
	sb.WriteString(fmt.Sprintf("\n%d name(s) in the deck", len(sess.Queue)))

	return sb.String()
}

// renderDrag shows the card's drag feedback: direction, rotation and
// background tint derived from the offset
func renderDrag(offset float64) string {
	lean := "▧"
	if offset > 0 {
		lean = strings.Repeat("▷", leanSteps(offset)) + " 💚"
	} else if offset < 0 {
		lean = "💔 " + strings.Repeat("◁", leanSteps(offset))
	}

	return fmt.Sprintf("%s  (%+.0f, %.0f°, %s)",
		lean,
		offset,
		domain.DragRotation(offset),
		domain.DragTint(offset),
	)
}

func leanSteps(offset float64) int {
	steps := int(offset / dragStep)
	if steps < 0 {
		steps = -steps
	}
	if steps < 1 {
		steps = 1
	}
	if steps > 4 {
		steps = 4
	}
	return steps
}

// handleDecision handles the explicit dislike/maybe/like card buttons.
// The payload carries the name id the button was rendered for, so a
// press on an outdated card (one no longer at the front) does nothing.
func (h *Handler) handleDecision(c tele.Context, data string) error {
	chatID := c.Sender().ID

	decision, nameID, err := parseDecisionData(data)
	if err != nil {
		h.logger.Warn("Invalid decision callback",
			zap.Int64("chat_id", chatID),
			zap.String("data", data),
			zap.Error(err),
		)
		return c.Respond()
	}

	return h.submitDecision(c, nameID, decision)
}

// submitDecision records a decision and re-renders the card. Failures
// are best-effort: the head card stays in place and is shown again.
func (h *Handler) submitDecision(c tele.Context, nameID int, decision domain.Decision) error {
	chatID := c.Sender().ID

	popped, err := h.swipeService.Submit(chatID, nameID, decision)
	if err != nil {
		// Logged in the service; the card is simply presented again
		return h.showCard(c)
	}
	if !popped {
		return c.Respond()
	}

	return h.showCard(c)
}

// handleDragLeft moves the front card toward the reject side
func (h *Handler) handleDragLeft(c tele.Context) error {
	return h.handleDrag(c, -dragStep)
}

// handleDragRight moves the front card toward the accept side
func (h *Handler) handleDragRight(c tele.Context) error {
	return h.handleDrag(c, dragStep)
}

func (h *Handler) handleDrag(c tele.Context, delta float64) error {
	chatID := c.Sender().ID

	sess := h.swipeService.Session(chatID)
	if sess.Profile == nil || sess.FrontCard() == nil {
		return c.Respond()
	}

	h.swipeService.AdjustDrag(chatID, delta)
	return h.showCard(c)
}

// handleDragRelease ends the drag. Past the threshold it records the
// matching decision; inside the dead zone the card returns to rest.
func (h *Handler) handleDragRelease(c tele.Context) error {
	chatID := c.Sender().ID

	sess := h.swipeService.Session(chatID)
	front := sess.FrontCard()
	if sess.Profile == nil || front == nil {
		return c.Respond()
	}

	decision, ok := h.swipeService.ReleaseDrag(chatID)
	if !ok {
		return h.showCard(c)
	}

	return h.submitDecision(c, front.ID, decision)
}

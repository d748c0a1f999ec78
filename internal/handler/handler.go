package handler

import (
	"nameswipe/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot              *tele.Bot
	profileService   *service.ProfileService
	swipeService     *service.SwipeService
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	profileService *service.ProfileService,
	swipeService *service.SwipeService,
	dashboardService *service.DashboardService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:              bot,
		profileService:   profileService,
		swipeService:     swipeService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/board", h.handleBoard)
	h.bot.Handle("/switch", h.handleSwitch)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnDragLeft, h.handleDragLeft)
	h.bot.Handle(&btnDragRight, h.handleDragRight)
	h.bot.Handle(&btnDragRelease, h.handleDragRelease)
	h.bot.Handle(&btnBoard, h.handleBoard)
	h.bot.Handle(&btnGenerate, h.handleGenerate)
	h.bot.Handle(&btnSwitch, h.handleSwitch)
	h.bot.Handle(&btnBackToCards, h.handleBackToCards)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnDragLeft = tele.Btn{
		Unique: "drag_left",
		Text:   "⬅️ Drag",
	}
	btnDragRight = tele.Btn{
		Unique: "drag_right",
		Text:   "Drag ➡️",
	}
	btnDragRelease = tele.Btn{
		Unique: "drag_release",
		Text:   "✋ Release",
	}
	btnBoard = tele.Btn{
		Unique: "view_board",
		Text:   "📊 Board",
	}
	btnGenerate = tele.Btn{
		Unique: "generate",
		Text:   "✨ Generate names",
	}
	btnSwitch = tele.Btn{
		Unique: "switch_profile",
		Text:   "🔄 Switch",
	}
	btnBackToCards = tele.Btn{
		Unique: "back_to_cards",
		Text:   "◀️ Back to cards",
	}
)

// menuRow is the navigation row shown under every swipe card
func menuRow(markup *tele.ReplyMarkup) tele.Row {
	return markup.Row(btnBoard, btnGenerate, btnSwitch)
}

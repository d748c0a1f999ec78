package middleware

import (
	"nameswipe/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SessionMiddleware makes sure every interacting chat has a session
// row before its update is handled. A store failure is logged only; the
// bot keeps working with in-memory state.
func SessionMiddleware(profileService *service.ProfileService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return next(c)
			}

			chatID := c.Sender().ID
			if err := profileService.EnsureSession(chatID); err != nil {
				logger.Error("Failed to ensure session in middleware",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
			}

			return next(c)
		}
	}
}

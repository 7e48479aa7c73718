package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/pkg/database"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHealthHandler(db *gorm.DB, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := database.Ping(c.UserContext(), h.db); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unhealthy",
			"database": "unreachable",
		})
	}
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"database": "ok",
	})
}

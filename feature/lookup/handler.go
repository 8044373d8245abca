package lookup

import (
	"invoice-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the lookup table.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lookup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lookup")
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/match", h.HandleMatch)
}

// HandleRefresh replaces the cached lookup table with a fresh fetch.
// @Summary Refresh Lookup Table
// @Description Discard the cached lookup table and fetch a fresh copy from the configured source.
// @Tags lookup
// @Produce json
// @Success 200 {object} map[string]int "Entry count"
// @Failure 502 {object} map[string]string "Source returned invalid data"
// @Router /lookup/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	count, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Error("Lookup refresh failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Lookup table refreshed", zap.Int("entries", count))
	return c.JSON(fiber.Map{"entries": count})
}

// HandleMatch resolves a single description against the current table.
// @Summary Match Description
// @Description Resolve a free-form product description to a canonical product code.
// @Tags lookup
// @Produce json
// @Param description query string true "Product description"
// @Success 200 {object} MatchResult "Match result"
// @Failure 400 {object} map[string]string "Missing description"
// @Failure 502 {object} map[string]string "Source returned invalid data"
// @Router /lookup/match [get]
func (h *Handler) HandleMatch(c *fiber.Ctx) error {
	description := c.Query("description")
	if description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "description query parameter is required",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Match(c.Context(), description)
	if err != nil {
		l.Error("Lookup match failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

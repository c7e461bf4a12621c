package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"socialgrowth/internal/services"
)

// AssistantHandler exposes the growth assistant.
type AssistantHandler struct {
	service  *services.AssistantService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(service *services.AssistantService, logger *zap.SugaredLogger) *AssistantHandler {
	return &AssistantHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the assistant routes. router must be authenticated.
func (h *AssistantHandler) RegisterRoutes(router fiber.Router) {
	assistantRoutes := router.Group("/assistant")
	assistantRoutes.Post("/strategy", h.HandleStrategy)
	assistantRoutes.Post("/analyze", h.HandleAnalyze)
}

// StrategyRequest represents the request body for a growth plan.
type StrategyRequest struct {
	Niche    string `json:"niche" validate:"required,max=100"`
	Platform string `json:"platform" validate:"omitempty,max=50"`
}

// HandleStrategy returns a growth plan, or the fallback text when generation fails.
func (h *AssistantHandler) HandleStrategy(c *fiber.Ctx) error {
	var req StrategyRequest
	if ok, err := parseRequest(c, h.validate, &req); !ok {
		return err
	}

	text, err := h.service.GrowthStrategy(c.UserContext(), req.Niche, req.Platform)
	if err != nil {
		return respondError(c, h.logger, err, "Could not generate strategy")
	}
	return c.JSON(fiber.Map{"text": text})
}

// AnalyzeRequest represents the request body for a profile review.
type AnalyzeRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}

// HandleAnalyze returns profile suggestions, or the fallback text when generation fails.
func (h *AssistantHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if ok, err := parseRequest(c, h.validate, &req); !ok {
		return err
	}

	text, err := h.service.AnalyzeProfile(c.UserContext(), req.Description)
	if err != nil {
		return respondError(c, h.logger, err, "Could not analyze profile")
	}
	return c.JSON(fiber.Map{"text": text})
}

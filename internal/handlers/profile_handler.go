package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"socialgrowth/internal/middleware"
	"socialgrowth/internal/services"
)

// ProfileHandler serves the authenticated user's snapshot.
type ProfileHandler struct {
	service  *services.ProfileService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService, logger *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the profile routes. router must be authenticated.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleGet)
	router.Patch("/profile", h.HandleUpdate)
}

// UpdateProfileRequest represents the editable profile fields. Omitted fields are kept.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Niche *string `json:"niche" validate:"omitempty,max=100"`
}

// HandleGet returns the current user snapshot.
func (h *ProfileHandler) HandleGet(c *fiber.Ctx) error {
	user, err := h.service.Get(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve profile")
	}
	return c.JSON(user)
}

// HandleUpdate edits the display name and niche.
func (h *ProfileHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if ok, err := parseRequest(c, h.validate, &req); !ok {
		return err
	}

	user, err := h.service.Update(c.UserContext(), middleware.UserID(c), services.ProfileUpdate{
		Name:  req.Name,
		Niche: req.Niche,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Could not update profile")
	}
	return c.JSON(user)
}

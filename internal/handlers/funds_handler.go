package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"socialgrowth/internal/middleware"
	"socialgrowth/internal/services"
)

// FundsHandler handles deposits and the deposit history.
type FundsHandler struct {
	service  *services.FundsService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewFundsHandler creates a new FundsHandler.
func NewFundsHandler(service *services.FundsService, logger *zap.SugaredLogger) *FundsHandler {
	return &FundsHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the funds routes. router must be authenticated.
func (h *FundsHandler) RegisterRoutes(router fiber.Router) {
	fundsRoutes := router.Group("/funds")
	fundsRoutes.Get("/payment-info", h.HandlePaymentInfo)
	fundsRoutes.Get("/transactions", h.HandleTransactions)
	fundsRoutes.Post("/", h.HandleDeposit)
}

// DepositRequest represents the request body for adding funds.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
	UTR    string          `json:"utr" validate:"required"`
	Method string          `json:"method" validate:"omitempty,max=20"`
}

// HandlePaymentInfo returns where to send money before confirming a deposit.
func (h *FundsHandler) HandlePaymentInfo(c *fiber.Ctx) error {
	return c.JSON(h.service.PaymentInfo())
}

// HandleDeposit credits the authenticated user.
func (h *FundsHandler) HandleDeposit(c *fiber.Ctx) error {
	var req DepositRequest
	if ok, err := parseRequest(c, h.validate, &req); !ok {
		return err
	}

	tx, user, err := h.service.Deposit(c.UserContext(), middleware.UserID(c), services.DepositRequest{
		Amount: req.Amount,
		UTR:    req.UTR,
		Method: req.Method,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Could not add funds")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Funds added successfully",
		"transaction": tx,
		"user":        user,
	})
}

// HandleTransactions returns the deposit history, newest first.
func (h *FundsHandler) HandleTransactions(c *fiber.Ctx) error {
	txs, err := h.service.Transactions(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve transactions")
	}
	return c.JSON(txs)
}

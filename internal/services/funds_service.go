package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"socialgrowth/internal/ledger"
	"socialgrowth/internal/models"
	"socialgrowth/internal/repositories"
)

// MinUTRLength is the shortest transaction reference accepted for a deposit.
const MinUTRLength = 10

// DefaultPaymentMethod is recorded when a deposit does not name one.
const DefaultPaymentMethod = "UPI"

// DepositRequest is a customer claim that an external payment was made.
type DepositRequest struct {
	Amount decimal.Decimal
	UTR    string
	Method string
}

// PaymentInfo tells the customer where to send money.
type PaymentInfo struct {
	UPIID        string  `json:"upi_id"`
	QuickAmounts []int64 `json:"quick_amounts"`
	MinUTRLength int     `json:"min_utr_length"`
}

// FundsService credits balances and keeps the deposit history.
type FundsService struct {
	txRepo repositories.TransactionRepository
	ledger *LedgerService
	events EventPublisher
	logger *zap.SugaredLogger
	upiID  string
	now    func() time.Time
}

// NewFundsService creates a new FundsService. events may be nil.
func NewFundsService(
	txRepo repositories.TransactionRepository,
	ledgerService *LedgerService,
	events EventPublisher,
	logger *zap.SugaredLogger,
	upiID string,
) *FundsService {
	return &FundsService{
		txRepo: txRepo,
		ledger: ledgerService,
		events: events,
		logger: logger,
		upiID:  upiID,
		now:    time.Now,
	}
}

// PaymentInfo returns the payee details shown before a deposit.
func (s *FundsService) PaymentInfo() PaymentInfo {
	return PaymentInfo{
		UPIID:        s.upiID,
		QuickAmounts: []int64{10, 50, 100, 500},
		MinUTRLength: MinUTRLength,
	}
}

// Deposit credits req.Amount to the user. The UTR is only length-checked; the
// payment itself is never verified.
func (s *FundsService) Deposit(ctx context.Context, userID string, req DepositRequest) (*models.Transaction, *models.User, error) {
	if !req.Amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}
	utr := strings.TrimSpace(req.UTR)
	if len(utr) < MinUTRLength {
		return nil, nil, fmt.Errorf("%w: need at least %d characters", ErrInvalidUTR, MinUTRLength)
	}
	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = DefaultPaymentMethod
	}

	var tx *models.Transaction
	user, err := s.ledger.Apply(ctx, userID, func(u *models.User) (*models.User, error) {
		record := &models.Transaction{
			UserID:    u.ID,
			Amount:    req.Amount,
			Method:    method,
			Status:    models.TransactionSuccess,
			UTR:       utr,
			CreatedAt: s.now(),
		}
		if err := s.txRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record deposit: %w", err)
		}
		tx = record
		return ledger.ApplyDeposit(u, req.Amount), nil
	})
	if err != nil {
		if tx != nil {
			s.failUncredited(ctx, tx.ID)
		}
		return nil, nil, err
	}

	s.logger.Infow("funds deposited",
		"transaction_id", tx.ID,
		"user_id", userID,
		"amount", tx.Amount.StringFixed(2),
		"method", tx.Method,
	)

	publishEvent(ctx, s.events, s.logger, EventFundsDeposited, map[string]any{
		"transaction_id": tx.ID,
		"user_id":        tx.UserID,
		"amount":         tx.Amount,
		"method":         tx.Method,
	})

	return tx, user, nil
}

func (s *FundsService) failUncredited(ctx context.Context, txID string) {
	if err := s.txRepo.UpdateStatus(ctx, txID, models.TransactionFailed); err != nil {
		s.logger.Errorw("failed to mark uncredited deposit", "transaction_id", txID, "error", err)
		return
	}
	s.logger.Warnw("marked deposit failed after credit was not persisted", "transaction_id", txID)
}

// Transactions returns the deposit history of a user, newest first.
func (s *FundsService) Transactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.txRepo.ListByUser(ctx, userID)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"socialgrowth/internal/ledger"
	"socialgrowth/internal/models"
	"socialgrowth/internal/pricing"
	"socialgrowth/internal/repositories"
)

const recentOrdersLimit = 5

// PlaceOrderRequest is the customer input for a new order.
type PlaceOrderRequest struct {
	ServiceID string
	Link      string
	Quantity  int
}

// Quote is a charge preview for a service and quantity.
type Quote struct {
	ServiceID string          `json:"service_id"`
	Quantity  int             `json:"quantity"`
	Charge    decimal.Decimal `json:"charge"`
	Display   string          `json:"display"`
}

// DashboardStats are the headline numbers of a customer's account.
type DashboardStats struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	TotalOrders  int             `json:"total_orders"`
	ActiveOrders int             `json:"active_orders"`
}

// Dashboard is the account overview: stats plus the most recent orders.
type Dashboard struct {
	Stats  DashboardStats `json:"stats"`
	Recent []models.Order `json:"recent_orders"`
}

// AdminStats summarizes the whole store.
type AdminStats struct {
	TotalUsers    int64           `json:"total_users"`
	TotalOrders   int64           `json:"total_orders"`
	PendingOrders int64           `json:"pending_orders"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	serviceRepo repositories.ServiceRepository
	userRepo    repositories.UserRepository
	ledger      *LedgerService
	events      EventPublisher
	logger      *zap.SugaredLogger
	now         func() time.Time
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	serviceRepo repositories.ServiceRepository,
	userRepo repositories.UserRepository,
	ledgerService *LedgerService,
	events EventPublisher,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		ledger:      ledgerService,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *OrderService) service(id string) (*models.Service, error) {
	svc, err := s.serviceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		return nil, err
	}
	return svc, nil
}

// Quote prices quantity units of a service without placing an order.
func (s *OrderService) Quote(serviceID string, quantity int) (*Quote, error) {
	svc, err := s.service(serviceID)
	if err != nil {
		return nil, err
	}
	if err := pricing.ValidateQuantity(*svc, quantity); err != nil {
		return nil, err
	}

	charge := pricing.Charge(*svc, quantity)
	return &Quote{
		ServiceID: svc.ID,
		Quantity:  quantity,
		Charge:    charge,
		Display:   pricing.Display(charge),
	}, nil
}

// PlaceOrder validates the request against the user's current balance, stores a
// pending order and debits the user. It returns the order and the new user snapshot.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*models.Order, *models.User, error) {
	svc, err := s.service(req.ServiceID)
	if err != nil {
		return nil, nil, err
	}

	var order *models.Order
	user, err := s.ledger.Apply(ctx, userID, func(u *models.User) (*models.User, error) {
		charge, err := pricing.Validate(*svc, req.Link, req.Quantity, u.Balance)
		if err != nil {
			return nil, err
		}

		created := &models.Order{
			UserID:      u.ID,
			UserName:    u.Name,
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Link:        strings.TrimSpace(req.Link),
			Quantity:    req.Quantity,
			Charge:      charge,
			Status:      models.OrderStatusPending,
			CreatedAt:   s.now(),
		}
		if err := s.orderRepo.Create(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to create order in repository: %w", err)
		}
		order = created
		return ledger.ApplyOrder(u, *created), nil
	})
	if err != nil {
		if order != nil {
			// The order row exists but the debit was not persisted.
			s.cancelUnpaid(ctx, order.ID)
		}
		return nil, nil, err
	}

	s.logger.Infow("order placed",
		"order_id", order.ID,
		"user_id", userID,
		"service_id", svc.ID,
		"quantity", order.Quantity,
		"charge", pricing.Display(order.Charge),
	)

	publishEvent(ctx, s.events, s.logger, EventOrderCreated, map[string]any{
		"order_id":   order.ID,
		"user_id":    order.UserID,
		"service_id": order.ServiceID,
		"quantity":   order.Quantity,
		"charge":     order.Charge,
		"status":     order.Status,
	})

	return order, user, nil
}

func (s *OrderService) cancelUnpaid(ctx context.Context, orderID string) {
	if err := s.orderRepo.UpdateStatus(ctx, orderID, models.OrderStatusCancelled); err != nil {
		s.logger.Errorw("failed to cancel unpaid order", "order_id", orderID, "error", err)
		return
	}
	s.logger.Warnw("cancelled order after failed debit", "order_id", orderID)
}

// ListForUser returns the order history of a user, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetForUser returns one order if it belongs to userID.
func (s *OrderService) GetForUser(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return order, nil
}

// Dashboard builds the account overview of a user.
func (s *OrderService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	user, err := s.ledger.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, o := range orders {
		if o.Status == models.OrderStatusInProgress {
			active++
		}
	}
	recent := orders
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}

	return &Dashboard{
		Stats: DashboardStats{
			Balance:      user.Balance,
			TotalSpent:   user.TotalSpent,
			TotalOrders:  user.TotalOrders,
			ActiveOrders: active,
		},
		Recent: recent,
	}, nil
}

// ListAll returns the global order feed, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

// UpdateStatus sets the status of an order. Balances are not touched.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to update order status for order %s: %w", orderID, err)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.events, s.logger, EventOrderStatusChanged, map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
	})
	return order, nil
}

// AdminStats summarizes users and orders across the store.
func (s *OrderService) AdminStats(ctx context.Context) (*AdminStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminStats{
		TotalUsers:    users,
		TotalOrders:   orders.Total,
		PendingOrders: orders.Pending,
		Revenue:       orders.Revenue,
	}, nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the display status of an order. Nothing in the system advances it
// automatically; it is set at creation and only changed by an admin.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a placed SMM order.
type Order struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string          `json:"user_id" gorm:"index;type:varchar(36)"`
	UserName    string          `json:"user_name,omitempty" gorm:"type:varchar(100)"`
	ServiceID   string          `json:"service_id" gorm:"type:varchar(36)"`
	ServiceName string          `json:"service_name" gorm:"type:varchar(255)"`
	Link        string          `json:"link" gorm:"type:varchar(2048)"`
	Quantity    int             `json:"quantity"`
	Charge      decimal.Decimal `json:"charge" gorm:"type:decimal(20,6)"`
	Status      OrderStatus     `json:"status" gorm:"index;type:varchar(20)"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

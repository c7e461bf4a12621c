package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role separates store customers from the back-office account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the full account snapshot. It is persisted wholesale after every mutation.
type User struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string          `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Name         string          `json:"name" gorm:"type:varchar(100)"`
	Role         Role            `json:"role" gorm:"type:varchar(10)"`
	Niche        string          `json:"niche,omitempty" gorm:"type:varchar(100)"`
	Balance      decimal.Decimal `json:"balance" gorm:"type:decimal(20,6)"`
	TotalSpent   decimal.Decimal `json:"total_spent" gorm:"type:decimal(20,6)"`
	TotalOrders  int             `json:"total_orders"`
	JoinedAt     time.Time       `json:"joined_at"`
	PasswordHash string          `json:"-" gorm:"type:varchar(255)"` // No json tag for security
}

// IsAdmin reports whether the user has back-office access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

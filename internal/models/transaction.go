package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the outcome of a deposit.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "Success"
	TransactionPending TransactionStatus = "Pending"
	TransactionFailed  TransactionStatus = "Failed"
)

// Transaction records a funds deposit. The UTR is stored as given and never verified.
type Transaction struct {
	ID        string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string            `json:"user_id" gorm:"index;type:varchar(36)"`
	Amount    decimal.Decimal   `json:"amount" gorm:"type:decimal(20,6)"`
	Method    string            `json:"method" gorm:"type:varchar(30)"`
	Status    TransactionStatus `json:"status" gorm:"type:varchar(10)"`
	UTR       string            `json:"utr" gorm:"type:varchar(64)"`
	CreatedAt time.Time         `json:"created_at"`
}

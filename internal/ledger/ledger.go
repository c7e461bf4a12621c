// Package ledger applies balance mutations to user snapshots.
//
// The Apply functions never modify their input; they return a new snapshot so the
// caller can persist it wholesale.
package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"socialgrowth/internal/models"
)

// ApplyOrder debits the order charge and bumps the spend and order totals.
// It returns nil when there is no active user.
func ApplyOrder(user *models.User, order models.Order) *models.User {
	if user == nil {
		return nil
	}
	next := *user
	next.Balance = user.Balance.Sub(order.Charge)
	next.TotalSpent = user.TotalSpent.Add(order.Charge)
	next.TotalOrders = user.TotalOrders + 1
	return &next
}

// ApplyDeposit credits amount to the balance. Totals are left untouched.
// It returns nil when there is no active user.
func ApplyDeposit(user *models.User, amount decimal.Decimal) *models.User {
	if user == nil {
		return nil
	}
	next := *user
	next.Balance = user.Balance.Add(amount)
	return &next
}

// Guard serializes read-modify-write cycles per user id.
type Guard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for userID and returns its release function.
func (g *Guard) Lock(userID string) (unlock func()) {
	g.mu.Lock()
	l, ok := g.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[userID] = l
	}
	g.mu.Unlock()

	l.Lock()
	return l.Unlock
}

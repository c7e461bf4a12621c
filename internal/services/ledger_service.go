package services

import (
	"context"
	"errors"
	"fmt"

	"socialgrowth/internal/ledger"
	"socialgrowth/internal/models"
	"socialgrowth/internal/repositories"
)

// Mutation turns a loaded snapshot into the snapshot to persist.
// Returning a nil snapshot and nil error leaves the stored snapshot untouched.
type Mutation func(user *models.User) (*models.User, error)

// LedgerService runs read-modify-write cycles on user snapshots, one at a time per user.
type LedgerService struct {
	users repositories.UserRepository
	guard *ledger.Guard
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(users repositories.UserRepository) *LedgerService {
	return &LedgerService{
		users: users,
		guard: ledger.NewGuard(),
	}
}

// Apply loads the snapshot of userID, runs mutate on it and saves the result wholesale.
func (l *LedgerService) Apply(ctx context.Context, userID string, mutate Mutation) (*models.User, error) {
	unlock := l.guard.Lock(userID)
	defer unlock()

	user, err := l.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user snapshot: %w", err)
	}

	next, err := mutate(user)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return user, nil
	}

	if err := l.users.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to persist user snapshot: %w", err)
	}
	return next, nil
}

// Snapshot returns the current stored snapshot of userID.
func (l *LedgerService) Snapshot(ctx context.Context, userID string) (*models.User, error) {
	user, err := l.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user snapshot: %w", err)
	}
	return user, nil
}

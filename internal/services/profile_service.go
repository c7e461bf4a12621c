package services

import (
	"context"
	"strings"

	"socialgrowth/internal/models"
)

// ProfileUpdate carries the editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name  *string
	Niche *string
}

// ProfileService reads and edits the user snapshot.
type ProfileService struct {
	ledger *LedgerService
}

// NewProfileService creates a new ProfileService.
func NewProfileService(ledgerService *LedgerService) *ProfileService {
	return &ProfileService{ledger: ledgerService}
}

// Get returns the stored snapshot of a user.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.ledger.Snapshot(ctx, userID)
}

// Update edits the display name and niche and persists the snapshot.
func (s *ProfileService) Update(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	return s.ledger.Apply(ctx, userID, func(u *models.User) (*models.User, error) {
		if upd.Name == nil && upd.Niche == nil {
			return nil, nil
		}
		next := *u
		if upd.Name != nil {
			next.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Niche != nil {
			next.Niche = strings.TrimSpace(*upd.Niche)
		}
		return &next, nil
	})
}

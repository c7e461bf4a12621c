package repositories

import (
	"context"

	"socialgrowth/internal/models"
)

// UserRepository defines the interface for user snapshot storage.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Save overwrites the whole stored snapshot with user.
	Save(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
}

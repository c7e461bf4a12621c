package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialgrowth/internal/models"
)

// TransactionRepository stores deposit records.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error
}

// GORMTransactionRepository is a GORM implementation of TransactionRepository.
type GORMTransactionRepository struct {
	db *gorm.DB
}

// NewGORMTransactionRepository creates a new instance of GORMTransactionRepository.
func NewGORMTransactionRepository(db *gorm.DB) *GORMTransactionRepository {
	return &GORMTransactionRepository{db: db}
}

// Create inserts a deposit record.
func (r *GORMTransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListByUser returns the deposits of one user, newest first.
func (r *GORMTransactionRepository) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	txs := make([]models.Transaction, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions of user %s: %w", userID, err)
	}
	return txs, nil
}

// UpdateStatus changes the status of a deposit record.
func (r *GORMTransactionRepository) UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("transaction with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

package repositories

import (
	"context"
	"time"

	"iadev-dashboard/internal/adapters/persistence/models"
	"iadev-dashboard/internal/core/domain"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// GetByID gets a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Update updates a transaction
func (r *transactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// Delete deletes a transaction
func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListBetween lists transactions dated within [start, end], newest first
func (r *transactionRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("data >= ? AND data <= ?", start, end).
		Order("data DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// SumBefore aggregates in the database instead of loading every row
func (r *transactionRepository) SumBefore(ctx context.Context, t time.Time) (float64, error) {
	var total float64
	income := []string{string(domain.KindTithe), string(domain.KindOffering)}
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN tipo IN ? THEN valor ELSE -valor END), 0)", income).
		Where("data < ?", t).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SearchDescription matches descriptions against a case-insensitive regular expression
func (r *transactionRepository) SearchDescription(ctx context.Context, pattern string, limit int) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("REGEXP_LIKE(descricao, ?, 'i')", pattern).
		Order("data DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// List lists every transaction, oldest first
func (r *transactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	if err := r.db.WithContext(ctx).Order("data ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

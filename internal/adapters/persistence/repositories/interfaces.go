package repositories

import (
	"context"
	"time"

	"iadev-dashboard/internal/adapters/persistence/models"
)

// MemberRepository defines member repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	// GetAdministratorByUsername matches usuario case-insensitively among administrators only
	GetAdministratorByUsername(ctx context.Context, username string) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Member, error)
}

// TransactionRepository defines transaction repository interface
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id uint) error
	ListBetween(ctx context.Context, start, end time.Time) ([]*models.Transaction, error)
	// SumBefore returns the signed total of every transaction dated strictly before t
	SumBefore(ctx context.Context, t time.Time) (float64, error)
	SearchDescription(ctx context.Context, pattern string, limit int) ([]*models.Transaction, error)
	List(ctx context.Context) ([]*models.Transaction, error)
}

// OrganizationRepository defines organization profile repository interface
type OrganizationRepository interface {
	Get(ctx context.Context) (*models.Organization, error)
	Save(ctx context.Context, org *models.Organization) error
}

package repositories

import (
	"context"

	"iadev-dashboard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// organizationRepository implements OrganizationRepository interface.
// The table holds at most one row.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

// Get gets the organization profile
func (r *organizationRepository) Get(ctx context.Context) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).Order("id ASC").First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Save creates the profile or updates the existing row
func (r *organizationRepository) Save(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

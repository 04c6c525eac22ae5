package repositories

import (
	"context"

	"iadev-dashboard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAdministratorByUsername gets an administrator by login name, ignoring case
func (r *memberRepository) GetAdministratorByUsername(ctx context.Context, username string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		Where("LOWER(usuario) = LOWER(?)", username).
		Where("is_administrador = ?", true).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update writes every column, so cleared credentials are persisted as NULL
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete deletes a member
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Member{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lists all members ordered by name
func (r *memberRepository) List(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

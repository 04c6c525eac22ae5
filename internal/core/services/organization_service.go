package services

import (
	"context"
	"errors"
	"fmt"

	"iadev-dashboard/internal/adapters/persistence/models"
	"iadev-dashboard/internal/adapters/persistence/repositories"
	"iadev-dashboard/internal/core/domain"

	"gorm.io/gorm"
)

// OrganizationService handles the organization profile
type OrganizationService struct {
	orgRepo repositories.OrganizationRepository
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(orgRepo repositories.OrganizationRepository) *OrganizationService {
	return &OrganizationService{orgRepo: orgRepo}
}

// OrganizationInput represents submitted profile fields. Nil fields are left untouched.
type OrganizationInput struct {
	LegalName    *string `json:"razaoSocial"`
	TradeName    *string `json:"nomeFantasia"`
	TaxID        *string `json:"cnpj"`
	Email        *string `json:"email"`
	Phone        *string `json:"telefone"`
	Address      *string `json:"endereco"`
	City         *string `json:"cidade"`
	State        *string `json:"estado"`
	PostalCode   *string `json:"cep"`
	FoundingDate *string `json:"dataFundacao"`
}

// Get returns the profile, or nil when none was saved yet
func (s *OrganizationService) Get(ctx context.Context) (*models.Organization, error) {
	org, err := s.orgRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return org, nil
}

// Set creates the profile or merges submitted fields into it
func (s *OrganizationService) Set(ctx context.Context, input *OrganizationInput) (*models.Organization, error) {
	org, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if org == nil {
		org = &models.Organization{}
	}

	assign(&org.LegalName, input.LegalName)
	assign(&org.TradeName, input.TradeName)
	assign(&org.TaxID, input.TaxID)
	assign(&org.Email, input.Email)
	assign(&org.Phone, input.Phone)
	assign(&org.Address, input.Address)
	assign(&org.City, input.City)
	assign(&org.State, input.State)
	assign(&org.PostalCode, input.PostalCode)
	assign(&org.FoundingDate, input.FoundingDate)

	if err := s.orgRepo.Save(ctx, org); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return org, nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

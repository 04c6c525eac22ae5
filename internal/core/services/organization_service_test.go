package services

import (
	"context"
	"testing"

	"iadev-dashboard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationGetEmpty(t *testing.T) {
	svc := NewOrganizationService(&fakeOrgRepo{})

	org, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, org)
}

func TestOrganizationSetMerges(t *testing.T) {
	repo := &fakeOrgRepo{}
	svc := NewOrganizationService(repo)

	_, err := svc.Set(context.Background(), &OrganizationInput{
		TradeName: strPtr("IADEV"),
		City:      strPtr("Recife"),
	})
	require.NoError(t, err)

	org, err := svc.Set(context.Background(), &OrganizationInput{Email: strPtr("contato@iadev.org")})
	require.NoError(t, err)
	assert.Equal(t, uint(1), org.ID)
	assert.Equal(t, "IADEV", org.TradeName)
	assert.Equal(t, "Recife", org.City)
	assert.Equal(t, "contato@iadev.org", org.Email)
}

func TestOrganizationStoreFailure(t *testing.T) {
	svc := NewOrganizationService(&fakeOrgRepo{err: errStoreDown})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

package repository

import (
	"context"
	"testing"

	"github.com/benx421/minibank/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_Create(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	first := models.NewIndividualCustomer("111", "Ana", "01-01-1990", "Street")
	require.NoError(t, repo.Create(ctx, first))

	duplicate := models.NewIndividualCustomer("111", "Another Ana", "02-02-1992", "Avenue")
	err := repo.Create(ctx, duplicate)
	assert.ErrorIs(t, err, models.ErrDuplicateTaxID)

	second := models.NewIndividualCustomer("222", "Bruno", "03-03-1993", "Road")
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.FindByTaxID(ctx, "111")
	require.NoError(t, err)
	assert.Same(t, first, got, "a rejected duplicate must not replace the registered customer")
}

func TestCustomerRepository_Find(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	customer := models.NewIndividualCustomer("111", "Ana", "01-01-1990", "Street")
	require.NoError(t, repo.Create(ctx, customer))

	t.Run("by tax id", func(t *testing.T) {
		got, err := repo.FindByTaxID(ctx, "111")
		require.NoError(t, err)
		assert.Same(t, customer, got)
	})

	t.Run("by unknown tax id", func(t *testing.T) {
		got, err := repo.FindByTaxID(ctx, "999")
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("by id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, customer.ID)
		require.NoError(t, err)
		assert.Same(t, customer, got)
	})

	t.Run("by unknown id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, got)
	})
}

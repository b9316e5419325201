package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCalculator_PriceCart(t *testing.T) {
	calculator := services.NewPriceCalculator()

	pizzaID := kernel.NewUUID()
	colaID := kernel.NewUUID()
	prices := map[kernel.UUID]int64{
		pizzaID: 29900,
		colaID:  4500,
	}

	t.Run("should price every line from the catalog", func(t *testing.T) {
		lines := []services.CartLine{
			{MenuItemID: pizzaID, Quantity: 2},
			{MenuItemID: colaID, Quantity: 3},
		}

		items, total, err := calculator.PriceCart(lines, prices)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(2*29900+3*4500), total)
		assert.True(t, items[0].MenuItemID().IsEqual(pizzaID))
		assert.Equal(t, int64(29900), items[0].PriceAtOrder())
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, int64(4500), items[1].PriceAtOrder())
	})

	t.Run("client amounts never matter, only catalog prices", func(t *testing.T) {
		lines := []services.CartLine{{MenuItemID: pizzaID, Quantity: 1}}

		_, total, err := calculator.PriceCart(lines, map[kernel.UUID]int64{pizzaID: 100})

		require.NoError(t, err)
		assert.Equal(t, int64(100), total)
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		_, _, err := calculator.PriceCart(nil, prices)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a line referencing an unknown menu item", func(t *testing.T) {
		lines := []services.CartLine{{MenuItemID: kernel.NewUUID(), Quantity: 1}}

		_, _, err := calculator.PriceCart(lines, prices)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		lines := []services.CartLine{{MenuItemID: pizzaID, Quantity: 0}}

		_, _, err := calculator.PriceCart(lines, prices)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a zero total", func(t *testing.T) {
		freeID := kernel.NewUUID()
		lines := []services.CartLine{{MenuItemID: freeID, Quantity: 2}}

		_, _, err := calculator.PriceCart(lines, map[kernel.UUID]int64{freeID: 0})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

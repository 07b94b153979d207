package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMedicine(t *testing.T) {
	ctx := context.Background()

	t.Run("stores prices as cents", func(t *testing.T) {
		svc := newTestServices(t)

		med, err := svc.inventory.CreateMedicine(ctx, &MedicineInput{
			Name:     "Paracetamol",
			Price:    10.99,
			Quantity: 50,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1099, med.Price)
		assert.Equal(t, 10.99, med.GetPriceDecimal())
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := newTestServices(t)

		_, err := svc.inventory.CreateMedicine(ctx, &MedicineInput{Price: 1})
		assert.Error(t, err, "missing name")

		_, err = svc.inventory.CreateMedicine(ctx, &MedicineInput{Name: "X", Price: 0})
		assert.Error(t, err, "non-positive price")

		_, err = svc.inventory.CreateMedicine(ctx, &MedicineInput{Name: "X", Price: 1, Quantity: -1})
		assert.Error(t, err, "negative quantity")
	})
}

func TestUpdateMedicine(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 50)

	t.Run("nil fields keep current values", func(t *testing.T) {
		qty := 30
		updated, err := svc.inventory.UpdateMedicine(ctx, med.ID, &UpdateMedicineInput{Quantity: &qty})
		require.NoError(t, err)
		assert.Equal(t, 30, updated.Quantity)
		assert.Equal(t, "Paracetamol", updated.Name)
		assert.Equal(t, 10.00, updated.GetPriceDecimal())
	})

	t.Run("clear expiry wins over a provided date", func(t *testing.T) {
		expiry := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		updated, err := svc.inventory.UpdateMedicine(ctx, med.ID, &UpdateMedicineInput{ExpiryDate: &expiry})
		require.NoError(t, err)
		require.NotNil(t, updated.ExpiryDate)

		updated, err = svc.inventory.UpdateMedicine(ctx, med.ID, &UpdateMedicineInput{
			ExpiryDate:  &expiry,
			ClearExpiry: true,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.ExpiryDate)
	})

	t.Run("unknown medicine", func(t *testing.T) {
		_, err := svc.inventory.UpdateMedicine(ctx, 999, &UpdateMedicineInput{})
		require.Error(t, err)
		assert.Equal(t, "Medicine not found", err.Error())
	})
}

func TestListMedicines(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.inventory.WithClock(fixedClock(now))

	seedMedicine(t, svc.db, "Paracetamol", 10.00, 50)
	seedMedicine(t, svc.db, "Aspirin", 3.00, LowStockThreshold)
	expiring := seedMedicine(t, svc.db, "Cough Syrup", 6.00, 20)
	soon := now.AddDate(0, 0, 14)
	require.NoError(t, svc.db.Model(expiring).Update("expiry_date", soon).Error)

	items, err := svc.inventory.ListMedicines(ctx, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)

	byName := map[string]MedicineListItem{}
	for _, item := range items {
		byName[item.Name] = item
	}

	assert.True(t, byName["Aspirin"].LowStock)
	assert.False(t, byName["Paracetamol"].LowStock)
	assert.Equal(t, "near_expiry", byName["Cough Syrup"].ExpiryStatus)
	assert.Equal(t, "normal", byName["Paracetamol"].ExpiryStatus)
}

func TestListMedicinesSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	seedMedicine(t, svc.db, "Paracetamol", 10.00, 50)
	seedMedicine(t, svc.db, "Ibuprofen", 4.00, 50)

	items, err := svc.inventory.ListMedicines(ctx, &repository.MedicineFilterParams{Search: "ibu"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ibuprofen", items[0].Name)
}

func TestListSellable(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	seedMedicine(t, svc.db, "Paracetamol", 10.00, 50)
	seedMedicine(t, svc.db, "Out Of Stock Tonic", 8.00, 0)

	medicines, err := svc.inventory.ListSellable(ctx)
	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
}

func TestDeleteMedicine(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 50)

	require.NoError(t, svc.inventory.DeleteMedicine(ctx, med.ID))

	var count int64
	require.NoError(t, svc.db.Model(&entity.Medicine{}).Count(&count).Error)
	assert.Zero(t, count)

	err := svc.inventory.DeleteMedicine(ctx, med.ID)
	require.Error(t, err)
	assert.Equal(t, "Medicine not found", err.Error())
}

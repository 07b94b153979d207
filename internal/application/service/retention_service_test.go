package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/sangkips/pharmacy-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionCutoff(t *testing.T) {
	svc := newTestServices(t)
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	svc.retention.WithClock(fixedClock(now))

	cases := []struct {
		period string
		want   time.Time
	}{
		{PeriodDaily, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{PeriodWeekly, time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)},
		{PeriodMonthly, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{PeriodHalfYearly, time.Date(2023, 8, 5, 0, 0, 0, 0, time.UTC)},
		{PeriodYearly, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		cutoff, err := svc.retention.Cutoff(tc.period)
		require.NoError(t, err, tc.period)
		assert.True(t, cutoff.Equal(tc.want), "%s: got %v want %v", tc.period, cutoff, tc.want)
	}

	_, err := svc.retention.Cutoff("fortnightly")
	assert.ErrorIs(t, err, apperror.ErrInvalidPeriod)
}

func TestApplyReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	svc.retention.WithClock(fixedClock(now))

	med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)
	oldSale := seedSale(t, svc.db, med.ID, 1, med.Price, time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC))
	recent := seedSale(t, svc.db, med.ID, 1, med.Price, time.Date(2024, 1, 26, 10, 0, 0, 0, time.UTC))

	deleted, err := svc.retention.ApplyReset(ctx, PeriodWeekly)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var remaining []entity.Sale
	require.NoError(t, svc.db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, recent.ID, remaining[0].ID)
	assert.NotEqual(t, oldSale.ID, remaining[0].ID)

	// Inventory is untouched by a reset
	var m entity.Medicine
	require.NoError(t, svc.db.First(&m, med.ID).Error)
	assert.Equal(t, 100, m.Quantity)
}

func TestPreviewReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	svc.retention.WithClock(fixedClock(now))

	med := seedMedicine(t, svc.db, "Paracetamol", 10.00, 100)
	seedSale(t, svc.db, med.ID, 2, med.Price, time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC))
	seedSale(t, svc.db, med.ID, 3, med.Price, time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC))
	seedSale(t, svc.db, med.ID, 1, med.Price, time.Date(2024, 1, 30, 10, 0, 0, 0, time.UTC))

	preview, err := svc.retention.PreviewReset(ctx, PeriodWeekly)
	require.NoError(t, err)
	assert.EqualValues(t, 2, preview.Count)
	assert.Equal(t, 50.00, preview.TotalValue)
	assert.True(t, preview.Cutoff.Equal(time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)))

	// A second preview with no intervening writes reports the same thing
	again, err := svc.retention.PreviewReset(ctx, PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, preview, again)

	// Preview does not delete
	var count int64
	require.NoError(t, svc.db.Model(&entity.Sale{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	// Apply deletes exactly what the preview promised
	deleted, err := svc.retention.ApplyReset(ctx, PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, preview.Count, deleted)
}

func TestResetInvalidPeriod(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	_, err := svc.retention.PreviewReset(ctx, "quarterly")
	assert.ErrorIs(t, err, apperror.ErrInvalidPeriod)

	_, err = svc.retention.ApplyReset(ctx, "")
	assert.ErrorIs(t, err, apperror.ErrInvalidPeriod)
}

package service

import (
	"context"
	"time"

	"github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/sangkips/pharmacy-api/pkg/apperror"
)

// RetentionService purges old sale records after an explicit preview/confirm
// round trip. Medicines and customers are never touched.
type RetentionService struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewRetentionService creates a new retention service
func NewRetentionService(saleRepo repository.SaleRepository) *RetentionService {
	return &RetentionService{
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

// WithClock overrides the service clock for deterministic cutoffs
func (s *RetentionService) WithClock(now func() time.Time) *RetentionService {
	s.now = now
	return s
}

// Reset periods and their cutoff offsets from now
const (
	PeriodDaily      = "daily"
	PeriodWeekly     = "weekly"
	PeriodMonthly    = "monthly"
	PeriodHalfYearly = "half_yearly"
	PeriodYearly     = "yearly"
)

var periodOffsets = map[string]time.Duration{
	PeriodDaily:      24 * time.Hour,
	PeriodWeekly:     7 * 24 * time.Hour,
	PeriodMonthly:    30 * 24 * time.Hour,
	PeriodHalfYearly: 180 * 24 * time.Hour,
	PeriodYearly:     365 * 24 * time.Hour,
}

// Cutoff maps a period token to its cutoff timestamp. Preview and apply both
// go through here so the number shown to the admin matches what is deleted.
func (s *RetentionService) Cutoff(period string) (time.Time, error) {
	offset, ok := periodOffsets[period]
	if !ok {
		return time.Time{}, apperror.ErrInvalidPeriod
	}
	return s.now().Add(-offset), nil
}

// ResetPreview describes what a reset would delete
type ResetPreview struct {
	Period     string    `json:"period"`
	Count      int64     `json:"count"`
	TotalValue float64   `json:"total_value"`
	Cutoff     time.Time `json:"cutoff"`
}

// PreviewReset reports the count and value of sales older than the period
// cutoff, without deleting anything
func (s *RetentionService) PreviewReset(ctx context.Context, period string) (*ResetPreview, error) {
	cutoff, err := s.Cutoff(period)
	if err != nil {
		return nil, err
	}

	count, sumCents, err := s.saleRepo.CountAndSumBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	return &ResetPreview{
		Period:     period,
		Count:      count,
		TotalValue: float64(sumCents) / 100,
		Cutoff:     cutoff,
	}, nil
}

// ApplyReset deletes all sales with timestamp before the period cutoff and
// returns the number of deleted records
func (s *RetentionService) ApplyReset(ctx context.Context, period string) (int64, error) {
	cutoff, err := s.Cutoff(period)
	if err != nil {
		return 0, err
	}
	return s.saleRepo.DeleteBefore(ctx, cutoff)
}

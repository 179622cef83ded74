package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/tpm-api/internal/domain"
)

const (
	DefaultRecentActivitiesLimit = 10
	// recentActivitiesScanLimit limita quantas atividades recentes passam pelo filtro
	recentActivitiesScanLimit = 200
)

func (s *Service) ListPromotions(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]*domain.Promotion, error) {
	promotions, err := s.promotionRepository.ListPromotions(ctx)
	if err != nil {
		return nil, fetchError(err, "promotions")
	}

	return Apply(promotions, Compose(filter, nowOrDefault(now))), nil
}

func (s *Service) ListDeductions(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]*domain.Deduction, error) {
	deductions, err := s.deductionRepository.ListDeductions(ctx)
	if err != nil {
		return nil, fetchError(err, "deductions")
	}

	return Apply(deductions, Compose(filter, nowOrDefault(now))), nil
}

func (s *Service) ListSalesData(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]*domain.SalesDataPoint, error) {
	sales, err := s.salesDataRepository.ListSalesData(ctx)
	if err != nil {
		return nil, fetchError(err, "sales data")
	}

	return Apply(sales, Compose(filter, nowOrDefault(now))), nil
}

// RecentActivities filtra as atividades mais recentes e devolve no máximo limit,
// da mais nova para a mais antiga
func (s *Service) RecentActivities(ctx context.Context, filter domain.FilterSpec, limit int, now time.Time) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultRecentActivitiesLimit
	}

	if s.activityRepository == nil {
		return []*domain.Activity{}, nil
	}

	activities, err := s.activityRepository.ListRecent(ctx, max(limit, recentActivitiesScanLimit))
	if err != nil {
		return nil, fetchError(err, "activities")
	}

	filtered := Apply(activities, Compose(filter, nowOrDefault(now)))
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return filtered, nil
}

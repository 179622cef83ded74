// Package analyzing contém o motor de análises de desempenho das promoções
package analyzing

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/infrastructure/repository"
	"github.com/vfg2006/tpm-api/internal/config"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
	"golang.org/x/sync/singleflight"
)

// Service carrega os registros dos repositórios e aplica as funções puras de análise
type Service struct {
	promotionRepository repository.PromotionRepository
	salesDataRepository repository.SalesDataRepository
	deductionRepository repository.DeductionRepository
	activityRepository  repository.ActivityRepository
	cache               Cache
	group               singleflight.Group
	topLimit            int
	priorityLimit       int
}

func NewService(
	promotionRepo repository.PromotionRepository,
	salesDataRepo repository.SalesDataRepository,
	deductionRepo repository.DeductionRepository,
	activityRepo repository.ActivityRepository,
	cache Cache,
	cfg *config.Config,
) *Service {
	s := &Service{
		promotionRepository: promotionRepo,
		salesDataRepository: salesDataRepo,
		deductionRepository: deductionRepo,
		activityRepository:  activityRepo,
		cache:               cache,
		topLimit:            DefaultTopPromotionsLimit,
		priorityLimit:       DefaultPriorityDeductionsLimit,
	}

	if cfg != nil {
		if cfg.Analytics.TopPromotionsLimit > 0 {
			s.topLimit = cfg.Analytics.TopPromotionsLimit
		}
		if cfg.Analytics.PriorityDeductionsLimit > 0 {
			s.priorityLimit = cfg.Analytics.PriorityDeductionsLimit
		}
	}

	return s
}

func (s *Service) GetKPIs(ctx context.Context, year int) (*domain.KPISummary, error) {
	result := &domain.KPISummary{}
	err := s.cached(ctx, result, func(ctx context.Context) (any, error) {
		promotions, err := s.promotionRepository.ListPromotions(ctx)
		if err != nil {
			return nil, fetchError(err, "promotions")
		}
		sales, err := s.salesDataRepository.ListSalesData(ctx)
		if err != nil {
			return nil, fetchError(err, "sales data")
		}
		deductions, err := s.deductionRepository.ListDeductions(ctx)
		if err != nil {
			return nil, fetchError(err, "deductions")
		}

		summary := Summarize(promotions, sales, deductions, year)
		return &summary, nil
	}, "kpis", strconv.Itoa(year))
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) GetROITrend(ctx context.Context, query TrendQuery) ([]domain.ROITrendPoint, error) {
	now := nowOrDefault(query.Now)

	var result []domain.ROITrendPoint
	err := s.cached(ctx, &result, func(ctx context.Context) (any, error) {
		sales, err := s.salesDataRepository.ListSalesData(ctx)
		if err != nil {
			return nil, fetchError(err, "sales data")
		}

		filtered := Apply(sales, Compose(query.Filter, now))

		opts := make([]TrendOption, 0, 1)
		if query.Chronological {
			opts = append(opts, WithChronologicalOrder())
		}

		return AggregateROITrend(filtered, query.Period, query.Granularity, now, opts...), nil
	},
		"roi_trend",
		string(query.Period),
		string(query.Granularity),
		strconv.FormatBool(query.Chronological),
		filterToken(query.Filter),
		now.Format(time.DateOnly),
	)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) GetRollup(ctx context.Context, filter domain.FilterSpec, dimension domain.RollupDimension, now time.Time) ([]domain.RollupRow, error) {
	now = nowOrDefault(now)

	var result []domain.RollupRow
	err := s.cached(ctx, &result, func(ctx context.Context) (any, error) {
		promotions, err := s.promotionRepository.ListPromotions(ctx)
		if err != nil {
			return nil, fetchError(err, "promotions")
		}
		sales, err := s.salesDataRepository.ListSalesData(ctx)
		if err != nil {
			return nil, fetchError(err, "sales data")
		}

		filtered := Apply(promotions, Compose(filter, now))
		return Rollup(filtered, sales, dimension), nil
	}, "rollup", string(dimension), filterToken(filter), now.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) GetTopPromotions(ctx context.Context, limit int) ([]domain.TopPromotion, error) {
	if limit <= 0 {
		limit = s.topLimit
	}

	var result []domain.TopPromotion
	err := s.cached(ctx, &result, func(ctx context.Context) (any, error) {
		promotions, err := s.promotionRepository.ListPromotions(ctx)
		if err != nil {
			return nil, fetchError(err, "promotions")
		}
		sales, err := s.salesDataRepository.ListSalesData(ctx)
		if err != nil {
			return nil, fetchError(err, "sales data")
		}

		return TopPromotions(promotions, sales, limit), nil
	}, "top_promotions", strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) GetPriorityDeductions(ctx context.Context, limit int) ([]*domain.Deduction, error) {
	if limit <= 0 {
		limit = s.priorityLimit
	}

	deductions, err := s.deductionRepository.ListDeductions(ctx)
	if err != nil {
		return nil, fetchError(err, "deductions")
	}

	return PriorityDeductions(deductions, limit), nil
}

func (s *Service) GetDeductionBreakdown(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]domain.DeductionStatusTotal, error) {
	now = nowOrDefault(now)

	deductions, err := s.deductionRepository.ListDeductions(ctx)
	if err != nil {
		return nil, fetchError(err, "deductions")
	}

	return DeductionStatusBreakdown(Apply(deductions, Compose(filter, now))), nil
}

func (s *Service) GetUpcomingPromotions(ctx context.Context, now time.Time) ([]*domain.Promotion, error) {
	now = nowOrDefault(now)

	promotions, err := s.promotionRepository.ListByStatus(ctx, domain.PromotionStatusPlanned)
	if err != nil {
		return nil, fetchError(err, "promotions")
	}

	return UpcomingPromotions(promotions, now), nil
}

func (s *Service) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Bump(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao invalidar cache de análises")
		return err
	}
	return nil
}

// cached resolve a chave versionada e carrega o valor do cache, agrupando
// requisições concorrentes para a mesma chave em uma única carga.
func (s *Service) cached(ctx context.Context, dest any, loader func(context.Context) (any, error), parts ...string) error {
	if s.cache == nil {
		value, err := s.load(ctx, keyFromParts(parts), loader)
		if err != nil {
			return err
		}
		return assign(value, dest)
	}

	key, err := s.cache.BuildKey(ctx, append([]string{"analytics"}, parts...)...)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao montar chave de cache, consultando sem cache")
		value, err := s.load(ctx, keyFromParts(parts), loader)
		if err != nil {
			return err
		}
		return assign(value, dest)
	}

	return s.cache.FetchJSON(ctx, key, dest, func(ctx context.Context) (any, error) {
		return s.load(ctx, key, loader)
	})
}

// load executa o loader uma única vez por chave. A carga compartilhada não herda
// o cancelamento de quem a iniciou; cada chamador deixa de esperar no próprio ctx.
func (s *Service) load(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	shared := context.WithoutCancel(ctx)
	resultChan := s.group.DoChan(key, func() (any, error) {
		return loader(shared)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		return res.Val, res.Err
	}
}

func fetchError(err error, entity string) error {
	logrus.WithError(err).Errorf("Erro ao buscar %s para análise", entity)
	return NewAnalyticsError(errors.Wrap(ErrFetchData, err.Error()), apiErrors.ErrDatabaseOperation, entity)
}

func nowOrDefault(now time.Time) time.Time {
	if now.IsZero() {
		return time.Now()
	}
	return now
}

package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// Cache define o cache versionado usado pelas consultas analíticas
type Cache interface {
	BuildKey(ctx context.Context, parts ...string) (string, error)
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error
	Bump(ctx context.Context) error
}

// TrendQuery agrupa os parâmetros da tendência de ROI
type TrendQuery struct {
	Filter        domain.FilterSpec
	Period        domain.TimePeriod
	Granularity   domain.Granularity
	Chronological bool
	Now           time.Time
}

// Analyzer expõe as visões analíticas do portfólio de promoções
type Analyzer interface {
	// GetKPIs calcula os indicadores principais para o ano informado
	GetKPIs(ctx context.Context, year int) (*domain.KPISummary, error)

	// GetROITrend agrupa o ROI médio por mês ou semana
	GetROITrend(ctx context.Context, query TrendQuery) ([]domain.ROITrendPoint, error)

	// GetRollup consolida promoções e vendas pela dimensão escolhida
	GetRollup(ctx context.Context, filter domain.FilterSpec, dimension domain.RollupDimension, now time.Time) ([]domain.RollupRow, error)

	GetTopPromotions(ctx context.Context, limit int) ([]domain.TopPromotion, error)
	GetPriorityDeductions(ctx context.Context, limit int) ([]*domain.Deduction, error)
	GetDeductionBreakdown(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]domain.DeductionStatusTotal, error)
	GetUpcomingPromotions(ctx context.Context, now time.Time) ([]*domain.Promotion, error)

	// Listagens filtradas dos registros brutos
	ListPromotions(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]*domain.Promotion, error)
	ListDeductions(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]*domain.Deduction, error)
	ListSalesData(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]*domain.SalesDataPoint, error)
	RecentActivities(ctx context.Context, filter domain.FilterSpec, limit int, now time.Time) ([]*domain.Activity, error)

	// InvalidateCache descarta os resultados em cache após mudanças nos dados
	InvalidateCache(ctx context.Context) error
}

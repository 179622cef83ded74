package analyzing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/tpm-api/internal/domain"
)

const unknownGroupKey = "Unknown"

var hundred = decimal.NewFromInt(100)

type rollupGroup struct {
	key                   string
	totalBudget           decimal.Decimal
	totalIncrementalSales decimal.Decimal
	totalUnitsLift        decimal.Decimal
	promotionCount        int
	accounts              map[string]struct{}
}

// Rollup agrupa as promoções pela dimensão escolhida e consolida orçamento,
// vendas incrementais e unidades vendidas dos pontos de venda associados.
//
// Na dimensão account os pontos são associados pelo accountId da promoção do ponto;
// na dimensão promotionType, pelo promotionId do ponto.
func Rollup(
	promotions []*domain.Promotion,
	sales []*domain.SalesDataPoint,
	dimension domain.RollupDimension,
) []domain.RollupRow {
	if len(promotions) == 0 {
		return []domain.RollupRow{}
	}

	salesByAccount, salesByPromotion := indexSales(sales)

	groups := make(map[string]*rollupGroup)
	order := make([]string, 0)

	for _, promotion := range promotions {
		if promotion == nil {
			continue
		}

		key := groupKey(promotion, dimension)
		group, exists := groups[key]
		if !exists {
			group = &rollupGroup{
				key:                   key,
				totalBudget:           decimal.Zero,
				totalIncrementalSales: decimal.Zero,
				totalUnitsLift:        decimal.Zero,
				accounts:              make(map[string]struct{}),
			}
			groups[key] = group
			order = append(order, key)
		}

		group.totalBudget = group.totalBudget.Add(promotion.Budget.OrZero())
		group.promotionCount++

		var matched []*domain.SalesDataPoint
		if dimension == domain.RollupDimensionPromotionType {
			group.accounts[accountKey(promotion)] = struct{}{}
			matched = salesByPromotion[promotion.ID]
		} else if promotion.AccountID != nil {
			matched = salesByAccount[*promotion.AccountID]
		}

		for _, sale := range matched {
			group.totalIncrementalSales = group.totalIncrementalSales.Add(sale.IncrementalSales.OrZero())
			group.totalUnitsLift = group.totalUnitsLift.Add(sale.UnitsLift.OrZero())
		}
	}

	rows := make([]domain.RollupRow, 0, len(order))
	for _, key := range order {
		group := groups[key]

		avgROI := decimal.Zero
		if group.totalBudget.IsPositive() {
			avgROI = group.totalIncrementalSales.Div(group.totalBudget).Mul(hundred)
		}

		row := domain.RollupRow{
			Key:                   group.key,
			TotalBudget:           group.totalBudget.InexactFloat64(),
			TotalIncrementalSales: group.totalIncrementalSales.InexactFloat64(),
			PromotionCount:        group.promotionCount,
			TotalUnitsLift:        group.totalUnitsLift.InexactFloat64(),
			AvgROI:                avgROI.InexactFloat64(),
		}
		row.PerformanceTier = PerformanceTier(row.AvgROI)

		if dimension == domain.RollupDimensionPromotionType {
			distinct := len(group.accounts)
			row.DistinctAccountCount = &distinct
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgROI > rows[j].AvgROI
	})

	return rows
}

// PerformanceTier classifica o ROI médio de um grupo do rollup
func PerformanceTier(avgROI float64) domain.PerformanceTier {
	switch {
	case avgROI > 200:
		return domain.PerformanceTierExcellent
	case avgROI > 150:
		return domain.PerformanceTierGood
	case avgROI > 100:
		return domain.PerformanceTierAverage
	default:
		return domain.PerformanceTierBelowTarget
	}
}

func indexSales(sales []*domain.SalesDataPoint) (map[int64][]*domain.SalesDataPoint, map[int64][]*domain.SalesDataPoint) {
	byAccount := make(map[int64][]*domain.SalesDataPoint)
	byPromotion := make(map[int64][]*domain.SalesDataPoint)

	for _, sale := range sales {
		if sale == nil {
			continue
		}
		if accountID := sale.PromotionAccountID(); accountID != nil {
			byAccount[*accountID] = append(byAccount[*accountID], sale)
		}
		if sale.PromotionID != nil {
			byPromotion[*sale.PromotionID] = append(byPromotion[*sale.PromotionID], sale)
		}
	}

	return byAccount, byPromotion
}

func groupKey(promotion *domain.Promotion, dimension domain.RollupDimension) string {
	if dimension == domain.RollupDimensionPromotionType {
		if promotion.PromotionType == "" {
			return unknownGroupKey
		}
		return string(promotion.PromotionType)
	}
	return accountKey(promotion)
}

func accountKey(promotion *domain.Promotion) string {
	if name := promotion.AccountName(); name != "" {
		return name
	}
	return unknownGroupKey
}

package analyzing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/tpm-api/internal/domain"
)

const (
	DefaultTopPromotionsLimit      = 5
	DefaultPriorityDeductionsLimit = 10
)

// TopPromotionTier usa faixas próprias da tabela de melhores promoções
func TopPromotionTier(roi float64) domain.PerformanceTier {
	switch {
	case roi > 250:
		return domain.PerformanceTierExcellent
	case roi > 200:
		return domain.PerformanceTierGood
	default:
		return domain.PerformanceTierAverage
	}
}

// TopPromotions calcula o ROI médio e o lift médio de cada promoção considerando
// apenas pontos com ROI preenchido, ordenando do maior para o menor ROI.
func TopPromotions(promotions []*domain.Promotion, sales []*domain.SalesDataPoint, limit int) []domain.TopPromotion {
	if limit <= 0 {
		limit = DefaultTopPromotionsLimit
	}

	type accumulator struct {
		roi       decimal.Decimal
		unitsLift decimal.Decimal
		count     int64
	}

	byPromotion := make(map[int64]*accumulator)
	for _, sale := range sales {
		if sale == nil || sale.PromotionID == nil || sale.ROI.IsNull() {
			continue
		}
		acc, exists := byPromotion[*sale.PromotionID]
		if !exists {
			acc = &accumulator{roi: decimal.Zero, unitsLift: decimal.Zero}
			byPromotion[*sale.PromotionID] = acc
		}
		acc.roi = acc.roi.Add(sale.ROI.Decimal)
		acc.unitsLift = acc.unitsLift.Add(sale.UnitsLift.OrZero())
		acc.count++
	}

	result := make([]domain.TopPromotion, 0)
	for _, promotion := range promotions {
		if promotion == nil {
			continue
		}
		acc, exists := byPromotion[promotion.ID]
		if !exists || acc.count == 0 {
			continue
		}
		count := decimal.NewFromInt(acc.count)
		roi := acc.roi.Div(count).InexactFloat64()
		result = append(result, domain.TopPromotion{
			Promotion: promotion,
			ROI:       roi,
			SalesLift: acc.unitsLift.Div(count).InexactFloat64(),
			Tier:      TopPromotionTier(roi),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ROI > result[j].ROI
	})

	if len(result) > limit {
		result = result[:limit]
	}

	return result
}

// PriorityDeductions retorna as deduções pendentes mais antigas primeiro
func PriorityDeductions(deductions []*domain.Deduction, limit int) []*domain.Deduction {
	if limit <= 0 {
		limit = DefaultPriorityDeductionsLimit
	}

	pending := make([]*domain.Deduction, 0)
	for _, deduction := range deductions {
		if deduction != nil && deduction.Status == domain.DeductionStatusPending {
			pending = append(pending, deduction)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DaysOld > pending[j].DaysOld
	})

	if len(pending) > limit {
		pending = pending[:limit]
	}

	return pending
}

var deductionStatusOrder = []domain.DeductionStatus{
	domain.DeductionStatusPending,
	domain.DeductionStatusInReview,
	domain.DeductionStatusDisputed,
	domain.DeductionStatusResolved,
}

// DeductionStatusBreakdown totaliza quantidade e valor das deduções por status
func DeductionStatusBreakdown(deductions []*domain.Deduction) []domain.DeductionStatusTotal {
	totals := make(map[domain.DeductionStatus]*domain.DeductionStatusTotal, len(deductionStatusOrder))
	for _, status := range deductionStatusOrder {
		totals[status] = &domain.DeductionStatusTotal{Status: status, Amount: decimal.Zero}
	}

	for _, deduction := range deductions {
		if deduction == nil {
			continue
		}
		total, exists := totals[deduction.Status]
		if !exists {
			continue
		}
		total.Count++
		total.Amount = total.Amount.Add(deduction.Amount.OrZero())
	}

	result := make([]domain.DeductionStatusTotal, 0, len(deductionStatusOrder))
	for _, status := range deductionStatusOrder {
		result = append(result, *totals[status])
	}
	return result
}

// UpcomingPromotions lista as promoções planejadas que começam hoje ou depois
func UpcomingPromotions(promotions []*domain.Promotion, now time.Time) []*domain.Promotion {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	upcoming := make([]*domain.Promotion, 0)
	for _, promotion := range promotions {
		if promotion == nil || promotion.Status != domain.PromotionStatusPlanned {
			continue
		}
		if promotion.StartDate.Before(today) {
			continue
		}
		upcoming = append(upcoming, promotion)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})

	return upcoming
}

package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/tpm-api/internal/domain"
)

// Summarize calcula os indicadores do portfólio. Campos ausentes ou inválidos contam como 0.
func Summarize(
	promotions []*domain.Promotion,
	sales []*domain.SalesDataPoint,
	deductions []*domain.Deduction,
	year int,
) domain.KPISummary {
	tradeSpend := decimal.Zero
	activePromotions := 0
	for _, promotion := range promotions {
		if promotion == nil {
			continue
		}
		if promotion.CreatedAt != nil && promotion.CreatedAt.Year() == year {
			tradeSpend = tradeSpend.Add(promotion.Budget.OrZero())
		}
		if promotion.Status == domain.PromotionStatusActive {
			activePromotions++
		}
	}

	roiSum := decimal.Zero
	roiCount := 0
	for _, sale := range sales {
		if sale == nil || sale.ROI.IsNull() {
			continue
		}
		roiSum = roiSum.Add(sale.ROI.Decimal)
		roiCount++
	}

	averageROI := decimal.Zero
	if roiCount > 0 {
		averageROI = roiSum.Div(decimal.NewFromInt(int64(roiCount)))
	}

	pending := decimal.Zero
	for _, deduction := range deductions {
		if deduction == nil || deduction.Status != domain.DeductionStatusPending {
			continue
		}
		pending = pending.Add(deduction.Amount.OrZero())
	}

	return domain.KPISummary{
		TradeSpendYTD:     tradeSpend.InexactFloat64(),
		AverageROI:        averageROI.InexactFloat64(),
		ActivePromotions:  activePromotions,
		PendingDeductions: pending.InexactFloat64(),
	}
}

package domain

import "github.com/shopspring/decimal"

type DateRange string

const (
	DateRangeAll     DateRange = "all"
	DateRangeToday   DateRange = "today"
	DateRangeWeek    DateRange = "week"
	DateRangeMonth   DateRange = "month"
	DateRangeQuarter DateRange = "quarter"
	DateRangeYear    DateRange = "year"
)

// FilterSpec é a especificação declarativa de filtros aplicada às coleções
type FilterSpec struct {
	SearchQuery   string    `json:"searchQuery"`
	DateRange     DateRange `json:"dateRange"`
	AccountFilter string    `json:"accountFilter"`
	StatusFilter  string    `json:"statusFilter"`
}

type TimePeriod string

const (
	TimePeriodLastMonth    TimePeriod = "last-month"
	TimePeriodLast3Months  TimePeriod = "last-3-months"
	TimePeriodLast6Months  TimePeriod = "last-6-months"
	TimePeriodLast12Months TimePeriod = "last-12-months"
	TimePeriodYTD          TimePeriod = "ytd"
)

type Granularity string

const (
	GranularityMonths Granularity = "months"
	GranularityWeeks  Granularity = "weeks"
)

type RollupDimension string

const (
	RollupDimensionAccount       RollupDimension = "account"
	RollupDimensionPromotionType RollupDimension = "promotionType"
)

type PerformanceTier string

const (
	PerformanceTierExcellent   PerformanceTier = "Excellent"
	PerformanceTierGood        PerformanceTier = "Good"
	PerformanceTierAverage     PerformanceTier = "Average"
	PerformanceTierBelowTarget PerformanceTier = "Below Target"
)

type ROITrendPoint struct {
	Bucket  string  `json:"bucket"`
	ROI     float64 `json:"roi"`
	SortKey int     `json:"-"`
}

type RollupRow struct {
	Key                   string          `json:"key"`
	TotalBudget           float64         `json:"totalBudget"`
	TotalIncrementalSales float64         `json:"totalIncrementalSales"`
	PromotionCount        int             `json:"promotionCount"`
	TotalUnitsLift        float64         `json:"totalUnitsLift"`
	AvgROI                float64         `json:"avgROI"`
	DistinctAccountCount  *int            `json:"distinctAccountCount,omitempty"`
	PerformanceTier       PerformanceTier `json:"performanceTier"`
}

type KPISummary struct {
	TradeSpendYTD     float64 `json:"tradeSpendYTD"`
	AverageROI        float64 `json:"averageROI"`
	ActivePromotions  int     `json:"activePromotions"`
	PendingDeductions float64 `json:"pendingDeductions"`
}

type TopPromotion struct {
	Promotion *Promotion      `json:"promotion"`
	ROI       float64         `json:"roi"`
	SalesLift float64         `json:"salesLift"`
	Tier      PerformanceTier `json:"tier"`
}

type DeductionStatusTotal struct {
	Status DeductionStatus `json:"status"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

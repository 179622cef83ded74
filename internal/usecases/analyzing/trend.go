package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/tpm-api/internal/domain"
)

type trendOptions struct {
	chronological bool
}

// TrendOption ajusta o comportamento da agregação de tendência de ROI
type TrendOption func(*trendOptions)

// WithChronologicalOrder ordena os buckets pela chave numérica (ano, mês, semana)
// em vez da ordem lexicográfica do rótulo.
func WithChronologicalOrder() TrendOption {
	return func(o *trendOptions) {
		o.chronological = true
	}
}

type trendBucket struct {
	label    string
	sortKey  int
	totalROI decimal.Decimal
	count    int
}

// AggregateROITrend agrupa os pontos de venda em buckets de calendário dentro da
// janela resolvida e calcula o ROI médio de cada bucket.
func AggregateROITrend(
	points []*domain.SalesDataPoint,
	period domain.TimePeriod,
	granularity domain.Granularity,
	now time.Time,
	opts ...TrendOption,
) []domain.ROITrendPoint {
	options := trendOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if len(points) == 0 {
		return []domain.ROITrendPoint{}
	}

	windowStart := ResolveWindowStart(period, now)

	buckets := make(map[string]*trendBucket)
	for _, point := range points {
		if point == nil || point.SalesDate.IsZero() {
			continue
		}

		// A data de venda é um dia de calendário; comparar instantes perderia o
		// primeiro dia da janela quando o banco devolve meia-noite em UTC
		salesDay := calendarDay(point.SalesDate, now.Location())
		if salesDay.Before(windowStart) || salesDay.After(now) {
			continue
		}

		label, sortKey := BucketKey(salesDay, granularity)

		bucket, exists := buckets[label]
		if !exists {
			bucket = &trendBucket{label: label, sortKey: sortKey, totalROI: decimal.Zero}
			buckets[label] = bucket
		}
		if sortKey < bucket.sortKey {
			bucket.sortKey = sortKey
		}

		// ROI nulo ou inválido conta como 0, mas o ponto entra na contagem
		bucket.totalROI = bucket.totalROI.Add(point.ROI.OrZero())
		bucket.count++
	}

	result := make([]domain.ROITrendPoint, 0, len(buckets))
	for _, bucket := range buckets {
		roi := bucket.totalROI.Div(decimal.NewFromInt(int64(bucket.count)))
		result = append(result, domain.ROITrendPoint{
			Bucket:  bucket.label,
			ROI:     roi.InexactFloat64(),
			SortKey: bucket.sortKey,
		})
	}

	if options.chronological {
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].SortKey != result[j].SortKey {
				return result[i].SortKey < result[j].SortKey
			}
			return result[i].Bucket < result[j].Bucket
		})
		return result
	}

	// Ordem lexicográfica do rótulo: meses cruzando a virada do ano não ficam em ordem cronológica
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Bucket < result[j].Bucket
	})

	return result
}

// ResolveWindowStart calcula o início da janela de análise para o período informado
func ResolveWindowStart(period domain.TimePeriod, now time.Time) time.Time {
	year, month, day := now.Date()
	loc := now.Location()

	switch period {
	case domain.TimePeriodLastMonth:
		return time.Date(year, month-1, 1, 0, 0, 0, 0, loc)
	case domain.TimePeriodLast3Months:
		return time.Date(year, month-3, 1, 0, 0, 0, 0, loc)
	case domain.TimePeriodLast6Months:
		return time.Date(year, month-6, 1, 0, 0, 0, 0, loc)
	case domain.TimePeriodYTD:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(year-1, month, day, 0, 0, 0, 0, loc)
	}
}

// calendarDay reposiciona o dia de calendário de date em loc, à meia-noite
func calendarDay(date time.Time, loc *time.Location) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// BucketKey retorna o rótulo do bucket e sua chave de ordenação cronológica
func BucketKey(date time.Time, granularity domain.Granularity) (string, int) {
	if granularity == domain.GranularityWeeks {
		week := (date.Day() + 6) / 7
		label := fmt.Sprintf("Week %d - %s", week, date.Format("Jan"))
		return label, date.Year()*10000 + int(date.Month())*100 + week
	}

	return date.Format("Jan 06"), date.Year()*100 + int(date.Month())
}

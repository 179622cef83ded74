package analyzing

import (
	"reflect"
	"strings"
	"time"

	"github.com/vfg2006/tpm-api/internal/domain"
)

// Filterable é implementado por qualquer registro que possa passar pelo filtro
type Filterable interface {
	SearchFields() []string
	FilterDate() (time.Time, bool)
	FilterAccountName() string
	FilterStatus() (string, bool)
}

// Predicate decide se um registro permanece na coleção filtrada
type Predicate func(Filterable) bool

// Compose monta um único predicado a partir da especificação, ancorado em now.
// Critérios vazios ou "all" ficam desabilitados; os demais são combinados com AND.
func Compose(spec domain.FilterSpec, now time.Time) Predicate {
	query := strings.ToLower(strings.TrimSpace(spec.SearchQuery))
	dateRange := spec.DateRange
	account := spec.AccountFilter
	status := spec.StatusFilter

	return func(record Filterable) bool {
		if isNilRecord(record) {
			return false
		}
		if query != "" && !matchesSearch(record, query) {
			return false
		}
		if isActive(string(dateRange)) && !matchesDateRange(record, dateRange, now) {
			return false
		}
		if isActive(account) && record.FilterAccountName() != account {
			return false
		}
		if isActive(status) {
			if recordStatus, ok := record.FilterStatus(); ok && recordStatus != status {
				return false
			}
		}
		return true
	}
}

// Apply filtra a coleção preservando a ordem original. Coleção nula vira vazia.
func Apply[T Filterable](records []T, predicate Predicate) []T {
	result := make([]T, 0, len(records))
	for _, record := range records {
		if predicate == nil {
			if isNilRecord(record) {
				continue
			}
			result = append(result, record)
			continue
		}
		if predicate(record) {
			result = append(result, record)
		}
	}
	return result
}

func isNilRecord(record Filterable) bool {
	if record == nil {
		return true
	}
	v := reflect.ValueOf(record)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func isActive(criterion string) bool {
	return criterion != "" && criterion != "all"
}

func matchesSearch(record Filterable, query string) bool {
	for _, field := range record.SearchFields() {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchesDateRange(record Filterable, dateRange domain.DateRange, now time.Time) bool {
	date, ok := record.FilterDate()
	if !ok {
		return false
	}

	switch dateRange {
	case domain.DateRangeToday:
		return sameDay(date, now)
	case domain.DateRangeWeek:
		return !date.Before(now.Add(-7 * 24 * time.Hour))
	case domain.DateRangeMonth:
		return date.Year() == now.Year() && date.Month() == now.Month()
	case domain.DateRangeQuarter:
		quarterStartMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		quarterStart := time.Date(now.Year(), quarterStartMonth, 1, 0, 0, 0, 0, now.Location())
		return !date.Before(quarterStart)
	case domain.DateRangeYear:
		return date.Year() == now.Year()
	default:
		// Intervalo desconhecido não exclui registros
		return true
	}
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

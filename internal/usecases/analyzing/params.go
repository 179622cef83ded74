package analyzing

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParsePeriod valida o período da tendência; vazio usa last-12-months
func ParsePeriod(raw string) (domain.TimePeriod, error) {
	switch period := domain.TimePeriod(raw); period {
	case "":
		return domain.TimePeriodLast12Months, nil
	case domain.TimePeriodLastMonth, domain.TimePeriodLast3Months, domain.TimePeriodLast6Months,
		domain.TimePeriodLast12Months, domain.TimePeriodYTD:
		return period, nil
	default:
		return "", NewAnalyticsError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, raw)
	}
}

// ParseGranularity valida a granularidade; vazio usa months
func ParseGranularity(raw string) (domain.Granularity, error) {
	switch granularity := domain.Granularity(raw); granularity {
	case "":
		return domain.GranularityMonths, nil
	case domain.GranularityMonths, domain.GranularityWeeks:
		return granularity, nil
	default:
		return "", NewAnalyticsError(ErrInvalidGranularity, apiErrors.ErrInvalidRequest, raw)
	}
}

// ParseDimension valida a dimensão do rollup; vazio usa account
func ParseDimension(raw string) (domain.RollupDimension, error) {
	switch dimension := domain.RollupDimension(raw); dimension {
	case "":
		return domain.RollupDimensionAccount, nil
	case domain.RollupDimensionAccount, domain.RollupDimensionPromotionType:
		return dimension, nil
	default:
		return "", NewAnalyticsError(ErrInvalidDimension, apiErrors.ErrInvalidRequest, raw)
	}
}

func filterToken(filter domain.FilterSpec) string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(filter.SearchQuery)),
		string(filter.DateRange),
		filter.AccountFilter,
		filter.StatusFilter,
	}, "|")
}

func keyFromParts(parts []string) string {
	return strings.Join(parts, ":")
}

// assign copia o valor carregado para o destino, desacoplando chamadas que compartilharam a carga
func assign(value any, dest any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

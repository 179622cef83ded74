package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análises
var (
	ErrInvalidDimension   = errors.New("invalid rollup dimension")
	ErrInvalidPeriod      = errors.New("invalid time period")
	ErrInvalidGranularity = errors.New("invalid granularity")
	ErrFetchData          = errors.New("error fetching analytics data")
)

// AnalyticsError é um erro com contexto adicional para as análises
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

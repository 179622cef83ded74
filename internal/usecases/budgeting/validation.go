package budgeting

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
)

var quarterPattern = regexp.MustCompile(`^Q[1-4]-\d{4}$`)

// ValidationError lista os campos inválidos de um pedido de alocação
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}

	return ErrInvalidAllocation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidAllocation
}

// NewValidator cria o validador com as regras de trimestre e valor monetário
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// decimal.Decimal é validado como float64
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("quarter", func(fl validator.FieldLevel) bool {
		return IsValidQuarter(fl.Field().String())
	})

	_ = v.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			return field.Float() >= 0
		default:
			return false
		}
	})

	return v
}

// IsValidQuarter verifica o formato Q{1-4}-{ano}
func IsValidQuarter(quarter string) bool {
	return quarterPattern.MatchString(quarter)
}

// ValidateRequest aplica as regras de validação ao pedido
func ValidateRequest(v *validator.Validate, req domain.AllocationRequest) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return NewBudgetError(ErrInvalidAllocation, apiErrors.ErrInvalidRequest, err.Error())
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return &ValidationError{Fields: fields}
}

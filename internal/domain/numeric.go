// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric é um decimal tolerante a dados sujos vindos do upstream.
// Valid=false representa null/ausente; qualquer valor não numérico vira 0 com Valid=true.
type Numeric struct {
	Decimal decimal.Decimal
	Valid   bool
}

func NewNumeric(value decimal.Decimal) Numeric {
	return Numeric{Decimal: value, Valid: true}
}

func NumericFromFloat(value float64) Numeric {
	return Numeric{Decimal: decimal.NewFromFloat(value), Valid: true}
}

// ParseNumeric converte uma string em Numeric, coagindo lixo para 0
func ParseNumeric(raw string) Numeric {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Numeric{Decimal: decimal.Zero, Valid: true}
	}
	return Numeric{Decimal: d, Valid: true}
}

// OrZero retorna o valor, tratando null como 0
func (n Numeric) OrZero() decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

func (n Numeric) Float64() float64 {
	return n.OrZero().InexactFloat64()
}

func (n Numeric) IsNull() bool {
	return !n.Valid
}

func (n Numeric) String() string {
	if !n.Valid {
		return "null"
	}
	return n.Decimal.String()
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Decimal.String()), nil
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*n = Numeric{}
		return nil
	}

	if raw[0] == '"' {
		s, err := strconv.Unquote(string(raw))
		if err != nil {
			*n = Numeric{Decimal: decimal.Zero, Valid: true}
			return nil
		}
		*n = ParseNumeric(s)
		return nil
	}

	// true/false, objetos e arrays viram 0
	*n = ParseNumeric(string(raw))
	return nil
}

// Scan implementa sql.Scanner
func (n *Numeric) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*n = Numeric{}
	case []byte:
		*n = ParseNumeric(string(v))
	case string:
		*n = ParseNumeric(v)
	case float64:
		*n = NumericFromFloat(v)
	case float32:
		*n = NumericFromFloat(float64(v))
	case int64:
		*n = NewNumeric(decimal.NewFromInt(v))
	default:
		return fmt.Errorf("numeric: tipo não suportado %T", value)
	}
	return nil
}

// Value implementa driver.Valuer
func (n Numeric) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.String(), nil
}

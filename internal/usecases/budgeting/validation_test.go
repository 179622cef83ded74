package budgeting

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tpm-api/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name          string
		req           domain.AllocationRequest
		invalidFields []string
	}{
		{
			name: "Pedido válido sem ação",
			req:  domain.AllocationRequest{AccountID: 1, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(1000)},
		},
		{
			name: "Pedido válido com valor zero e replace",
			req:  domain.AllocationRequest{AccountID: 1, Quarter: "Q1-2025", AllocatedAmount: decimal.Zero, Action: domain.AllocationDecisionReplace},
		},
		{
			name:          "Conta ausente",
			req:           domain.AllocationRequest{Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(10)},
			invalidFields: []string{"accountId"},
		},
		{
			name:          "Trimestre fora do formato",
			req:           domain.AllocationRequest{AccountID: 1, Quarter: "2024-Q3", AllocatedAmount: decimal.NewFromInt(10)},
			invalidFields: []string{"quarter"},
		},
		{
			name:          "Trimestre inexistente",
			req:           domain.AllocationRequest{AccountID: 1, Quarter: "Q5-2024", AllocatedAmount: decimal.NewFromInt(10)},
			invalidFields: []string{"quarter"},
		},
		{
			name:          "Valor negativo",
			req:           domain.AllocationRequest{AccountID: 1, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(-1)},
			invalidFields: []string{"allocatedAmount"},
		},
		{
			name:          "Ação desconhecida",
			req:           domain.AllocationRequest{AccountID: 1, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(1), Action: "merge"},
			invalidFields: []string{"action"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(v, tt.req)
			if len(tt.invalidFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAllocation)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			for _, field := range tt.invalidFields {
				assert.Contains(t, validationErr.Fields, field)
			}
		})
	}
}

func TestIsValidQuarter(t *testing.T) {
	assert.True(t, IsValidQuarter("Q1-2024"))
	assert.True(t, IsValidQuarter("Q4-1999"))
	assert.False(t, IsValidQuarter("Q0-2024"))
	assert.False(t, IsValidQuarter("q1-2024"))
	assert.False(t, IsValidQuarter("Q1-24"))
	assert.False(t, IsValidQuarter(""))
}

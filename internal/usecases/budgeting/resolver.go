package budgeting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
)

// DetectDuplicate retorna a primeira alocação com o mesmo par (conta, trimestre)
func DetectDuplicate(req domain.AllocationRequest, existing []*domain.BudgetAllocation) *domain.BudgetAllocation {
	for _, allocation := range existing {
		if allocation != nil && allocation.SameKey(req.AccountID, req.Quarter) {
			return allocation
		}
	}
	return nil
}

// ResolveAgainst procura a duplicada do pedido em existing e resolve com a decisão
// informada. É a forma usada quando o chamador tem a coleção inteira em memória.
func ResolveAgainst(
	req domain.AllocationRequest,
	existing []*domain.BudgetAllocation,
	action domain.AllocationDecision,
) (*domain.AllocationResolution, error) {
	return Resolve(req, DetectDuplicate(req, existing), action)
}

// Resolve decide o que gravar a partir do pedido, da alocação duplicada (nil
// quando não existe) e da decisão do usuário. Uma duplicada sem decisão nunca é
// resolvida automaticamente. O serviço usa esta forma porque já busca a chave
// (conta, trimestre) direto no banco; ResolveAgainst cobre a coleção em memória.
func Resolve(
	req domain.AllocationRequest,
	duplicate *domain.BudgetAllocation,
	action domain.AllocationDecision,
) (*domain.AllocationResolution, error) {
	if duplicate == nil {
		return &domain.AllocationResolution{
			Action: domain.AllocationActionInsert,
			Result: domain.BudgetAllocation{
				AccountID:       req.AccountID,
				Quarter:         req.Quarter,
				AllocatedAmount: req.AllocatedAmount,
				SpentAmount:     decimal.Zero,
			},
		}, nil
	}

	previous := *duplicate
	result := *duplicate

	switch action {
	case domain.AllocationDecisionAdd:
		result.AllocatedAmount = duplicate.AllocatedAmount.Add(req.AllocatedAmount)
	case domain.AllocationDecisionReplace:
		result.AllocatedAmount = req.AllocatedAmount
	case domain.AllocationDecisionNone:
		return nil, &DuplicateAllocationError{Existing: &previous}
	default:
		return nil, NewBudgetError(ErrInvalidDecision, apiErrors.ErrInvalidRequest, string(action))
	}

	return &domain.AllocationResolution{
		Action:   domain.AllocationActionUpdate,
		Result:   result,
		Previous: &previous,
	}, nil
}

package budgeting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/tpm-api/internal/domain"
)

// Erros específicos para o contexto de alocação de orçamento
var (
	// Erros de validação
	ErrInvalidAllocation = errors.New("invalid budget allocation")
	ErrInvalidQuarter    = errors.New("invalid quarter")
	ErrInvalidDecision   = errors.New("invalid allocation decision")
	ErrAccountNotFound   = errors.New("account not found")

	// Erros do protocolo de alocação
	ErrDecisionRequired         = errors.New("duplicate allocation requires an add or replace decision")
	ErrAllocationConflict       = errors.New("budget allocation changed concurrently")
	ErrSessionNotFound          = errors.New("allocation session not found or expired")
	ErrInvalidSessionTransition = errors.New("invalid allocation session transition")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating session ID")
)

// BudgetError é um erro com contexto adicional para orçamentos
type BudgetError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *BudgetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BudgetError) Unwrap() error {
	return e.Err
}

func NewBudgetError(err error, code string, details string) *BudgetError {
	return &BudgetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// DuplicateAllocationError carrega a alocação existente que exige a decisão do usuário
type DuplicateAllocationError struct {
	Existing *domain.BudgetAllocation
}

func (e *DuplicateAllocationError) Error() string {
	if e.Existing == nil {
		return ErrDecisionRequired.Error()
	}
	return fmt.Sprintf("%s: account %d, %s", ErrDecisionRequired.Error(), e.Existing.AccountID, e.Existing.Quarter)
}

func (e *DuplicateAllocationError) Unwrap() error {
	return ErrDecisionRequired
}

// ConflictError indica que a chave (conta, trimestre) mudou durante a gravação.
// O chamador deve repetir a detecção antes de decidir novamente.
type ConflictError struct {
	AccountID int64
	Quarter   string
	Attempts  int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: account %d, %s after %d attempt(s)", ErrAllocationConflict.Error(), e.AccountID, e.Quarter, e.Attempts)
}

func (e *ConflictError) Unwrap() error {
	return ErrAllocationConflict
}

package budgeting

import (
	"context"
	"time"

	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// Budgeter expõe o protocolo de alocação de orçamento por conta e trimestre
type Budgeter interface {
	ListAllocations(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]*domain.BudgetAllocation, error)
	QuarterSummary(ctx context.Context, quarter string) (*domain.QuarterBudgetSummary, error)

	// Check abre uma sessão: grava direto quando não há duplicada, senão aguarda a decisão
	Check(ctx context.Context, req domain.AllocationRequest) (*domain.AllocationSession, error)

	// Decide aplica a decisão do usuário a uma sessão aguardando decisão
	Decide(ctx context.Context, sessionID string, action domain.AllocationDecision) (*domain.AllocationSession, error)

	// Allocate grava o pedido em uma única chamada; duplicada sem ação retorna DuplicateAllocationError
	Allocate(ctx context.Context, req domain.AllocationRequest) (*domain.AllocationResolution, error)
}

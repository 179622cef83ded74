package budgeting

import (
	"fmt"
	"time"

	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
	"github.com/vfg2006/tpm-api/pkg/utils"
)

// Transições permitidas entre os estados da sessão de alocação
var sessionTransitions = map[domain.AllocationSessionState][]domain.AllocationSessionState{
	domain.AllocationSessionChecking: {
		domain.AllocationSessionAwaitingDecision,
		domain.AllocationSessionCommitting, // sem duplicada ou com decisão prévia
	},
	domain.AllocationSessionAwaitingDecision: {
		domain.AllocationSessionCommitting,
	},
	domain.AllocationSessionCommitting: {
		domain.AllocationSessionCommitted,
	},
}

// CanTransition indica se a sessão pode passar de from para to
func CanTransition(from, to domain.AllocationSessionState) bool {
	for _, next := range sessionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NewSession abre uma sessão no estado checking
func NewSession(req domain.AllocationRequest, now time.Time) (*domain.AllocationSession, error) {
	id, err := utils.GenerateSessionID()
	if err != nil {
		return nil, NewBudgetError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	return &domain.AllocationSession{
		ID:        id,
		State:     domain.AllocationSessionChecking,
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Transition move a sessão para o próximo estado ou retorna ErrInvalidSessionTransition
func Transition(session *domain.AllocationSession, to domain.AllocationSessionState, now time.Time) error {
	if session == nil {
		return NewBudgetError(ErrSessionNotFound, apiErrors.ErrBudgetSessionNotFound, "")
	}

	if !CanTransition(session.State, to) {
		return NewBudgetError(ErrInvalidSessionTransition, apiErrors.ErrBudgetInvalidTransition, fmt.Sprintf("%s -> %s", session.State, to))
	}

	session.State = to
	session.UpdatedAt = now

	return nil
}

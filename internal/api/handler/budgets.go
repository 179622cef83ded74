package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/internal/usecases/budgeting"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
	"github.com/vfg2006/tpm-api/pkg/log"
)

type decisionRequest struct {
	Action domain.AllocationDecision `json:"action"`
}

func ListBudgetAllocations(service budgeting.Budgeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListBudgetAllocations")

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		allocations, err := service.ListAllocations(r.Context(), filterFromQuery(r), now)
		if err != nil {
			writeBudgetError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, allocations); err != nil {
			logrus.WithError(err).Error("Erro ao codificar alocações")
		}
	})
}

func GetQuarterBudget(service budgeting.Budgeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetQuarterBudget")

		quarter := httprouter.ParamsFromContext(r.Context()).ByName("quarter")

		summary, err := service.QuarterSummary(r.Context(), quarter)
		if err != nil {
			writeBudgetError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, summary); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resumo do trimestre")
		}
	})
}

// CheckBudgetAllocation abre a sessão de alocação e detecta duplicadas
func CheckBudgetAllocation(service budgeting.Budgeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.AllocationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": request.AccountID,
			"quarter":    request.Quarter,
			"action":     request.Action,
		}).Info("budgets: verificando alocação")

		session, err := service.Check(r.Context(), request)
		if err != nil {
			writeBudgetError(w, r, err)
			return
		}

		status := http.StatusCreated
		if session.State == domain.AllocationSessionAwaitingDecision {
			status = http.StatusOK
		}

		if err := writeJSON(w, status, session); err != nil {
			logger.WithError(err).Error("budgets: falha ao codificar sessão")
		}
	})
}

// DecideBudgetAllocation aplica add ou replace à sessão aguardando decisão
func DecideBudgetAllocation(service budgeting.Budgeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if sessionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sessão não informada", nil)
			return
		}

		var request decisionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"session_id": sessionID,
			"action":     request.Action,
		}).Info("budgets: aplicando decisão")

		session, err := service.Decide(r.Context(), sessionID, request.Action)
		if err != nil {
			writeBudgetError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, session); err != nil {
			logger.WithError(err).Error("budgets: falha ao codificar sessão")
		}
	})
}

// AllocateBudget grava a alocação em uma única chamada
func AllocateBudget(service budgeting.Budgeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AllocateBudget")

		var request domain.AllocationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		resolution, err := service.Allocate(r.Context(), request)
		if err != nil {
			writeBudgetError(w, r, err)
			return
		}

		status := http.StatusOK
		if resolution.Action == domain.AllocationActionInsert {
			status = http.StatusCreated
		}

		if err := writeJSON(w, status, resolution); err != nil {
			logrus.WithError(err).Error("Erro ao codificar alocação")
		}
	})
}

func writeBudgetError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var duplicateErr *budgeting.DuplicateAllocationError
	if errors.As(err, &duplicateErr) {
		logger.Info("budgets: alocação duplicada aguardando decisão")
		apiErrors.WriteError(w, apiErrors.ErrBudgetDecisionRequired, duplicateErr.Error(), map[string]any{
			"existing": duplicateErr.Existing,
			"actions":  []domain.AllocationDecision{domain.AllocationDecisionAdd, domain.AllocationDecisionReplace},
		})
		return
	}

	var conflictErr *budgeting.ConflictError
	if errors.As(err, &conflictErr) {
		logger.WithError(err).Warn("budgets: conflito de escrita concorrente")
		apiErrors.WriteError(w, apiErrors.ErrBudgetConflict, conflictErr.Error(), map[string]any{
			"accountId": conflictErr.AccountID,
			"quarter":   conflictErr.Quarter,
			"attempts":  conflictErr.Attempts,
		})
		return
	}

	var validationErr *budgeting.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Alocação inválida", validationErr.Fields)
		return
	}

	var budgetErr *budgeting.BudgetError
	if errors.As(err, &budgetErr) && budgetErr.Code != "" {
		if apiErrors.StatusFor(budgetErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error("budgets: falha ao processar requisição")
		}
		apiErrors.WriteError(w, budgetErr.Code, budgetErr.Error(), nil)
		return
	}

	logger.WithError(err).Error("budgets: falha ao processar requisição")

	switch {
	case errors.Is(err, budgeting.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, err.Error(), nil)
	case errors.Is(err, budgeting.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBudgetSessionNotFound, err.Error(), nil)
	case errors.Is(err, budgeting.ErrInvalidSessionTransition):
		apiErrors.WriteError(w, apiErrors.ErrBudgetInvalidTransition, err.Error(), nil)
	case errors.Is(err, budgeting.ErrInvalidAllocation),
		errors.Is(err, budgeting.ErrInvalidQuarter),
		errors.Is(err, budgeting.ErrInvalidDecision):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, budgeting.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar orçamento", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar orçamento", nil)
	}
}


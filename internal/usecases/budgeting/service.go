// Package budgeting contém o protocolo de alocação de orçamento por conta e trimestre
package budgeting

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/infrastructure/repository"
	"github.com/vfg2006/tpm-api/internal/config"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/internal/usecases/analyzing"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
)

const (
	DefaultMaxRetries = 3
	DefaultSessionTTL = 15 * time.Minute
)

type Service struct {
	allocationRepository repository.BudgetAllocationRepository
	sessionRepository    repository.AllocationSessionRepository
	accountRepository    repository.AccountRepository
	validate             *validator.Validate
	maxRetries           int
	sessionTTL           time.Duration
	now                  func() time.Time
}

func NewService(
	allocationRepo repository.BudgetAllocationRepository,
	sessionRepo repository.AllocationSessionRepository,
	accountRepo repository.AccountRepository,
	cfg *config.Config,
) *Service {
	s := &Service{
		allocationRepository: allocationRepo,
		sessionRepository:    sessionRepo,
		accountRepository:    accountRepo,
		validate:             NewValidator(),
		maxRetries:           DefaultMaxRetries,
		sessionTTL:           DefaultSessionTTL,
		now:                  time.Now,
	}

	if cfg != nil {
		if cfg.Budget.AllocationMaxRetries > 0 {
			s.maxRetries = cfg.Budget.AllocationMaxRetries
		}
		if cfg.Budget.SessionTTL > 0 {
			s.sessionTTL = cfg.Budget.SessionTTL
		}
	}

	return s
}

func (s *Service) ListAllocations(ctx context.Context, filter domain.FilterSpec, now time.Time) ([]*domain.BudgetAllocation, error) {
	if now.IsZero() {
		now = s.now()
	}

	allocations, err := s.allocationRepository.ListAllocations(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar alocações de orçamento")
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return analyzing.Apply(allocations, analyzing.Compose(filter, now)), nil
}

func (s *Service) QuarterSummary(ctx context.Context, quarter string) (*domain.QuarterBudgetSummary, error) {
	if !IsValidQuarter(quarter) {
		return nil, NewBudgetError(ErrInvalidQuarter, apiErrors.ErrInvalidFormat, quarter)
	}

	allocations, err := s.allocationRepository.ListByQuarter(ctx, quarter)
	if err != nil {
		logrus.WithError(err).WithField("quarter", quarter).Error("Erro ao consultar orçamento do trimestre")
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return SummarizeQuarter(quarter, allocations), nil
}

// SummarizeQuarter soma alocado e gasto do trimestre; a utilização é o percentual arredondado
func SummarizeQuarter(quarter string, allocations []*domain.BudgetAllocation) *domain.QuarterBudgetSummary {
	summary := &domain.QuarterBudgetSummary{
		Quarter:   quarter,
		Total:     decimal.Zero,
		Spent:     decimal.Zero,
		Remaining: decimal.Zero,
	}

	for _, allocation := range allocations {
		if allocation == nil || allocation.Quarter != quarter {
			continue
		}
		summary.Total = summary.Total.Add(allocation.AllocatedAmount)
		summary.Spent = summary.Spent.Add(allocation.SpentAmount)
		summary.Allocations++
	}

	summary.Remaining = summary.Total.Sub(summary.Spent)
	if summary.Total.IsPositive() {
		summary.Utilization = summary.Spent.Div(summary.Total).Mul(decimal.NewFromInt(100)).Round(0).InexactFloat64()
	}

	return summary
}

func (s *Service) Check(ctx context.Context, req domain.AllocationRequest) (*domain.AllocationSession, error) {
	if err := s.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	session, err := NewSession(req, s.now())
	if err != nil {
		return nil, err
	}

	existing, err := s.allocationRepository.FindByAccountQuarter(ctx, req.AccountID, req.Quarter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar alocação existente")
		return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	session.Existing = existing

	if existing != nil && req.Action == domain.AllocationDecisionNone {
		if err := Transition(session, domain.AllocationSessionAwaitingDecision, s.now()); err != nil {
			return nil, err
		}
		if err := s.sessionRepository.Save(ctx, session, s.sessionTTL); err != nil {
			logrus.WithError(err).Error("Erro ao gravar sessão de alocação")
			return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		logrus.WithFields(logrus.Fields{
			"session_id": session.ID,
			"account_id": req.AccountID,
			"quarter":    req.Quarter,
		}).Info("Alocação duplicada, aguardando decisão do usuário")

		return session, nil
	}

	session.Decision = req.Action
	if err := Transition(session, domain.AllocationSessionCommitting, s.now()); err != nil {
		return nil, err
	}

	return s.finish(ctx, session)
}

func (s *Service) Decide(ctx context.Context, sessionID string, action domain.AllocationDecision) (*domain.AllocationSession, error) {
	if action != domain.AllocationDecisionAdd && action != domain.AllocationDecisionReplace {
		return nil, NewBudgetError(ErrInvalidDecision, apiErrors.ErrInvalidRequest, string(action))
	}

	session, err := s.sessionRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, s.sessionError(err, sessionID)
	}

	next := *session
	next.Decision = action
	next.Request.Action = action
	if err := Transition(&next, domain.AllocationSessionCommitting, s.now()); err != nil {
		return nil, err
	}

	// Apenas uma decisão vence quando duas chegam para a mesma sessão
	if err := s.sessionRepository.SwapState(ctx, domain.AllocationSessionAwaitingDecision, &next, s.sessionTTL); err != nil {
		return nil, s.sessionError(err, sessionID)
	}

	return s.finish(ctx, &next)
}

func (s *Service) Allocate(ctx context.Context, req domain.AllocationRequest) (*domain.AllocationResolution, error) {
	if err := s.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	return s.commit(ctx, req)
}

// finish grava a alocação de uma sessão em committing e a marca como committed
func (s *Service) finish(ctx context.Context, session *domain.AllocationSession) (*domain.AllocationSession, error) {
	resolution, err := s.commit(ctx, session.Request)
	if err != nil {
		if delErr := s.sessionRepository.Delete(ctx, session.ID); delErr != nil {
			logrus.WithError(delErr).WithField("session_id", session.ID).Warn("Erro ao remover sessão de alocação")
		}
		return nil, err
	}

	session.Result = resolution
	if err := Transition(session, domain.AllocationSessionCommitted, s.now()); err != nil {
		return nil, err
	}

	if err := s.sessionRepository.Save(ctx, session, s.sessionTTL); err != nil {
		// A alocação já foi gravada; a sessão serve apenas para consulta
		logrus.WithError(err).WithField("session_id", session.ID).Warn("Erro ao gravar sessão concluída")
	}

	return session, nil
}

// commit relê a chave, resolve e grava com inserção condicional ou
// atualização compare-and-swap, repetindo quando outra requisição vence a corrida
func (s *Service) commit(ctx context.Context, req domain.AllocationRequest) (*domain.AllocationResolution, error) {
	logger := logrus.WithFields(logrus.Fields{
		"account_id": req.AccountID,
		"quarter":    req.Quarter,
		"action":     string(req.Action),
	})

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current, err := s.allocationRepository.FindByAccountQuarter(ctx, req.AccountID, req.Quarter)
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar alocação existente")
			return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		resolution, err := Resolve(req, current, req.Action)
		if err != nil {
			return nil, err
		}

		switch resolution.Action {
		case domain.AllocationActionInsert:
			created, err := s.allocationRepository.Insert(ctx, &resolution.Result)
			if errors.Is(err, repository.ErrAllocationKeyTaken) {
				if req.Action == domain.AllocationDecisionNone {
					logger.Warn("Outra requisição criou a alocação antes, decisão necessária")
					return nil, &ConflictError{AccountID: req.AccountID, Quarter: req.Quarter, Attempts: attempt}
				}
				logger.WithField("attempt", attempt).Warn("Conflito ao inserir alocação, tentando novamente")
				continue
			}
			if err != nil {
				logger.WithError(err).Error("Erro ao inserir alocação")
				return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
			}
			resolution.Result = *created

		case domain.AllocationActionUpdate:
			updated, err := s.allocationRepository.UpdateAllocatedAmount(
				ctx,
				current.ID,
				current.AllocatedAmount,
				resolution.Result.AllocatedAmount,
			)
			if err != nil {
				logger.WithError(err).Error("Erro ao atualizar alocação")
				return nil, NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
			}
			if !updated {
				logger.WithField("attempt", attempt).Warn("Alocação alterada por outra requisição, tentando novamente")
				continue
			}
		}

		logger.WithFields(logrus.Fields{
			"result":   string(resolution.Action),
			"amount":   resolution.Result.AllocatedAmount.String(),
			"attempts": attempt,
		}).Info("Alocação de orçamento gravada")

		return resolution, nil
	}

	logger.WithField("attempts", s.maxRetries).Error("Tentativas esgotadas ao gravar alocação")

	return nil, &ConflictError{AccountID: req.AccountID, Quarter: req.Quarter, Attempts: s.maxRetries}
}

func (s *Service) validateRequest(ctx context.Context, req domain.AllocationRequest) error {
	if err := ValidateRequest(s.validate, req); err != nil {
		return err
	}

	if s.accountRepository == nil {
		return nil
	}

	account, err := s.accountRepository.GetAccountByID(ctx, req.AccountID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conta da alocação")
		return NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if account == nil {
		return NewBudgetError(ErrAccountNotFound, apiErrors.ErrAccountNotFound, strconv.FormatInt(req.AccountID, 10))
	}

	return nil
}

func (s *Service) sessionError(err error, sessionID string) error {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return NewBudgetError(ErrSessionNotFound, apiErrors.ErrBudgetSessionNotFound, sessionID)
	case errors.Is(err, repository.ErrSessionChanged):
		return NewBudgetError(ErrInvalidSessionTransition, apiErrors.ErrBudgetInvalidTransition, sessionID)
	default:
		logrus.WithError(err).WithField("session_id", sessionID).Error("Erro ao acessar sessão de alocação")
		return NewBudgetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
}

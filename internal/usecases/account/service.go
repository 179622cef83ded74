package account

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/infrastructure/repository"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// AccountService alimenta o seletor de contas do formulário de alocação
type AccountService interface {
	ListAccounts(ctx context.Context, availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
}

type Service struct {
	accountRepository repository.AccountRepository
}

func NewService(accountRepository repository.AccountRepository) AccountService {
	return &Service{
		accountRepository: accountRepository,
	}
}

// ListAccounts lista as contas ordenadas por nome, opcionalmente filtradas por status
func (s *Service) ListAccounts(ctx context.Context, availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas no repositório")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	allowed := make(map[domain.AccountStatus]bool, len(availableStatus))
	for _, status := range availableStatus {
		allowed[status] = true
	}

	result := make([]*domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if account == nil {
			continue
		}
		if len(allowed) > 0 && !allowed[account.Status] {
			continue
		}
		result = append(result, account)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})

	return result, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	if accountID <= 0 {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrInvalidRequest, "Identificador de conta inválido")
	}

	account, err := s.accountRepository.GetAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar conta no repositório")
		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "Conta não encontrada")
	}

	return account, nil
}

// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/tpm-api/infrastructure/database/postgres"
	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=account.go -destination=mocks/account_mock.go -package=mocks

const (
	accountsTable = "accounts a"
)

var accountColumns = []string{"a.id", "a.name", "a.type", "a.status", "a.created_at"}

type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

type accountRepository struct {
	conn postgres.Queryer
}

func NewAccountRepository(conn postgres.Queryer) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc, err := scanAccount(a.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*domain.Account, error) {
	acc := &domain.Account{}
	var status *string

	if err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.Type,
		&status,
		&acc.CreatedAt,
	); err != nil {
		return nil, err
	}

	acc.Status = domain.AccountStatus(deref(status))

	return acc, nil
}

// joinedAccount monta a conta aninhada a partir das colunas de um LEFT JOIN
func joinedAccount(id *int64, name, accountType, status *string, createdAt *time.Time) *domain.Account {
	if id == nil {
		return nil
	}
	return &domain.Account{
		ID:        *id,
		Name:      deref(name),
		Type:      domain.AccountType(deref(accountType)),
		Status:    domain.AccountStatus(deref(status)),
		CreatedAt: createdAt,
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

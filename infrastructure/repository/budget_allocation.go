package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/tpm-api/infrastructure/database/postgres"
	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=budget_allocation.go -destination=mocks/budget_allocation_mock.go -package=mocks

const (
	budgetAllocationsTable = "budget_allocations b"
)

// ErrAllocationKeyTaken indica que outra requisição já gravou o par (conta, trimestre)
var ErrAllocationKeyTaken = errors.New("budget allocation already exists for account and quarter")

var budgetAllocationColumns = []string{
	"b.id",
	"b.account_id",
	"b.quarter",
	"b.allocated_amount",
	"b.spent_amount",
	"b.created_at",
	"a.id",
	"a.name",
	"a.type",
	"a.status",
	"a.created_at",
}

type BudgetAllocationRepository interface {
	ListAllocations(ctx context.Context) ([]*domain.BudgetAllocation, error)
	ListByQuarter(ctx context.Context, quarter string) ([]*domain.BudgetAllocation, error)
	FindByAccountQuarter(ctx context.Context, accountID int64, quarter string) (*domain.BudgetAllocation, error)
	// Insert retorna ErrAllocationKeyTaken quando o par (conta, trimestre) já existe
	Insert(ctx context.Context, allocation *domain.BudgetAllocation) (*domain.BudgetAllocation, error)
	// UpdateAllocatedAmount só grava se o valor atual ainda for o esperado (compare-and-swap)
	UpdateAllocatedAmount(ctx context.Context, allocationID int64, expected, amount decimal.Decimal) (bool, error)
}

type budgetAllocationRepository struct {
	conn postgres.Queryer
}

func NewBudgetAllocationRepository(conn postgres.Queryer) BudgetAllocationRepository {
	return &budgetAllocationRepository{
		conn: conn,
	}
}

func (r *budgetAllocationRepository) ListAllocations(ctx context.Context) ([]*domain.BudgetAllocation, error) {
	return r.list(ctx, nil)
}

func (r *budgetAllocationRepository) ListByQuarter(ctx context.Context, quarter string) ([]*domain.BudgetAllocation, error) {
	return r.list(ctx, squirrel.Eq{"b.quarter": quarter})
}

func (r *budgetAllocationRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.BudgetAllocation, error) {
	queryBuilder := r.selectBuilder().OrderBy("b.quarter DESC", "b.id ASC")
	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	allocations := make([]*domain.BudgetAllocation, 0)
	for rows.Next() {
		allocation, err := scanBudgetAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alocação: %w", err)
		}
		allocations = append(allocations, allocation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return allocations, nil
}

func (r *budgetAllocationRepository) FindByAccountQuarter(ctx context.Context, accountID int64, quarter string) (*domain.BudgetAllocation, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"b.account_id": accountID, "b.quarter": quarter}).
		OrderBy("b.id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	allocation, err := scanBudgetAllocation(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear alocação: %w", err)
	}

	return allocation, nil
}

func (r *budgetAllocationRepository) Insert(ctx context.Context, allocation *domain.BudgetAllocation) (*domain.BudgetAllocation, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("budget_allocations").
		Columns("account_id", "quarter", "allocated_amount", "spent_amount").
		Values(allocation.AccountID, allocation.Quarter, allocation.AllocatedAmount, allocation.SpentAmount).
		Suffix("ON CONFLICT (account_id, quarter) DO NOTHING RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	created := *allocation
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgres.IsUniqueViolation(err) {
			return nil, ErrAllocationKeyTaken
		}
		return nil, fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return &created, nil
}

func (r *budgetAllocationRepository) UpdateAllocatedAmount(ctx context.Context, allocationID int64, expected, amount decimal.Decimal) (bool, error) {
	query, args, err := squirrel.
		Update("budget_allocations").
		Set("allocated_amount", amount).
		Where(squirrel.Eq{"id": allocationID}).
		Where(squirrel.Expr("allocated_amount = ?", expected)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar alocação: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *budgetAllocationRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(budgetAllocationColumns...).
		From(budgetAllocationsTable).
		LeftJoin("accounts a ON b.account_id = a.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanBudgetAllocation(row scanner) (*domain.BudgetAllocation, error) {
	b := &domain.BudgetAllocation{}

	var (
		accountRefID                            *int64
		spent                                   decimal.NullDecimal
		accountID                               *int64
		accountName, accountType, accountStatus *string
		accountCreatedAt                        *time.Time
	)

	if err := row.Scan(
		&b.ID,
		&accountRefID,
		&b.Quarter,
		&b.AllocatedAmount,
		&spent,
		&b.CreatedAt,
		&accountID,
		&accountName,
		&accountType,
		&accountStatus,
		&accountCreatedAt,
	); err != nil {
		return nil, err
	}

	if accountRefID != nil {
		b.AccountID = *accountRefID
	}
	b.SpentAmount = decimal.Zero
	if spent.Valid {
		b.SpentAmount = spent.Decimal
	}
	b.Account = joinedAccount(accountID, accountName, accountType, accountStatus, accountCreatedAt)

	return b, nil
}

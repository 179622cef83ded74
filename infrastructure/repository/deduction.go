package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/tpm-api/infrastructure/database/postgres"
	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=deduction.go -destination=mocks/deduction_mock.go -package=mocks

const (
	deductionsTable = "deductions d"
)

type DeductionRepository interface {
	ListDeductions(ctx context.Context) ([]*domain.Deduction, error)
	// ListOpen retorna as deduções que ainda não foram resolvidas
	ListOpen(ctx context.Context) ([]*domain.Deduction, error)
	// UpdateDaysOld grava a idade recalculada de cada dedução em uma única transação
	UpdateDaysOld(ctx context.Context, daysOldByID map[int64]int) (int64, error)
}

type deductionRepository struct {
	conn postgres.Conn
}

func NewDeductionRepository(conn postgres.Conn) DeductionRepository {
	return &deductionRepository{
		conn: conn,
	}
}

func (r *deductionRepository) ListDeductions(ctx context.Context) ([]*domain.Deduction, error) {
	return r.list(ctx, nil)
}

func (r *deductionRepository) ListOpen(ctx context.Context) ([]*domain.Deduction, error) {
	return r.list(ctx, squirrel.NotEq{"d.status": string(domain.DeductionStatusResolved)})
}

func (r *deductionRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Deduction, error) {
	queryBuilder := squirrel.
		Select(
			"d.id",
			"d.account_id",
			"d.promotion_id",
			"d.reference_number",
			"d.amount",
			"d.status",
			"d.submitted_date",
			"d.days_old",
			"d.description",
			"d.created_at",
			"a.id",
			"a.name",
			"a.type",
			"a.status",
			"a.created_at",
			"p.name",
		).
		From(deductionsTable).
		LeftJoin("accounts a ON d.account_id = a.id").
		LeftJoin("promotions p ON d.promotion_id = p.id").
		OrderBy("d.days_old DESC", "d.id ASC").
		PlaceholderFormat(squirrel.Dollar)

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

	deductions := make([]*domain.Deduction, 0)
	for rows.Next() {
		deduction, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear dedução: %w", err)
		}
		deductions = append(deductions, deduction)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deductions, nil
}

func (r *deductionRepository) UpdateDaysOld(ctx context.Context, daysOldByID map[int64]int) (int64, error) {
	if len(daysOldByID) == 0 {
		return 0, nil
	}

	// Ordem fixa de ids evita deadlock entre execuções concorrentes
	ids := make([]int64, 0, len(daysOldByID))
	for id := range daysOldByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var updated int64
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			query, args, err := squirrel.
				Update("deductions").
				Set("days_old", daysOldByID[id]).
				Where(squirrel.Eq{"id": id}).
				Where(squirrel.NotEq{"days_old": daysOldByID[id]}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de atualização: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("erro ao atualizar idade da dedução %d: %w", id, err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return err
			}
			updated += affected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

func scanDeduction(row scanner) (*domain.Deduction, error) {
	d := &domain.Deduction{}

	var (
		accountRefID                            *int64
		status                                  *string
		accountID                               *int64
		accountName, accountType, accountStatus *string
		accountCreatedAt                        *time.Time
		promotionName                           *string
	)

	if err := row.Scan(
		&d.ID,
		&accountRefID,
		&d.PromotionID,
		&d.ReferenceNumber,
		&d.Amount,
		&status,
		&d.SubmittedDate,
		&d.DaysOld,
		&d.Description,
		&d.CreatedAt,
		&accountID,
		&accountName,
		&accountType,
		&accountStatus,
		&accountCreatedAt,
		&promotionName,
	); err != nil {
		return nil, err
	}

	if accountRefID != nil {
		d.AccountID = *accountRefID
	}
	d.Status = domain.DeductionStatus(deref(status))
	d.Account = joinedAccount(accountID, accountName, accountType, accountStatus, accountCreatedAt)

	if d.PromotionID != nil && promotionName != nil {
		d.Promotion = &domain.Promotion{ID: *d.PromotionID, Name: *promotionName}
	}

	return d, nil
}

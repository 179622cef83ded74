package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/tpm-api/infrastructure/database/postgres"
	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=promotion.go -destination=mocks/promotion_mock.go -package=mocks

const (
	promotionsTable = "promotions p"
)

var promotionColumns = []string{
	"p.id",
	"p.name",
	"p.account_id",
	"p.product_id",
	"p.start_date",
	"p.end_date",
	"p.promotion_type",
	"p.discount_percent",
	"p.budget",
	"p.forecasted_volume",
	"p.actual_volume",
	"p.status",
	"p.created_by",
	"p.created_at",
	"a.id",
	"a.name",
	"a.type",
	"a.status",
	"a.created_at",
	"pr.id",
	"pr.sku",
	"pr.name",
	"pr.category",
	"pr.brand",
}

type PromotionRepository interface {
	ListPromotions(ctx context.Context) ([]*domain.Promotion, error)
	ListByStatus(ctx context.Context, status domain.PromotionStatus) ([]*domain.Promotion, error)
	// UpdateStatus só altera a promoção se ela ainda estiver no status esperado
	UpdateStatus(ctx context.Context, promotionID int64, from, to domain.PromotionStatus) (bool, error)
}

type promotionRepository struct {
	conn postgres.Queryer
}

func NewPromotionRepository(conn postgres.Queryer) PromotionRepository {
	return &promotionRepository{
		conn: conn,
	}
}

func (r *promotionRepository) ListPromotions(ctx context.Context) ([]*domain.Promotion, error) {
	return r.list(ctx, nil)
}

func (r *promotionRepository) ListByStatus(ctx context.Context, status domain.PromotionStatus) ([]*domain.Promotion, error) {
	return r.list(ctx, squirrel.Eq{"p.status": string(status)})
}

func (r *promotionRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Promotion, error) {
	queryBuilder := squirrel.
		Select(promotionColumns...).
		From(promotionsTable).
		LeftJoin("accounts a ON p.account_id = a.id").
		LeftJoin("products pr ON p.product_id = pr.id").
		OrderBy("p.start_date ASC", "p.id ASC").
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

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		promotion, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear promoção: %w", err)
		}
		promotions = append(promotions, promotion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return promotions, nil
}

func (r *promotionRepository) UpdateStatus(ctx context.Context, promotionID int64, from, to domain.PromotionStatus) (bool, error) {
	query, args, err := squirrel.
		Update("promotions").
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": promotionID, "status": string(from)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar status da promoção: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func scanPromotion(row scanner) (*domain.Promotion, error) {
	p := &domain.Promotion{}

	var (
		promotionType, status                         *string
		accountID                                     *int64
		accountName, accountType, accountStatus       *string
		accountCreatedAt                              *time.Time
		productID                                     *int64
		productSKU, productName, productCat, productBr *string
	)

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.AccountID,
		&p.ProductID,
		&p.StartDate,
		&p.EndDate,
		&promotionType,
		&p.DiscountPercent,
		&p.Budget,
		&p.ForecastedVolume,
		&p.ActualVolume,
		&status,
		&p.CreatedBy,
		&p.CreatedAt,
		&accountID,
		&accountName,
		&accountType,
		&accountStatus,
		&accountCreatedAt,
		&productID,
		&productSKU,
		&productName,
		&productCat,
		&productBr,
	); err != nil {
		return nil, err
	}

	p.PromotionType = domain.PromotionType(deref(promotionType))
	p.Status = domain.PromotionStatus(deref(status))
	p.Account = joinedAccount(accountID, accountName, accountType, accountStatus, accountCreatedAt)

	if productID != nil {
		p.Product = &domain.Product{
			ID:       *productID,
			SKU:      deref(productSKU),
			Name:     deref(productName),
			Category: deref(productCat),
			Brand:    deref(productBr),
		}
	}

	return p, nil
}

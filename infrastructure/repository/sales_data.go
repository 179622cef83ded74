package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/tpm-api/infrastructure/database/postgres"
	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=sales_data.go -destination=mocks/sales_data_mock.go -package=mocks

const (
	salesDataTable = "sales_data s"
)

type SalesDataRepository interface {
	ListSalesData(ctx context.Context) ([]*domain.SalesDataPoint, error)
}

type salesDataRepository struct {
	conn postgres.Queryer
}

func NewSalesDataRepository(conn postgres.Queryer) SalesDataRepository {
	return &salesDataRepository{
		conn: conn,
	}
}

// ListSalesData retorna os pontos de venda já com promoção, conta e produto aninhados
func (r *salesDataRepository) ListSalesData(ctx context.Context) ([]*domain.SalesDataPoint, error) {
	query, args, err := squirrel.
		Select(
			"s.id",
			"s.promotion_id",
			"s.account_id",
			"s.product_id",
			"s.sales_date",
			"s.units_lift",
			"s.dollar_lift",
			"s.baseline_sales",
			"s.incremental_sales",
			"s.roi",
			"s.created_at",
			"p.id",
			"p.name",
			"p.account_id",
			"p.promotion_type",
			"p.budget",
			"p.status",
			"a.id",
			"a.name",
			"a.type",
			"a.status",
			"a.created_at",
			"pr.id",
			"pr.name",
		).
		From(salesDataTable).
		LeftJoin("promotions p ON s.promotion_id = p.id").
		LeftJoin("accounts a ON s.account_id = a.id").
		LeftJoin("products pr ON s.product_id = pr.id").
		OrderBy("s.sales_date ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.SalesDataPoint, 0)
	for rows.Next() {
		point, err := scanSalesDataPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ponto de venda: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func scanSalesDataPoint(row scanner) (*domain.SalesDataPoint, error) {
	s := &domain.SalesDataPoint{}

	var (
		promotionID                             *int64
		promotionName, promotionType, status    *string
		promotionAccountID                      *int64
		promotionBudget                         domain.Numeric
		accountID                               *int64
		accountName, accountType, accountStatus *string
		accountCreatedAt                        *time.Time
		productID                               *int64
		productName                             *string
	)

	if err := row.Scan(
		&s.ID,
		&s.PromotionID,
		&s.AccountID,
		&s.ProductID,
		&s.SalesDate,
		&s.UnitsLift,
		&s.DollarLift,
		&s.BaselineSales,
		&s.IncrementalSales,
		&s.ROI,
		&s.CreatedAt,
		&promotionID,
		&promotionName,
		&promotionAccountID,
		&promotionType,
		&promotionBudget,
		&status,
		&accountID,
		&accountName,
		&accountType,
		&accountStatus,
		&accountCreatedAt,
		&productID,
		&productName,
	); err != nil {
		return nil, err
	}

	if promotionID != nil {
		s.Promotion = &domain.Promotion{
			ID:            *promotionID,
			Name:          deref(promotionName),
			AccountID:     promotionAccountID,
			PromotionType: domain.PromotionType(deref(promotionType)),
			Budget:        promotionBudget,
			Status:        domain.PromotionStatus(deref(status)),
		}
	}

	s.Account = joinedAccount(accountID, accountName, accountType, accountStatus, accountCreatedAt)

	if productID != nil {
		s.Product = &domain.Product{ID: *productID, Name: deref(productName)}
	}

	return s, nil
}

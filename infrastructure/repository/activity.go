package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/tpm-api/infrastructure/database/postgres"
	"github.com/vfg2006/tpm-api/internal/domain"
)

//go:generate mockgen -source=activity.go -destination=mocks/activity_mock.go -package=mocks

const (
	activitiesTable = "activities act"
)

var activityColumns = []string{
	"act.id",
	"act.user_id",
	"act.type",
	"act.message",
	"act.entity_type",
	"act.entity_id",
	"act.created_at",
}

type ActivityRepository interface {
	// ListRecent retorna as atividades mais recentes primeiro; limit <= 0 não limita
	ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error)
}

type activityRepository struct {
	conn postgres.Queryer
}

func NewActivityRepository(conn postgres.Queryer) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	queryBuilder := squirrel.
		Select(activityColumns...).
		From(activitiesTable).
		OrderBy("act.created_at DESC", "act.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
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

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}

func scanActivity(row scanner) (*domain.Activity, error) {
	activity := &domain.Activity{}
	var entityType *string

	if err := row.Scan(
		&activity.ID,
		&activity.UserID,
		&activity.Type,
		&activity.Message,
		&entityType,
		&activity.EntityID,
		&activity.CreatedAt,
	); err != nil {
		return nil, err
	}

	if entityType != nil {
		kind := domain.ActivityEntityType(*entityType)
		activity.EntityType = &kind
	}

	return activity, nil
}

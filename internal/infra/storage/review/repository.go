package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/beautyline/salon-service/internal/domain"
	"github.com/beautyline/salon-service/pkg/dbmetrics"
	"github.com/beautyline/salon-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var reviewColumns = []string{
	"id",
	"user_id",
	"salon_id",
	"specialist_id",
	"service_id",
	"appointment_id",
	"content",
	"rating",
	"approved",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв (изначально не одобрен)
func (r *Repository) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"user_id",
			"salon_id",
			"specialist_id",
			"service_id",
			"appointment_id",
			"content",
			"rating",
			"approved",
		).
		Values(
			rev.UserID,
			rev.SalonID,
			rev.SpecialistID,
			rev.ServiceID,
			rev.AppointmentID,
			rev.Content,
			rev.Rating,
			rev.Approved,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rev.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rev.CreatedAt = createdAt.Time
	rev.UpdatedAt = updatedAt.Time

	return rev, nil
}

// List получает отзывы с фильтрацией по салону/мастеру
func (r *Repository) List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC")

	if filter.SalonID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"salon_id": *filter.SalonID})
	}
	if filter.SpecialistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialist_id": *filter.SpecialistID})
	}
	if filter.OnlyApproved {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"approved": true})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rev.ID,
			&rev.UserID,
			&rev.SalonID,
			&rev.SpecialistID,
			&rev.ServiceID,
			&rev.AppointmentID,
			&rev.Content,
			&rev.Rating,
			&rev.Approved,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		rev.CreatedAt = createdAt.Time
		rev.UpdatedAt = updatedAt.Time
		reviews = append(reviews, &rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

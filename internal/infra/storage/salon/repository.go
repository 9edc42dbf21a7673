package salon

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

var salonColumns = []string{
	"id",
	"owner_id",
	"slug",
	"name",
	"translations",
	"address",
	"city",
	"phone",
	"email",
	"website",
	"working_hours",
	"timezone",
	"active",
	"verified",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с салонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон по ID (мягко удаленные не возвращаются)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSalon(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	return s, nil
}

// List получает список салонов с фильтрацией и пагинацией
func (r *Repository) List(ctx context.Context, filter domain.SalonsFilter) ([]*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(salonColumns...).
		From("salons").
		Where("deleted_at IS NULL").
		OrderBy("name ASC")

	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
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

	salons := make([]*domain.Salon, 0)
	for rows.Next() {
		s, err := scanSalon(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		salons = append(salons, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return salons, nil
}

// UpdateWorkingHours обновляет недельное расписание салона
// Расписание валидируется на уровне сервиса до записи
func (r *Repository) UpdateWorkingHours(ctx context.Context, id int64, hours domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salons").
		Set("working_hours", hours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSalonNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSalon(row rowScanner) (*domain.Salon, error) {
	var s domain.Salon
	var createdAt, updatedAt sql.NullTime
	var timezone sql.NullString

	err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Slug,
		&s.Name,
		&s.Translations,
		&s.Address,
		&s.City,
		&s.Phone,
		&s.Email,
		&s.Website,
		&s.WorkingHours,
		&timezone,
		&s.Active,
		&s.Verified,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Timezone = timezone.String
	if s.Timezone == "" {
		s.Timezone = domain.DefaultTimezone
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

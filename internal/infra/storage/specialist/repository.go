package specialist

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/beautyline/salon-service/internal/domain"
	"github.com/beautyline/salon-service/pkg/dbmetrics"
	"github.com/beautyline/salon-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Колонки выбираются вместе с агрегатом услуг мастера из specialist_service
var specialistColumns = []string{
	"s.id",
	"s.salon_id",
	"s.user_id",
	"s.name",
	"s.translations",
	"s.position",
	"s.bio",
	"s.working_hours",
	"s.active",
	"s.created_at",
	"s.updated_at",
	"COALESCE(array_agg(ss.service_id) FILTER (WHERE ss.service_id IS NOT NULL), '{}') AS service_ids",
}

const specialistGroupBy = "s.id, s.salon_id, s.user_id, s.name, s.translations, s.position, s.bio, s.working_hours, s.active, s.created_at, s.updated_at"

// Repository репозиторий для работы с мастерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID вместе со списком его услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Specialist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(specialistColumns...).
		From("specialists s").
		LeftJoin("specialist_service ss ON ss.specialist_id = s.id").
		Where(squirrel.Eq{"s.id": id}).
		Where("s.deleted_at IS NULL").
		GroupBy(specialistGroupBy).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSpecialist(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpecialistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan specialist: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListBySalon получает активных мастеров салона
func (r *Repository) ListBySalon(ctx context.Context, salonID int64) ([]*domain.Specialist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(specialistColumns...).
		From("specialists s").
		LeftJoin("specialist_service ss ON ss.specialist_id = s.id").
		Where(squirrel.Eq{"s.salon_id": salonID}).
		Where("s.deleted_at IS NULL").
		GroupBy(specialistGroupBy).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	specialists := make([]*domain.Specialist, 0)
	for rows.Next() {
		s, err := scanSpecialist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan row: %v", ErrScanRow, err)
		}
		specialists = append(specialists, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return specialists, nil
}

// UpdateWorkingHours обновляет персональное расписание мастера
// hours == nil очищает расписание - мастер возвращается к часам салона
func (r *Repository) UpdateWorkingHours(ctx context.Context, id int64, hours *domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("specialists").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL")

	if hours == nil {
		updateBuilder = updateBuilder.Set("working_hours", nil)
	} else {
		updateBuilder = updateBuilder.Set("working_hours", *hours)
	}

	query, args, err := updateBuilder.ToSql()
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
		return ErrSpecialistNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpecialist(row rowScanner) (*domain.Specialist, error) {
	var s domain.Specialist
	var createdAt, updatedAt sql.NullTime
	var hoursRaw []byte
	var serviceIDs pq.Int64Array

	err := row.Scan(
		&s.ID,
		&s.SalonID,
		&s.UserID,
		&s.Name,
		&s.Translations,
		&s.Position,
		&s.Bio,
		&hoursRaw,
		&s.Active,
		&createdAt,
		&updatedAt,
		&serviceIDs,
	)
	if err != nil {
		return nil, err
	}

	if len(hoursRaw) > 0 {
		var hours domain.WeekSchedule
		if err := json.Unmarshal(hoursRaw, &hours); err != nil {
			return nil, fmt.Errorf("unmarshal working_hours: %v", err)
		}
		s.WorkingHours = &hours
	}

	s.ServiceIDs = []int64(serviceIDs)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
	"github.com/hallhub/SHB-ScheduleService/pkg/dbmetrics"
	"github.com/hallhub/SHB-ScheduleService/pkg/psqlbuilder"
	"github.com/hallhub/SHB-ScheduleService/pkg/types"
)

const tableHallSchedules = "hall_schedules"

var scheduleColumns = []string{
	"id",
	"hall_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с недельными расписаниями залов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByHall получает все дневные записи расписания зала, упорядоченные по дню недели.
// Если расписание еще не настроено, возвращает пустой список (это не ошибка).
func (r *Repository) GetByHall(ctx context.Context, hallID int64) ([]*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From(tableHallSchedules).
		Where(squirrel.Eq{"hall_id": hallID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHall - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHall - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.DaySchedule, 0, domain.DaysPerWeek)

	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByHall - scan row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByHall - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// ReplaceForHall полностью заменяет расписание зала: удаляет прежние записи
// и вставляет семь новых. Вызывается внутри транзакции (tx manager кладет
// её в контекст), так что замена атомарна.
func (r *Repository) ReplaceForHall(ctx context.Context, hallID int64, days []domain.DaySchedule) ([]*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(tableHallSchedules).
		Where(squirrel.Eq{"hall_id": hallID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForHall - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForHall - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert(tableHallSchedules).
		Columns(
			"hall_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_active",
		)

	for _, day := range days {
		insertBuilder = insertBuilder.Values(
			hallID,
			int(day.DayOfWeek),
			string(day.StartTime),
			string(day.EndTime),
			day.IsActive,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.
		Suffix("RETURNING " + strings.Join(scheduleColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForHall - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForHall - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	persisted := make([]*domain.DaySchedule, 0, len(days))

	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceForHall - scan row: %v", ErrScanRow, err)
		}
		persisted = append(persisted, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForHall - rows error: %v", ErrScanRow, err)
	}

	return persisted, nil
}

// DeleteByHall удаляет расписание зала целиком
func (r *Repository) DeleteByHall(ctx context.Context, hallID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableHallSchedules).
		Where(squirrel.Eq{"hall_id": hallID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByHall - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByHall - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByHall - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// scanDay сканирует одну строку hall_schedules в domain-модель
func scanDay(rows *sql.Rows) (*domain.DaySchedule, error) {
	var day domain.DaySchedule
	var dayOfWeek int
	var startTime, endTime string
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&day.ID,
		&day.HallID,
		&dayOfWeek,
		&startTime,
		&endTime,
		&day.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	day.DayOfWeek = domain.Weekday(dayOfWeek)
	day.StartTime = types.TimeString(startTime)
	day.EndTime = types.TimeString(endTime)
	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}

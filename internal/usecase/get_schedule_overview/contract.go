package get_schedule_overview

import (
	"context"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByHall(ctx context.Context, hallID int64) ([]*domain.DaySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package schedule

import (
	"context"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
	"github.com/hallhub/SHB-ScheduleService/internal/integrations/hallservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByHall(ctx context.Context, hallID int64) ([]*domain.DaySchedule, error)
	ReplaceForHall(ctx context.Context, hallID int64, days []domain.DaySchedule) ([]*domain.DaySchedule, error)
}

// HallServiceClient интерфейс клиента справочника залов
type HallServiceClient interface {
	GetHall(ctx context.Context, hallID int64) (*hallservice.Hall, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

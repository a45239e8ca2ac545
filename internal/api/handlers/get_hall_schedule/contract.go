package get_hall_schedule

import (
	"context"

	"github.com/hallhub/SHB-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByHall(ctx context.Context, hallID int64) ([]models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

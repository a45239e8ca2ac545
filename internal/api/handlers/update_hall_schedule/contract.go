package update_hall_schedule

import (
	"context"

	"github.com/hallhub/SHB-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	Replace(ctx context.Context, hallID int64, req *models.ReplaceScheduleRequest) ([]models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

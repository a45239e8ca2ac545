package get_schedule_overview

import (
	"context"

	overviewUC "github.com/hallhub/SHB-ScheduleService/internal/usecase/get_schedule_overview"
)

type OverviewUseCase interface {
	Execute(ctx context.Context, req *overviewUC.Request) (*overviewUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

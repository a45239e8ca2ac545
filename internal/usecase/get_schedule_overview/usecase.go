package get_schedule_overview

import (
	"context"
	"fmt"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
)

// UseCase use case для получения сводки по недельному расписанию зала:
// количество слотов по дням, суммарное число слотов и число активных дней
type UseCase struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения сводки.
// Если расписание зала еще не настроено, сводка считается по стандартному
// шаблону (все дни 07:00-23:30) с флагом Configured=false.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetScheduleOverview: hall=%d", req.HallID)

	if req.HallID <= 0 {
		return nil, fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	records, err := uc.scheduleRepo.GetByHall(ctx, req.HallID)
	if err != nil {
		uc.logger.Error("GetScheduleOverview: failed to get schedule for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	var week *domain.WeeklySchedule
	configured := len(records) > 0

	if configured {
		days := make([]domain.DaySchedule, len(records))
		for i, r := range records {
			days[i] = *r
		}
		week, err = domain.FromRecords(req.HallID, days)
		if err != nil {
			uc.logger.Error("GetScheduleOverview: malformed schedule for hall=%d: %v", req.HallID, err)
			return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
		}
	} else {
		uc.logger.Info("GetScheduleOverview: hall=%d has no schedule, using default template", req.HallID)
		week = domain.NewDefaultWeeklySchedule(req.HallID)
	}

	resp := &Response{
		HallID:     req.HallID,
		Configured: configured,
		Days:       make([]DayOverview, 0, domain.DaysPerWeek),
		TotalSlots: week.TotalSlots(),
		ActiveDays: week.ActiveDayCount(),
	}

	for _, day := range week.Records() {
		resp.Days = append(resp.Days, DayOverview{
			DayOfWeek: int(day.DayOfWeek),
			Weekday:   day.DayOfWeek.Name(),
			StartTime: string(day.StartTime),
			EndTime:   string(day.EndTime),
			IsActive:  day.IsActive,
			Slots:     day.Slots(),
		})
	}

	uc.logger.Info("GetScheduleOverview: hall=%d, total_slots=%d, active_days=%d",
		req.HallID, resp.TotalSlots, resp.ActiveDays)

	return resp, nil
}

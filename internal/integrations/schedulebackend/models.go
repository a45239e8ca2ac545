package schedulebackend

import (
	"github.com/hallhub/SHB-ScheduleService/internal/domain"
	"github.com/hallhub/SHB-ScheduleService/pkg/types"
)

// DayScheduleRecord wire-модель одной дневной записи расписания
type DayScheduleRecord struct {
	ID        int64  `json:"id,omitempty"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// ErrorResponse модель ошибки от бэкенда расписаний
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует wire-модель в domain-модель
func (r DayScheduleRecord) ToDomain(hallID int64) domain.DaySchedule {
	return domain.DaySchedule{
		ID:        r.ID,
		HallID:    hallID,
		DayOfWeek: domain.Weekday(r.DayOfWeek),
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
		IsActive:  r.IsActive,
	}
}

// FromDomain конвертирует domain-модель в wire-модель
func FromDomain(day domain.DaySchedule) DayScheduleRecord {
	return DayScheduleRecord{
		ID:        day.ID,
		DayOfWeek: int(day.DayOfWeek),
		StartTime: string(day.StartTime),
		EndTime:   string(day.EndTime),
		IsActive:  day.IsActive,
	}
}

// RecordsToDomain конвертирует список wire-моделей в domain-модели
func RecordsToDomain(hallID int64, records []DayScheduleRecord) []domain.DaySchedule {
	days := make([]domain.DaySchedule, len(records))
	for i, r := range records {
		days[i] = r.ToDomain(hallID)
	}
	return days
}

// RecordsFromDomain конвертирует список domain-моделей в wire-модели
func RecordsFromDomain(days []domain.DaySchedule) []DayScheduleRecord {
	records := make([]DayScheduleRecord, len(days))
	for i, d := range days {
		records[i] = FromDomain(d)
	}
	return records
}

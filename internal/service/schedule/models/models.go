package models

import (
	"github.com/hallhub/SHB-ScheduleService/internal/domain"
	"github.com/hallhub/SHB-ScheduleService/pkg/types"
)

// Request модели

// DayRecord одна дневная запись расписания в запросе на сохранение
type DayRecord struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// ReplaceScheduleRequest запрос на полную замену недельного расписания зала.
// Days должен содержать ровно семь записей, по одной на каждый день недели.
type ReplaceScheduleRequest struct {
	UserID int64
	Days   []DayRecord
}

// Response модели

// DayResponse одна сохраненная дневная запись расписания
type DayResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// Методы конвертации

// ToDomainDays конвертирует записи запроса в domain-модели
func (r *ReplaceScheduleRequest) ToDomainDays(hallID int64) []domain.DaySchedule {
	days := make([]domain.DaySchedule, len(r.Days))
	for i, rec := range r.Days {
		days[i] = domain.DaySchedule{
			HallID:    hallID,
			DayOfWeek: domain.Weekday(rec.DayOfWeek),
			StartTime: types.TimeString(rec.StartTime),
			EndTime:   types.TimeString(rec.EndTime),
			IsActive:  rec.IsActive,
		}
	}
	return days
}

// FromDomainDay конвертирует domain-модель в DTO
func FromDomainDay(d *domain.DaySchedule) DayResponse {
	return DayResponse{
		ID:        d.ID,
		DayOfWeek: int(d.DayOfWeek),
		StartTime: string(d.StartTime),
		EndTime:   string(d.EndTime),
		IsActive:  d.IsActive,
	}
}

// FromDomainDays конвертирует список domain-моделей в DTO
func FromDomainDays(days []*domain.DaySchedule) []DayResponse {
	out := make([]DayResponse, len(days))
	for i, d := range days {
		out[i] = FromDomainDay(d)
	}
	return out
}

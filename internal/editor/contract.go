package editor

import (
	"context"
	"time"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
)

// ScheduleClient интерфейс клиента бэкенда расписаний
type ScheduleClient interface {
	// GetHallSchedule возвращает дневные записи зала; пустой список означает,
	// что расписание еще не настроено
	GetHallSchedule(ctx context.Context, hallID int64) ([]domain.DaySchedule, error)

	// SaveHallSchedule полностью заменяет расписание зала и возвращает
	// сохраненные записи (идентификаторы могут измениться)
	SaveHallSchedule(ctx context.Context, hallID int64, days []domain.DaySchedule) ([]domain.DaySchedule, error)
}

// TokenSource выдает bearer-токен текущей сессии.
// Пустой токен означает, что пользователь не аутентифицирован.
type TokenSource interface {
	Token() string
}

// Clock интерфейс для получения текущего времени (для тестирования)
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealClock реальные часы для production
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

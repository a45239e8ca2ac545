package get_schedule_overview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
)

type stubRepo struct {
	days []*domain.DaySchedule
	err  error
}

func (s *stubRepo) GetByHall(ctx context.Context, hallID int64) ([]*domain.DaySchedule, error) {
	return s.days, s.err
}

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

func weekRecords(hallID int64) []*domain.DaySchedule {
	days := make([]*domain.DaySchedule, 0, domain.DaysPerWeek)
	for d := domain.Monday; d <= domain.Sunday; d++ {
		days = append(days, &domain.DaySchedule{
			ID:        int64(d),
			HallID:    hallID,
			DayOfWeek: d,
			StartTime: "07:00",
			EndTime:   "23:30",
			IsActive:  true,
		})
	}
	return days
}

func TestExecute_ConfiguredSchedule(t *testing.T) {
	records := weekRecords(5)
	// Вторник короче, воскресенье закрыто
	records[1].StartTime = "10:00"
	records[1].EndTime = "16:00"
	records[6].IsActive = false

	uc := NewUseCase(&stubRepo{days: records}, stubLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HallID: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.HallID)
	assert.True(t, resp.Configured)
	require.Len(t, resp.Days, 7)

	assert.Equal(t, "Tuesday", resp.Days[1].Weekday)
	assert.Equal(t, 4, resp.Days[1].Slots) // 10:00-16:00

	assert.False(t, resp.Days[6].IsActive)
	assert.Zero(t, resp.Days[6].Slots, "inactive day contributes no slots")

	assert.Equal(t, 5*11+4, resp.TotalSlots)
	assert.Equal(t, 6, resp.ActiveDays)
}

func TestExecute_UnconfiguredHallUsesDefault(t *testing.T) {
	uc := NewUseCase(&stubRepo{}, stubLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HallID: 9})
	require.NoError(t, err)

	assert.False(t, resp.Configured)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, string(domain.DefaultOpenTime), resp.Days[0].StartTime)
	assert.Equal(t, 77, resp.TotalSlots)
	assert.Equal(t, 7, resp.ActiveDays)
}

func TestExecute_InvalidHallID(t *testing.T) {
	uc := NewUseCase(&stubRepo{}, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{HallID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&stubRepo{err: errors.New("connection refused")}, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{HallID: 1})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_MalformedStoredSchedule(t *testing.T) {
	// Шесть записей вместо семи
	records := weekRecords(3)[:6]
	uc := NewUseCase(&stubRepo{days: records}, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{HallID: 3})
	assert.ErrorIs(t, err, ErrMalformedSchedule)
}

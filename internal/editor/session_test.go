package editor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
	"github.com/hallhub/SHB-ScheduleService/pkg/ptr"
	"github.com/hallhub/SHB-ScheduleService/pkg/types"
)

// Тестовые дублеры

type fakeTokens struct {
	token string
}

func (f *fakeTokens) Token() string { return f.token }

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeClient in-memory бэкенд расписаний
type fakeClient struct {
	mu        sync.Mutex
	store     map[int64][]domain.DaySchedule
	nextID    int64
	getErr    error
	saveErr   error
	getCalls  int
	saveCalls int

	// onGet вызывается в начале GetHallSchedule; позволяет тесту
	// заблокировать конкретный запрос
	onGet func(hallID int64)
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		store:  make(map[int64][]domain.DaySchedule),
		nextID: 1,
	}
}

func (f *fakeClient) GetHallSchedule(ctx context.Context, hallID int64) ([]domain.DaySchedule, error) {
	if f.onGet != nil {
		f.onGet(hallID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++

	if f.getErr != nil {
		return nil, f.getErr
	}

	days := make([]domain.DaySchedule, len(f.store[hallID]))
	copy(days, f.store[hallID])
	return days, nil
}

func (f *fakeClient) SaveHallSchedule(ctx context.Context, hallID int64, days []domain.DaySchedule) ([]domain.DaySchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++

	if f.saveErr != nil {
		return nil, f.saveErr
	}

	persisted := make([]domain.DaySchedule, len(days))
	for i, d := range days {
		d.ID = f.nextID
		f.nextID++
		persisted[i] = d
	}
	f.store[hallID] = persisted

	out := make([]domain.DaySchedule, len(persisted))
	copy(out, persisted)
	return out, nil
}

func (f *fakeClient) seed(hallID int64, week *domain.WeeklySchedule) {
	f.mu.Lock()
	defer f.mu.Unlock()
	days := week.Records()
	for i := range days {
		days[i].ID = f.nextID
		f.nextID++
	}
	f.store[hallID] = days
}

func newTestSession(client *fakeClient) (*Session, *fakeClock) {
	clock := newFakeClock()
	return NewSession(client, &fakeTokens{token: "test-token"}, clock, nopLogger{}), clock
}

// Тесты

func TestSelectHall_NoToken(t *testing.T) {
	client := newFakeClient()
	session := NewSession(client, &fakeTokens{token: ""}, newFakeClock(), nopLogger{})

	err := session.SelectHall(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	view := session.Snapshot()
	assert.Equal(t, StateError, view.State)
	assert.NotEmpty(t, view.ErrorMessage)
	assert.Zero(t, client.getCalls, "network must not be touched without a token")
}

func TestSelectHall_EmptyResultAppliesDefault(t *testing.T) {
	client := newFakeClient()
	session, _ := newTestSession(client)

	require.NoError(t, session.SelectHall(context.Background(), 7))

	view := session.Snapshot()
	assert.Equal(t, StateReady, view.State)
	require.NotNil(t, view.Week)
	assert.Equal(t, 7, view.Week.ActiveDayCount())
	assert.Equal(t, domain.DefaultOpenTime, view.Week.Day(domain.Monday).StartTime)
	assert.Equal(t, 77, view.TotalSlots)

	// Шаблон локальный: сохранения не было
	assert.Zero(t, client.saveCalls)
}

func TestSelectHall_LoadsExistingSchedule(t *testing.T) {
	client := newFakeClient()
	seeded := domain.NewDefaultWeeklySchedule(3).ReplaceDay(domain.Monday, domain.DayPatch{
		StartTime: ptr.Ptr(types.TimeString("10:00")),
		EndTime:   ptr.Ptr(types.TimeString("16:00")),
	})
	client.seed(3, seeded)

	session, _ := newTestSession(client)
	require.NoError(t, session.SelectHall(context.Background(), 3))

	view := session.Snapshot()
	assert.Equal(t, StateReady, view.State)
	assert.Equal(t, types.TimeString("10:00"), view.Week.Day(domain.Monday).StartTime)
	assert.Equal(t, 4, view.SlotsPerDay[0]) // 10:00-16:00 = 4 слота
}

func TestSelectHall_FetchFailure(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("backend unavailable")

	session, _ := newTestSession(client)
	err := session.SelectHall(context.Background(), 5)
	require.Error(t, err)

	view := session.Snapshot()
	assert.Equal(t, StateError, view.State)
	assert.Contains(t, view.ErrorMessage, "backend unavailable")
	assert.Nil(t, view.Week, "stale data must not survive a failed fetch")
}

func TestSelectHall_StaleResponseDiscarded(t *testing.T) {
	client := newFakeClient()
	client.seed(1, domain.NewDefaultWeeklySchedule(1).ReplaceDay(domain.Monday, domain.DayPatch{
		StartTime: ptr.Ptr(types.TimeString("08:30")),
	}))
	client.seed(2, domain.NewDefaultWeeklySchedule(2).ReplaceDay(domain.Monday, domain.DayPatch{
		StartTime: ptr.Ptr(types.TimeString("13:00")),
	}))

	entered := make(chan struct{})
	gate := make(chan struct{})
	client.onGet = func(hallID int64) {
		if hallID == 1 {
			close(entered)
			<-gate
		}
	}

	session, _ := newTestSession(client)

	done := make(chan error, 1)
	go func() {
		done <- session.SelectHall(context.Background(), 1)
	}()

	// Дожидаемся, пока запрос зала 1 повиснет в полете, и выбираем зал 2
	<-entered
	require.NoError(t, session.SelectHall(context.Background(), 2))

	// Отпускаем поздний ответ зала 1: он должен быть отброшен
	close(gate)
	require.ErrorIs(t, <-done, ErrSuperseded)

	view := session.Snapshot()
	assert.Equal(t, StateReady, view.State)
	assert.Equal(t, int64(2), view.HallID)
	assert.Equal(t, types.TimeString("13:00"), view.Week.Day(domain.Monday).StartTime,
		"hall 1 data must not overwrite hall 2 state")
}

func TestUpdateDay(t *testing.T) {
	client := newFakeClient()
	session, _ := newTestSession(client)
	require.NoError(t, session.SelectHall(context.Background(), 1))

	err := session.UpdateDay(domain.Tuesday, domain.DayPatch{
		StartTime: ptr.Ptr(types.TimeString("10:00")),
		EndTime:   ptr.Ptr(types.TimeString("13:00")),
	})
	require.NoError(t, err)

	view := session.Snapshot()
	assert.Equal(t, types.TimeString("10:00"), view.Week.Day(domain.Tuesday).StartTime)
	assert.Equal(t, 2, view.SlotsPerDay[1])
	assert.Equal(t, 2+6*11, view.TotalSlots)

	// Вне Ready правки недопустимы
	idle := NewSession(client, &fakeTokens{token: "x"}, newFakeClock(), nopLogger{})
	assert.ErrorIs(t, idle.UpdateDay(domain.Monday, domain.DayPatch{}), ErrNotReady)

	// Некорректный день недели
	assert.ErrorIs(t, session.UpdateDay(domain.Weekday(9), domain.DayPatch{}), ErrInvalidDay)
}

func TestSave_ValidationBlocksNetwork(t *testing.T) {
	client := newFakeClient()
	session, _ := newTestSession(client)
	require.NoError(t, session.SelectHall(context.Background(), 1))

	// Ломаем инвариант на среде
	require.NoError(t, session.UpdateDay(domain.Wednesday, domain.DayPatch{
		StartTime: ptr.Ptr(types.TimeString("20:00")),
		EndTime:   ptr.Ptr(types.TimeString("08:30")),
	}))

	err := session.Save(context.Background())
	require.Error(t, err)

	var violation domain.Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, domain.Wednesday, violation.Day)

	view := session.Snapshot()
	assert.Equal(t, StateReady, view.State, "rejected save must not enter Saving")
	assert.Contains(t, view.ErrorMessage, "Wednesday")
	assert.Zero(t, client.saveCalls, "save must be rejected before any network call")
}

func TestSave_SuccessShowsTransientNotice(t *testing.T) {
	client := newFakeClient()
	session, clock := newTestSession(client)
	require.NoError(t, session.SelectHall(context.Background(), 1))

	require.NoError(t, session.Save(context.Background()))

	view := session.Snapshot()
	assert.Equal(t, StateReady, view.State)
	assert.NotEmpty(t, view.Notice)
	assert.Empty(t, view.ErrorMessage)

	// Сервер присвоил идентификаторы записям
	assert.NotZero(t, view.Week.Day(domain.Monday).ID)

	// Уведомление гаснет через 4 секунды
	clock.Advance(noticeTTL + time.Millisecond)
	assert.Empty(t, session.Snapshot().Notice)
}

func TestSave_FailureKeepsEdits(t *testing.T) {
	client := newFakeClient()
	session, _ := newTestSession(client)
	require.NoError(t, session.SelectHall(context.Background(), 1))

	require.NoError(t, session.UpdateDay(domain.Friday, domain.DayPatch{
		StartTime: ptr.Ptr(types.TimeString("10:00")),
	}))

	client.saveErr = errors.New("boom")
	err := session.Save(context.Background())
	require.Error(t, err)

	view := session.Snapshot()
	assert.Equal(t, StateReady, view.State)
	assert.Contains(t, view.ErrorMessage, "boom")
	assert.Equal(t, types.TimeString("10:00"), view.Week.Day(domain.Friday).StartTime,
		"local edits must survive a failed save")
}

func TestSave_NoToken(t *testing.T) {
	client := newFakeClient()
	tokens := &fakeTokens{token: "test-token"}
	session := NewSession(client, tokens, newFakeClock(), nopLogger{})
	require.NoError(t, session.SelectHall(context.Background(), 1))

	// Токен истек между загрузкой и сохранением
	tokens.token = ""
	require.ErrorIs(t, session.Save(context.Background()), ErrNotAuthenticated)
	assert.Zero(t, client.saveCalls)
	assert.Equal(t, StateReady, session.Snapshot().State)
}

func TestApplyDefaultTemplate(t *testing.T) {
	client := newFakeClient()
	seeded := domain.NewDefaultWeeklySchedule(1)
	seeded = seeded.ReplaceDay(domain.Monday, domain.DayPatch{IsActive: ptr.Ptr(false)})
	seeded = seeded.ReplaceDay(domain.Tuesday, domain.DayPatch{
		StartTime: ptr.Ptr(types.TimeString("13:00")),
	})
	client.seed(1, seeded)

	session, clock := newTestSession(client)
	require.NoError(t, session.SelectHall(context.Background(), 1))

	require.NoError(t, session.ApplyDefaultTemplate())

	// Все несохраненные правки перезаписаны, включая неактивные дни
	view := session.Snapshot()
	assert.True(t, view.Week.Day(domain.Monday).IsActive)
	assert.Equal(t, domain.DefaultOpenTime, view.Week.Day(domain.Tuesday).StartTime)
	assert.NotEmpty(t, view.Notice)

	// Бэкенд не вызывался: изменение локально до явного сохранения
	assert.Zero(t, client.saveCalls)

	clock.Advance(noticeTTL + time.Millisecond)
	assert.Empty(t, session.Snapshot().Notice)
}

func TestSaveReloadRoundTrip(t *testing.T) {
	client := newFakeClient()
	session, _ := newTestSession(client)
	require.NoError(t, session.SelectHall(context.Background(), 9))

	require.NoError(t, session.UpdateDay(domain.Saturday, domain.DayPatch{IsActive: ptr.Ptr(false)}))
	require.NoError(t, session.UpdateDay(domain.Monday, domain.DayPatch{
		StartTime: ptr.Ptr(types.TimeString("08:30")),
		EndTime:   ptr.Ptr(types.TimeString("22:00")),
	}))
	require.NoError(t, session.Save(context.Background()))

	saved := session.Snapshot().Week

	// Перечитываем тот же зал свежей сессией
	reload, _ := newTestSession(client)
	require.NoError(t, reload.SelectHall(context.Background(), 9))
	loaded := reload.Snapshot().Week

	for d := domain.Monday; d <= domain.Sunday; d++ {
		assert.Equal(t, saved.Day(d).DayOfWeek, loaded.Day(d).DayOfWeek)
		assert.Equal(t, saved.Day(d).StartTime, loaded.Day(d).StartTime)
		assert.Equal(t, saved.Day(d).EndTime, loaded.Day(d).EndTime)
		assert.Equal(t, saved.Day(d).IsActive, loaded.Day(d).IsActive)
	}
}

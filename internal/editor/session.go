package editor

import (
	"context"
	"sync"
	"time"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
)

// noticeTTL время показа транзиентного уведомления об успехе
const noticeTTL = 4 * time.Second

// Сообщения, видимые пользователю
const (
	msgNotAuthenticated = "требуется вход в систему"
	msgDefaultApplied   = "применено стандартное расписание"
	msgSaved            = "расписание сохранено"
)

// Session сессия редактора недельного расписания одного администратора залов.
//
// Состояния: Idle -> Loading -> Ready (загрузка), Ready -> Saving -> Ready
// (сохранение), Error достижим из неудачной загрузки. Неудачное сохранение
// оставляет состояние Ready с сообщением об ошибке и сохраняет локальные
// правки, чтобы пользователь не потерял работу.
//
// Повторный выбор зала вытесняет незавершенные запросы: ответ для устаревшего
// выбора отбрасывается по счетчику поколений, а не по отмене запроса.
// Автоматических повторов нет: каждая ошибка терминальна для своей операции.
type Session struct {
	mu     sync.Mutex
	client ScheduleClient
	tokens TokenSource
	clock  Clock
	logger Logger

	state  State
	hallID int64
	gen    uint64
	week   *domain.WeeklySchedule

	errMsg       string
	notice       string
	noticeExpiry time.Time
}

// NewSession создает сессию редактора в состоянии Idle
func NewSession(client ScheduleClient, tokens TokenSource, clock Clock, logger Logger) *Session {
	if clock == nil {
		clock = RealClock{}
	}
	return &Session{
		client: client,
		tokens: tokens,
		clock:  clock,
		logger: logger,
		state:  StateIdle,
	}
}

// SelectHall переключает сессию на другой зал и загружает его расписание.
// Любой незавершенный запрос предыдущего выбора становится неактуальным:
// его ответ будет отброшен. Если у зала нет сохраненного расписания,
// подставляется стандартный шаблон (несохраненный — требуется явное
// сохранение).
//
// Блокируется на время сетевого запроса; хост вызывает его из горутины.
func (s *Session) SelectHall(ctx context.Context, hallID int64) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.hallID = hallID
	s.week = nil
	s.errMsg = ""
	s.clearNoticeLocked()

	// Предусловие аутентификации: без токена в сеть не ходим
	if s.tokens.Token() == "" {
		s.state = StateError
		s.errMsg = msgNotAuthenticated
		s.mu.Unlock()
		s.logger.Warn("SelectHall: no auth token, refusing to fetch hall=%d", hallID)
		return ErrNotAuthenticated
	}

	s.state = StateLoading
	s.mu.Unlock()

	s.logger.Info("SelectHall: fetching schedule for hall=%d", hallID)
	records, err := s.client.GetHallSchedule(ctx, hallID)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Ответ для вытесненного выбора: отбрасываем, состояние принадлежит
	// более новому выбору зала
	if gen != s.gen {
		s.logger.Info("SelectHall: discarding stale response for hall=%d", hallID)
		return ErrSuperseded
	}

	if err != nil {
		s.logger.Error("SelectHall: fetch failed for hall=%d: %v", hallID, err)
		s.state = StateError
		s.week = nil
		s.errMsg = err.Error()
		return err
	}

	if len(records) == 0 {
		s.logger.Info("SelectHall: hall=%d has no schedule, applying default template", hallID)
		s.week = domain.NewDefaultWeeklySchedule(hallID)
		s.state = StateReady
		return nil
	}

	week, err := domain.FromRecords(hallID, records)
	if err != nil {
		s.logger.Error("SelectHall: malformed schedule for hall=%d: %v", hallID, err)
		s.state = StateError
		s.week = nil
		s.errMsg = err.Error()
		return err
	}

	s.week = week
	s.state = StateReady
	s.logger.Info("SelectHall: schedule loaded for hall=%d", hallID)
	return nil
}

// UpdateDay применяет частичную правку к одному дню недели.
// Инварианты при правках не проверяются: промежуточные некорректные
// состояния допустимы до момента сохранения.
func (s *Session) UpdateDay(day domain.Weekday, patch domain.DayPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}
	if !day.IsValid() {
		return ErrInvalidDay
	}

	s.week = s.week.ReplaceDay(day, patch)
	// Новая операция очищает предыдущее сообщение об ошибке
	s.errMsg = ""
	return nil
}

// ApplyDefaultTemplate заменяет локальное состояние стандартным шаблоном
// (все дни 07:00-23:30). Деструктивно для несохраненных правок всех семи
// дней; бэкенд не вызывается — изменение останется локальным до сохранения.
func (s *Session) ApplyDefaultTemplate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}

	s.week = domain.NewDefaultWeeklySchedule(s.hallID)
	s.errMsg = ""
	s.setNoticeLocked(msgDefaultApplied)
	s.logger.Info("ApplyDefaultTemplate: hall=%d", s.hallID)
	return nil
}

// Save валидирует агрегат и отправляет все семь дней одним bulk replace.
// При нарушении инварианта сохранение прерывается до обращения к сети:
// первое нарушение с именем дня недели попадает в слот сообщения, состояние
// остается Ready. При ошибке сети состояние тоже остается Ready и локальные
// правки сохраняются.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()

	if s.state != StateReady {
		s.mu.Unlock()
		return ErrNotReady
	}
	if s.week == nil {
		s.mu.Unlock()
		return ErrNoHallSelected
	}

	// Предусловие аутентификации: без токена в сеть не ходим
	if s.tokens.Token() == "" {
		s.errMsg = msgNotAuthenticated
		s.mu.Unlock()
		s.logger.Warn("Save: no auth token, refusing to save hall=%d", s.hallID)
		return ErrNotAuthenticated
	}

	// Валидация только на сохранении, не на каждой правке
	if violations := s.week.Validate(); len(violations) > 0 {
		s.errMsg = violations[0].Message
		s.mu.Unlock()
		s.logger.Warn("Save: validation failed: %s", violations[0].Message)
		return violations[0]
	}

	s.gen++
	gen := s.gen
	hallID := s.hallID
	records := s.week.Records()
	s.state = StateSaving
	s.errMsg = ""
	s.mu.Unlock()

	s.logger.Info("Save: saving schedule for hall=%d", hallID)
	persisted, err := s.client.SaveHallSchedule(ctx, hallID, records)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Сохранение вытеснено выбором другого зала: результат не актуален
	if gen != s.gen {
		s.logger.Info("Save: discarding stale save result for hall=%d", hallID)
		return ErrSuperseded
	}

	if err != nil {
		// Error-flagged Ready: сообщение показано, правки сохранены
		s.logger.Error("Save: failed for hall=%d: %v", hallID, err)
		s.state = StateReady
		s.errMsg = err.Error()
		return err
	}

	week, convErr := domain.FromRecords(hallID, persisted)
	if convErr != nil {
		s.logger.Error("Save: malformed server response for hall=%d: %v", hallID, convErr)
		s.state = StateReady
		s.errMsg = convErr.Error()
		return convErr
	}

	// Сервер мог переназначить идентификаторы записей
	s.week = week
	s.state = StateReady
	s.setNoticeLocked(msgSaved)
	s.logger.Info("Save: schedule saved for hall=%d", hallID)
	return nil
}

// Snapshot возвращает неизменяемый снимок сессии для отрисовки.
// Производные значения (слоты по дням, сумма, активные дни) пересчитываются
// на каждом снимке, так что любая правка сразу отражается в них.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		State:        s.state,
		HallID:       s.hallID,
		ErrorMessage: s.errMsg,
	}

	// Уведомление гаснет само через noticeTTL
	if s.notice != "" && s.clock.Now().Before(s.noticeExpiry) {
		view.Notice = s.notice
	}

	if s.week != nil {
		weekCopy := *s.week
		view.Week = &weekCopy
		view.TotalSlots = weekCopy.TotalSlots()
		view.ActiveDays = weekCopy.ActiveDayCount()
		for i := range weekCopy.Days {
			view.SlotsPerDay[i] = weekCopy.Days[i].Slots()
		}
	}

	return view
}

func (s *Session) setNoticeLocked(text string) {
	s.notice = text
	s.noticeExpiry = s.clock.Now().Add(noticeTTL)
}

func (s *Session) clearNoticeLocked() {
	s.notice = ""
	s.noticeExpiry = time.Time{}
}

package editor

import "github.com/hallhub/SHB-ScheduleService/internal/domain"

// State состояние сессии редактора
type State string

const (
	// StateIdle зал еще не выбран
	StateIdle State = "idle"
	// StateLoading идет загрузка расписания выбранного зала
	StateLoading State = "loading"
	// StateReady расписание загружено и доступно для правок
	StateReady State = "ready"
	// StateSaving идет сохранение; правки недоступны до завершения
	StateSaving State = "saving"
	// StateError загрузка завершилась ошибкой; данных нет
	StateError State = "error"
)

// View неизменяемый снимок сессии для отрисовки хостом.
// Week — копия агрегата; правки через снимок невозможны.
type View struct {
	State  State
	HallID int64
	Week   *domain.WeeklySchedule

	// ErrorMessage единственный слот сообщения об ошибке:
	// новая операция очищает предыдущее сообщение
	ErrorMessage string

	// Notice транзиентное уведомление об успехе; пустая строка после истечения
	Notice string

	// Производные значения для отображения
	SlotsPerDay [domain.DaysPerWeek]int
	TotalSlots  int
	ActiveDays  int
}

package get_schedule_overview

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMalformedSchedule возвращается, когда сохраненное расписание неполно
	// (нет ровно семи дней) — такое состояние не должно возникать при записи
	// через этот сервис
	ErrMalformedSchedule = errors.New("stored schedule is malformed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

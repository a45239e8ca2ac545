package schedule

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден в справочнике
	ErrHallNotFound = errors.New("hall not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером зала
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных данных расписания.
	// Текст ошибки называет день недели с нарушенным инвариантом.
	ErrInvalidInput = errors.New("invalid schedule data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

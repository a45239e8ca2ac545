package editor

import "errors"

var (
	// ErrNotAuthenticated возвращается, когда у сессии нет bearer-токена.
	// Сеть при этом не трогается.
	ErrNotAuthenticated = errors.New("editor: not authenticated")

	// ErrNoHallSelected возвращается для операций, требующих выбранного зала
	ErrNoHallSelected = errors.New("editor: no hall selected")

	// ErrNotReady возвращается, когда операция недопустима в текущем состоянии
	// (например, сохранение во время загрузки)
	ErrNotReady = errors.New("editor: session is not ready")

	// ErrValidation возвращается, когда сохранение отклонено локальной валидацией
	ErrValidation = errors.New("editor: schedule validation failed")

	// ErrInvalidDay возвращается при обращении к несуществующему дню недели
	ErrInvalidDay = errors.New("editor: invalid day of week")

	// ErrSuperseded возвращается, когда операция была вытеснена выбором другого зала
	ErrSuperseded = errors.New("editor: superseded by a newer hall selection")
)

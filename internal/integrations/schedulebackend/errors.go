package schedulebackend

import "errors"

var (
	// ErrNoToken возвращается, когда у сессии нет bearer-токена.
	// Запрос в сеть при этом не выполняется.
	ErrNoToken = errors.New("schedulebackend client: no auth token")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен
	ErrUnauthorized = errors.New("schedulebackend client: unauthorized")

	// ErrForbidden возвращается, когда у пользователя нет прав на зал
	ErrForbidden = errors.New("schedulebackend client: forbidden")

	// ErrBadRequest возвращается, когда бэкенд отклонил данные расписания
	ErrBadRequest = errors.New("schedulebackend client: rejected by server")

	// ErrInternal возвращается при транспортных и внутренних ошибках клиента
	ErrInternal = errors.New("schedulebackend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("schedulebackend client: invalid response")
)

package hallservice

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден в справочнике
	ErrHallNotFound = errors.New("hall not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hallservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("hallservice client: invalid response")
)

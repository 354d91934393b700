package holidayservice

import "errors"

var (
	// ErrCountryNotSupported возвращается, когда сервис не знает указанную страну
	ErrCountryNotSupported = errors.New("holidayservice client: country not supported")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidayservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("holidayservice client: invalid response")
)

package create_booking

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда выбранный час уже занят активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrNoDataReturned возвращается, когда запись бронирования не была сохранена
	ErrNoDataReturned = errors.New("no data returned")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

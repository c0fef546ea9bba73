package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при неполном запросе (пустое имя клиента,
	// не указана дата или время)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другим
	// бронированием; повторять тот же запрос бессмысленно, клиенту следует
	// перечитать доступность и выбрать другой слот
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

package get_availability

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	// (недоступность хранилища и прочие инфраструктурные сбои)
	ErrInternal = errors.New("get_availability: internal error")
)

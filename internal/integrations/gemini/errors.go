package gemini

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gemini client: internal error")

	// ErrGenerationFailed возвращается, когда модель не смогла сгенерировать ответ
	ErrGenerationFailed = errors.New("gemini client: generation failed")

	// ErrEmptyResponse возвращается, когда модель вернула пустой ответ
	ErrEmptyResponse = errors.New("gemini client: empty response")
)

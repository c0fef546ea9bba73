package chat

import "errors"

var (
	// ErrEmptyMessage возвращается при пустом сообщении клиента
	ErrEmptyMessage = errors.New("chat: message is empty")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("chat: internal error")
)

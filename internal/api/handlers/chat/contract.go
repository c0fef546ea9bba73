package chat

import (
	"context"

	chatUC "github.com/m04kA/BRB-BookingService/internal/usecase/chat"
)

type ChatUseCase interface {
	Execute(ctx context.Context, req *chatUC.Request) (*chatUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_booking

import (
	"time"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName string           // Имя клиента
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время начала слота (например, "14:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            // ID созданного бронирования
	CustomerName string           // Имя клиента
	Date         time.Time        // Дата бронирования
	StartTime    types.TimeString // Время начала
	CreatedAt    time.Time        // Время создания записи
}

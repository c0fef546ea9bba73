package get_availability

import (
	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Request модель запроса доступности слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD (как пришла от клиента)
}

// Response модель ответа со списком слотов и их статусами
type Response struct {
	Date  string // Дата, на которую запрашивались слоты
	Slots []Slot // Все слоты сетки с вычисленными статусами
}

// Slot слот сетки расписания со статусом
type Slot struct {
	StartTime types.TimeString
	Status    domain.SlotStatus
}

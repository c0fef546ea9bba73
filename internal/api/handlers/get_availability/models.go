package get_availability

import (
	getAvailability "github.com/m04kA/BRB-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot слот сетки со статусом
type Slot struct {
	Time   string `json:"time"`   // "14:00"
	Status string `json:"status"` // "available" | "booked"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:   slot.StartTime.String(),
			Status: string(slot.Status),
		}
	}

	return &AvailabilityResponse{
		Date:  resp.Date,
		Slots: slots,
	}
}

package domain

import (
	"time"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Booking represents a committed reservation of a single slot
// Инвариант системы: на пару (BookingDate, StartTime) существует не более
// одной записи. Инвариант обеспечивается уникальным индексом в БД, а не
// проверками в коде.
type Booking struct {
	ID           int64
	CustomerName string
	BookingDate  time.Time
	StartTime    types.TimeString

	CreatedAt time.Time
}

// Key возвращает ключ слота "YYYY-MM-DD HH:MM", под которым запись
// конкурирует с другими бронированиями
func (b *Booking) Key() string {
	return b.BookingDate.Format(DateFormat) + " " + b.StartTime.String()
}

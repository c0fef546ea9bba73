package domain

// SlotStatus статус слота в выдаче доступности
// Слоты не хранятся в БД: статус вычисляется на лету как проекция таблицы
// бронирований на сетку расписания.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

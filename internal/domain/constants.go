package domain

// Расписание работы барбершопа
// Понедельник–суббота, воскресенье — выходной. Сетка слотов фиксированная:
// от OpenTime до CloseTime включительно с шагом SlotDurationMinutes.
const (
	OpenTime            = "09:00"
	CloseTime           = "18:30"
	SlotDurationMinutes = 30
)

// Ограничения входных данных
const (
	MaxCustomerNameLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

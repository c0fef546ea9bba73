package schedule

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Пакет schedule — чистая сетка слотов без I/O.
// Детерминированно выводит список кандидатов на бронирование для даты.

// IsOpenDay возвращает true, если барбершоп работает в этот день недели
func IsOpenDay(date time.Time) bool {
	return date.Weekday() != time.Sunday
}

// CandidateSlots возвращает упорядоченный список всех слотов на дату
// Для воскресенья и для строки, которая не парсится как YYYY-MM-DD,
// возвращает пустой список — исторически мягкое поведение, читающая сторона
// трактует его как "нет доступных слотов", а не как ошибку.
func CandidateSlots(dateStr string) []types.TimeString {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return []types.TimeString{}
	}
	return CandidateSlotsForDate(date)
}

// CandidateSlotsForDate возвращает сетку слотов для уже распарсенной даты
// От OpenTime до CloseTime включительно с шагом SlotDurationMinutes.
func CandidateSlotsForDate(date time.Time) []types.TimeString {
	if !IsOpenDay(date) {
		return []types.TimeString{}
	}

	// Границы сетки — константы домена, ошибки парсинга здесь невозможны
	openTime, _ := types.NewTimeStringFromString(domain.OpenTime)
	closeTime, _ := types.NewTimeStringFromString(domain.CloseTime)

	slots := make([]types.TimeString, 0)
	current := openTime

	// CloseTime включается в сетку: последний слот начинается в 18:30
	for !current.IsAfter(closeTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil || !next.IsAfter(current) {
			// Перешли через полночь — сетка закончилась
			break
		}
		current = next
	}

	return slots
}

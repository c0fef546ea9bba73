package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// fallbackReply возвращается клиенту, когда генеративная модель недоступна
// Исход не считается ошибкой HTTP-уровня: клиент получает осмысленный текст.
const fallbackReply = "Извините, у меня временные проблемы со связью. Попробуйте, пожалуйста, позже."

// UseCase use case чат-ассистента
//
// Ассистент — периферийный потребитель ядра: читает бронирования на сегодня,
// собирает из них контекстный промпт и отдает его генеративной модели.
// Обратного потока нет — ответ модели никогда не приводит к записи.
type UseCase struct {
	bookingRepo  BookingRepository
	generator    ReplyGenerator
	business     BusinessInfo
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	generator ReplyGenerator,
	business BusinessInfo,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		generator:    generator,
		business:     business,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case ответа на вопрос клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Message) == "" {
		uc.logger.Warn("Chat: empty message")
		return nil, ErrEmptyMessage
	}

	// Бронирования хранятся под полуночью даты (booking_date DATE),
	// поэтому текущее время усекается до даты, иначе ключ не совпадет
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	todayStr := today.Format(domain.DateFormat)

	uc.logger.Info("Chat: building context for date=%s", todayStr)

	// Контекст ассистента — только чтение бронирований на сегодня
	bookings, err := uc.bookingRepo.ListByDate(ctx, today)
	if err != nil {
		uc.logger.Error("Chat: failed to list today's bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	prompt := uc.buildPrompt(todayStr, bookings, req.Message)

	reply, err := uc.generator.GenerateReply(ctx, prompt)
	if err != nil {
		// Недоступность модели не эскалируем: отдаем заглушку
		uc.logger.Error("Chat: generation failed, using fallback reply: %v", err)
		return &Response{Reply: fallbackReply}, nil
	}

	uc.logger.Info("Chat: reply generated, length=%d", len(reply))

	return &Response{Reply: reply}, nil
}

// buildPrompt собирает контекстный промпт для модели
func (uc *UseCase) buildPrompt(todayStr string, bookings []*domain.Booking, message string) string {
	bookedTimes := make([]string, 0, len(bookings))
	for _, b := range bookings {
		bookedTimes = append(bookedTimes, b.StartTime.String())
	}

	bookedLine := "пока нет ни одной записи"
	if len(bookedTimes) > 0 {
		bookedLine = strings.Join(bookedTimes, ", ")
	}

	var prices strings.Builder
	for i, svc := range uc.business.Services {
		if i > 0 {
			prices.WriteString(", ")
		}
		fmt.Fprintf(&prices, "%s — %.0f", svc.Name, svc.Price)
	}

	return fmt.Sprintf(`Ты виртуальный ассистент салона «%s». Отвечай дружелюбно и по делу.
Сегодняшняя дата: %s.
Прайс-лист: %s.
Салон работает с понедельника по субботу, с %s до %s. Воскресенье — выходной.
Занятые времена на СЕГОДНЯ (%s): %s.

Ответь на вопрос клиента: %q

Если клиент спрашивает про свободные времена на сегодня, выведи их из списка занятых.
Если клиент спрашивает про другую дату, объясни, что ты видишь только сегодняшнее
расписание, а для других дат нужно воспользоваться календарем на странице.`,
		uc.business.Name, todayStr, prices.String(),
		domain.OpenTime, domain.CloseTime,
		todayStr, bookedLine, message)
}

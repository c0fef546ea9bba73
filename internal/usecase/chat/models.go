package chat

// Request модель запроса к чат-ассистенту
type Request struct {
	Message string // Свободный текст вопроса клиента
}

// Response модель ответа чат-ассистента
type Response struct {
	Reply string // Текст ответа
}

// BusinessInfo данные бизнеса для контекста промпта
type BusinessInfo struct {
	Name     string
	Services []ServicePrice
}

// ServicePrice позиция прайс-листа
type ServicePrice struct {
	Name  string
	Price float64
}

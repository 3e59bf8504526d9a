package notifications

import "github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"

// Типы сообщений
const (
	TypeSimple  = "simple"
	TypeAction  = "action"
	TypeDismiss = "dismiss"
)

// SimpleAutoCloseMs время показа простого уведомления на клиенте
const SimpleAutoCloseMs = 6000

// Message уведомление, отправляемое клиенту
type Message struct {
	Type        string          `json:"type"`
	ID          string          `json:"id"`
	Text        string          `json:"text,omitempty"`
	Severity    domain.Severity `json:"severity,omitempty"`
	ActionLabel string          `json:"actionLabel,omitempty"`
	AutoCloseMs int             `json:"autoCloseMs,omitempty"`
}

// inbound ответ клиента: нажатие кнопки действия или закрытие уведомления
type inbound struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

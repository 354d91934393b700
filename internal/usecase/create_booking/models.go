package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// Outcome values reported to MetricsRecorder
const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name        string     // Имя клиента
	Email       string     // Email клиента
	Phone       string     // Телефон клиента
	PickupAt    time.Time  // Дата и время выдачи (начало часа)
	OrderDate   *time.Time // Дата заказа (опционально)
	OrderNumber string     // Номер заказа
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}

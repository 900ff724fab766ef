package submit_booking

import (
	"context"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/integrations/centralservice"
)

// SessionRepository интерфейс хранилища сессий мастера
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.WizardSession, error)
	Update(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error)
}

// HandoffRepository интерфейс хранилища записей передачи на приёмку
type HandoffRepository interface {
	Create(ctx context.Context, h *domain.ReceptionHandoff) (*domain.ReceptionHandoff, error)
}

// CentralServiceClient интерфейс клиента центрального сервиса
type CentralServiceClient interface {
	CreateBooking(ctx context.Context, req *centralservice.CreateBookingRequest) (*centralservice.CreateBookingResponse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для записи метрик отправок.
// Может быть nil, если метрики выключены.
type MetricsRecorder interface {
	IncSubmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

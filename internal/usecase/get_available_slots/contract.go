package get_available_slots

import (
	"context"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// SessionRepository интерфейс хранилища сессий мастера
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.WizardSession, error)
	Update(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error)
}

// CentralServiceClient интерфейс клиента центрального сервиса
type CentralServiceClient interface {
	GetDaySlots(ctx context.Context, centerID int64, date string) ([]domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

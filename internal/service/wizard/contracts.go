package wizard

import (
	"context"
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// SessionRepository интерфейс хранилища сессий мастера бронирования
type SessionRepository interface {
	Create(ctx context.Context, s *domain.WizardSession) error
	Get(ctx context.Context, id string) (*domain.WizardSession, error)
	Update(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error)
	Delete(ctx context.Context, id string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

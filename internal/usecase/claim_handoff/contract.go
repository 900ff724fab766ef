package claim_handoff

import (
	"context"
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// HandoffRepository интерфейс хранилища записей передачи на приёмку
type HandoffRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.ReceptionHandoff, error)
	Claim(ctx context.Context, bookingID, staffUserID int64, claimedAt time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

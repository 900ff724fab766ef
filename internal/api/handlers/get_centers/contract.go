package get_centers

import (
	"context"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

type RefDataService interface {
	Centers(ctx context.Context) ([]domain.Center, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package refdata

import (
	"context"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/integrations/centralservice"
)

// CentralServiceClient интерфейс клиента центрального сервиса
// для справочных данных
type CentralServiceClient interface {
	GetCenters(ctx context.Context) ([]domain.Center, error)
	GetMaintenancePackages(ctx context.Context) ([]domain.MaintenancePackage, error)
	GetIssuesByOfferType(ctx context.Context, offerTypeID int64) ([]centralservice.Issue, error)
	GetSpareParts(ctx context.Context) ([]domain.SparePart, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

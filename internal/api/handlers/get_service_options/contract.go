package get_service_options

import (
	"context"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/integrations/centralservice"
)

type RefDataService interface {
	MaintenancePackages(ctx context.Context) ([]domain.MaintenancePackage, error)
	IssuesByOfferType(ctx context.Context, offerTypeID int64) ([]centralservice.Issue, error)
	SpareParts(ctx context.Context) ([]domain.SparePart, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

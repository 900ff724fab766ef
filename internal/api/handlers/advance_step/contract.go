package advance_step

import (
	"context"

	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard/models"
)

type WizardService interface {
	Advance(ctx context.Context, req *models.AdvanceRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

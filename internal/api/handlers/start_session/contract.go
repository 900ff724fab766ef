package start_session

import (
	"context"

	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard/models"
)

type WizardService interface {
	StartSession(ctx context.Context, req *models.StartSessionRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

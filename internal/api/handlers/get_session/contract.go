package get_session

import (
	"context"

	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard/models"
)

type WizardService interface {
	Get(ctx context.Context, sessionID string, userID int64) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package close_session

import "context"

type WizardService interface {
	Close(ctx context.Context, sessionID string, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

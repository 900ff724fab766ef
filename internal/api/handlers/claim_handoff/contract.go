package claim_handoff

import (
	"context"

	claimHandoff "github.com/no-solace/EVSC-BookingFlow/internal/usecase/claim_handoff"
)

type ClaimHandoffUseCase interface {
	Execute(ctx context.Context, req *claimHandoff.Request) (*claimHandoff.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

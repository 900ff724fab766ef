package claim_handoff

import (
	"context"
	"errors"
	"fmt"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	handoffRepo "github.com/no-solace/EVSC-BookingFlow/internal/infra/storage/handoff"
)

// UseCase use case получения бронирования сотрудником приёмки.
// Запись забирается ровно один раз: повторный claim возвращает конфликт.
type UseCase struct {
	handoffRepo  HandoffRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(handoffRepo HandoffRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		handoffRepo:  handoffRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет claim handoff-записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ClaimHandoff: booking=%d, staff=%d", req.BookingID, req.StaffUserID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.StaffUserID <= 0 {
		return nil, fmt.Errorf("%w: staffUserID must be positive", ErrInvalidInput)
	}

	claimedAt := uc.timeProvider.Now()
	var result *domain.ReceptionHandoff

	// Claim и чтение итоговой записи в одной транзакции:
	// строка блокируется через FOR UPDATE внутри GetByBookingID
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.handoffRepo.Claim(txCtx, req.BookingID, req.StaffUserID, claimedAt); err != nil {
			return err
		}

		claimed, err := uc.handoffRepo.GetByBookingID(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		result = claimed
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, handoffRepo.ErrHandoffNotFound):
			uc.logger.Warn("ClaimHandoff: booking=%d handoff not found", req.BookingID)
			return nil, ErrHandoffNotFound
		case errors.Is(err, handoffRepo.ErrAlreadyClaimed):
			uc.logger.Warn("ClaimHandoff: booking=%d already claimed", req.BookingID)
			return nil, ErrAlreadyClaimed
		default:
			uc.logger.Error("ClaimHandoff: booking=%d failed: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("ClaimHandoff: booking=%d claimed by staff=%d", req.BookingID, req.StaffUserID)
	return &Response{Handoff: result, ClaimedAt: claimedAt}, nil
}

package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	handoffRepo "github.com/no-solace/EVSC-BookingFlow/internal/infra/storage/handoff"
	sessionRepo "github.com/no-solace/EVSC-BookingFlow/internal/infra/storage/session"
	"github.com/no-solace/EVSC-BookingFlow/internal/integrations/centralservice"
	"github.com/no-solace/EVSC-BookingFlow/pkg/ptr"
)

// maxCASRetries количество повторов compare-and-swap при конкурентном
// изменении сессии
const maxCASRetries = 3

// UseCase use case отправки бронирования в центральный сервис.
//
// Единственный state-changing вызов наружу во всём потоке мастера.
// Черновик сессии мутируется только после успешного ответа: при любом
// отказе сессия остаётся на шаге подтверждения нетронутой, и пользователь
// может исправить данные и повторить.
type UseCase struct {
	sessions    SessionRepository
	handoffRepo HandoffRepository
	client      CentralServiceClient
	txManager   TransactionManager
	metrics     MetricsRecorder
	validate    *validator.Validate
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	handoffRepo HandoffRepository,
	client CentralServiceClient,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:    sessions,
		handoffRepo: handoffRepo,
		client:      client,
		txManager:   txManager,
		metrics:     metrics,
		validate:    newValidator(),
		logger:      logger,
	}
}

// Execute выполняет отправку бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s, user=%d", req.SessionID, req.UserID)

	// 1. Валидация контактных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		uc.incSubmission("invalid_input")
		return nil, err
	}

	// 2. Загружаем сессию и проверяем владельца
	session, err := uc.loadSession(ctx, req.SessionID, req.UserID)
	if err != nil {
		return nil, err
	}

	// 3. Отправка разрешена только с шага подтверждения
	if session.CurrentStep != domain.StepConfirmBooking {
		uc.logger.Warn("SubmitBooking: session=%s is on step %s, not on confirmation",
			req.SessionID, session.CurrentStep)
		return nil, ErrNotOnConfirmStep
	}

	// 4. Собираем полный черновик локально: контакты попадают в сессию
	// только вместе с успешным результатом
	draft := session.Draft
	draft.CustomerInfo = &domain.CustomerInfo{
		Name:    strings.TrimSpace(req.CustomerName),
		Phone:   stripWhitespace(req.CustomerPhone),
		Email:   strings.TrimSpace(req.CustomerEmail),
		Address: strings.TrimSpace(req.CustomerAddress),
	}
	draft.Notes = req.Notes

	if err := validateDraftComplete(&draft); err != nil {
		uc.logger.Warn("SubmitBooking: session=%s draft incomplete: %v", req.SessionID, err)
		uc.incSubmission("incomplete_draft")
		return nil, err
	}

	// 5. Создаем бронирование в центральном сервисе
	bookingReq := buildBookingRequest(&draft)
	created, err := uc.client.CreateBooking(ctx, bookingReq)
	if err != nil {
		return nil, uc.mapUpstreamError(req.SessionID, err)
	}

	uc.logger.Info("SubmitBooking: session=%s booking id=%d created", req.SessionID, created.BookingID)

	// 6. Фиксируем результат в сессии: черновик с контактами, статус
	// pending_payment и переход на финальный шаг
	if err := uc.commitSession(ctx, req, &draft, created.BookingID); err != nil {
		// Бронирование уже создано: ошибку фиксации не скрываем, но и
		// не откатываем ничего - пользователь увидит бронирование в списке
		uc.logger.Error("SubmitBooking: session=%s booking id=%d created but session commit failed: %v",
			req.SessionID, created.BookingID, err)
		uc.incSubmission("commit_failed")
		return nil, err
	}

	// 7. Записываем handoff для приёмки. Сбой не фатален: бронирование
	// уже существует, запись можно восстановить по данным центрального сервиса
	uc.storeHandoff(ctx, req.UserID, &draft, created.BookingID)

	uc.incSubmission("ok")

	return &Response{
		BookingID:   created.BookingID,
		Status:      domain.StatusPendingPayment,
		CurrentStep: domain.StepBookingSuccess,
	}, nil
}

// buildBookingRequest собирает тело POST /bookings из черновика
func buildBookingRequest(draft *domain.BookingDraft) *centralservice.CreateBookingRequest {
	svc := draft.Service
	return &centralservice.CreateBookingRequest{
		EVID:               draft.ResolveVehicleID(),
		CenterID:           draft.CenterID(),
		BookingDate:        draft.Date,
		BookingTime:        draft.TimeSlot.WithSeconds(),
		CustomerName:       draft.CustomerInfo.Name,
		CustomerPhone:      draft.CustomerInfo.Phone,
		CustomerEmail:      draft.CustomerInfo.Email,
		CustomerAddress:    draft.CustomerInfo.Address,
		OfferTypeID:        svc.OfferType.BackendID(),
		PackageID:          svc.PackageID(),
		ProblemDescription: svc.ProblemDescription,
		Notes:              draft.Notes,
	}
}

// commitSession применяет успешный результат к сессии через compare-and-swap
func (uc *UseCase) commitSession(ctx context.Context, req *Request, draft *domain.BookingDraft, bookingID int64) error {
	for attempt := 0; attempt < maxCASRetries; attempt++ {
		session, err := uc.loadSession(ctx, req.SessionID, req.UserID)
		if err != nil {
			return err
		}

		session.Draft = *draft
		session.Draft.BookingID = &bookingID
		session.Draft.Status = domain.StatusPendingPayment
		session.CurrentStep = domain.StepBookingSuccess

		if _, err := uc.sessions.Update(ctx, session); err != nil {
			if errors.Is(err, sessionRepo.ErrVersionConflict) {
				continue
			}
			return uc.mapRepoError(err)
		}
		return nil
	}

	return fmt.Errorf("%w: failed to commit session after %d attempts", ErrInternal, maxCASRetries)
}

// storeHandoff сохраняет запись передачи бронирования на приёмку
func (uc *UseCase) storeHandoff(ctx context.Context, userID int64, draft *domain.BookingDraft, bookingID int64) {
	bookingDate, err := time.Parse(domain.DateFormat, draft.Date)
	if err != nil {
		uc.logger.Error("SubmitBooking: booking id=%d invalid draft date %q: %v", bookingID, draft.Date, err)
		return
	}

	h := &domain.ReceptionHandoff{
		BookingID:     bookingID,
		UserID:        userID,
		CenterID:      draft.CenterID(),
		VehicleID:     draft.ResolveVehicleID(),
		CustomerName:  draft.CustomerInfo.Name,
		CustomerPhone: draft.CustomerInfo.Phone,
		OfferTypeID:   draft.Service.OfferType.BackendID(),
		PackageID:     draft.Service.PackageID(),
		BookingDate:   bookingDate,
		BookingTime:   draft.TimeSlot,
	}

	if draft.Notes != "" {
		h.Notes = ptr.Ptr(draft.Notes)
	}
	if draft.CustomerInfo.Email != "" {
		h.CustomerEmail = ptr.Ptr(draft.CustomerInfo.Email)
	}
	if draft.CustomerInfo.Address != "" {
		h.CustomerAddress = ptr.Ptr(draft.CustomerInfo.Address)
	}
	if draft.Service.ProblemDescription != "" {
		h.ProblemDescription = ptr.Ptr(draft.Service.ProblemDescription)
	}
	if vehicle := draft.VehicleData; vehicle != nil {
		if vehicle.Model != "" {
			h.VehicleModel = ptr.Ptr(vehicle.Model)
		}
		if vehicle.LicensePlate != "" {
			h.LicensePlate = ptr.Ptr(vehicle.LicensePlate)
		}
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := uc.handoffRepo.Create(txCtx, h)
		return err
	})

	switch {
	case err == nil:
		uc.logger.Info("SubmitBooking: handoff stored for booking id=%d", bookingID)
	case errors.Is(err, handoffRepo.ErrDuplicateBooking):
		// Повторная отправка того же бронирования, запись уже есть
		uc.logger.Warn("SubmitBooking: handoff for booking id=%d already exists", bookingID)
	default:
		uc.logger.Error("SubmitBooking: failed to store handoff for booking id=%d: %v", bookingID, err)
	}
}

// mapUpstreamError переводит ошибки центрального сервиса в ошибки usecase
func (uc *UseCase) mapUpstreamError(sessionID string, err error) error {
	switch {
	case errors.Is(err, centralservice.ErrDuplicateBooking):
		uc.logger.Warn("SubmitBooking: session=%s rejected: duplicate booking", sessionID)
		uc.incSubmission("duplicate")
		return ErrDuplicateBooking

	case errors.Is(err, centralservice.ErrVehicleInService):
		uc.logger.Warn("SubmitBooking: session=%s rejected: vehicle in service", sessionID)
		uc.incSubmission("vehicle_in_service")
		return ErrVehicleInService

	default:
		var domainErr *centralservice.DomainError
		if errors.As(err, &domainErr) {
			uc.logger.Warn("SubmitBooking: session=%s rejected: %s", sessionID, domainErr.Message)
			uc.incSubmission("rejected")
			return fmt.Errorf("%w: %s", ErrUpstreamRejected, domainErr.Message)
		}

		uc.logger.Error("SubmitBooking: session=%s upstream call failed: %v", sessionID, err)
		uc.incSubmission("upstream_error")
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
}

func (uc *UseCase) loadSession(ctx context.Context, sessionID string, userID int64) (*domain.WizardSession, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, uc.mapRepoError(err)
	}
	if session.UserID != userID {
		return nil, ErrAccessDenied
	}
	return session, nil
}

func (uc *UseCase) mapRepoError(err error) error {
	switch {
	case errors.Is(err, sessionRepo.ErrSessionNotFound), errors.Is(err, sessionRepo.ErrSessionExpired):
		return ErrSessionNotFound
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func (uc *UseCase) incSubmission(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncSubmission(outcome)
	}
}

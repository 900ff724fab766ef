package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	sessionRepo "github.com/no-solace/EVSC-BookingFlow/internal/infra/storage/session"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard/models"
)

// Service сервис жизненного цикла сессий мастера бронирования.
// Владеет последовательностью шагов: переходы вперёд идут только через
// Advance с проверкой полноты текущего шага, назад - через Retreat.
type Service struct {
	sessions     SessionRepository
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса мастера
func NewService(sessions SessionRepository, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// StartSession открывает новую сессию мастера на первом шаге.
// Переданный автомобиль предзаполняет черновик и переживает Reset.
func (s *Service) StartSession(ctx context.Context, req *models.StartSessionRequest) (*models.SessionResponse, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	session := &domain.WizardSession{
		ID:                 uuid.NewString(),
		UserID:             req.UserID,
		CurrentStep:        domain.StepSelectCenter,
		Draft:              domain.NewBookingDraft(req.PreselectedVehicle),
		PreselectedVehicle: req.PreselectedVehicle,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
		ExpiresAt:          now.Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("StartSession: failed to create session for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: StartSession - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("StartSession: session=%s opened for user=%d", session.ID, req.UserID)
	return models.FromDomainSession(session), nil
}

// Get возвращает снимок сессии
func (s *Service) Get(ctx context.Context, sessionID string, userID int64) (*models.SessionResponse, error) {
	session, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSession(session), nil
}

// Advance вливает patch в черновик и переводит сессию на следующий шаг.
// Переход разрешается только после того, как текущий шаг укомплектован:
// каждый шаг отвечает за валидацию своих полей. Переход 4→5 выполняется
// исключительно через отправку бронирования, не через Advance.
func (s *Service) Advance(ctx context.Context, req *models.AdvanceRequest) (*models.SessionResponse, error) {
	session, err := s.load(ctx, req.SessionID, req.UserID)
	if err != nil {
		return nil, err
	}

	if session.CurrentStep.IsTerminal() {
		s.logger.Warn("Advance: session=%s is on terminal step", req.SessionID)
		return nil, ErrTerminalStep
	}
	if session.CurrentStep == domain.StepConfirmBooking {
		s.logger.Warn("Advance: session=%s attempted 4->5 advance outside submission", req.SessionID)
		return nil, ErrAdvanceNotAllowed
	}

	// Merge-only: patch только добавляет/перезаписывает ключи,
	// ничего не очищая
	session.Draft.Merge(req.Patch)

	if err := s.validateStepComplete(session); err != nil {
		s.logger.Warn("Advance: session=%s step=%s incomplete: %v", req.SessionID, session.CurrentStep, err)
		return nil, err
	}

	next := session.CurrentStep + 1
	if !domain.CanTransition(session.CurrentStep, next) {
		return nil, ErrAdvanceNotAllowed
	}
	session.CurrentStep = next

	updated, err := s.sessions.Update(ctx, session)
	if err != nil {
		return nil, s.mapRepoError("Advance", req.SessionID, err)
	}

	s.logger.Info("Advance: session=%s moved to step=%s", req.SessionID, updated.CurrentStep)
	return models.FromDomainSession(updated), nil
}

// Retreat возвращает сессию на предыдущий шаг.
// Разрешён только между шагами 2 и 4: с первого шага отступать некуда,
// а терминальный шаг назад не покидается.
func (s *Service) Retreat(ctx context.Context, sessionID string, userID int64) (*models.SessionResponse, error) {
	session, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	if session.CurrentStep <= domain.StepSelectCenter || session.CurrentStep.IsTerminal() {
		s.logger.Warn("Retreat: session=%s cannot retreat from step=%s", sessionID, session.CurrentStep)
		return nil, ErrCannotRetreat
	}

	prev := session.CurrentStep - 1
	if !domain.CanTransition(session.CurrentStep, prev) {
		return nil, ErrCannotRetreat
	}
	session.CurrentStep = prev

	updated, err := s.sessions.Update(ctx, session)
	if err != nil {
		return nil, s.mapRepoError("Retreat", sessionID, err)
	}

	s.logger.Info("Retreat: session=%s moved back to step=%s", sessionID, updated.CurrentStep)
	return models.FromDomainSession(updated), nil
}

// Reset возвращает мастер в исходное состояние: пустой черновик
// (кроме предвыбранного автомобиля), первый шаг, без кэша слотов.
func (s *Service) Reset(ctx context.Context, sessionID string, userID int64) (*models.SessionResponse, error) {
	session, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	session.Draft = domain.NewBookingDraft(session.PreselectedVehicle)
	session.CurrentStep = domain.StepSelectCenter
	session.Slots = nil
	// SlotGeneration не сбрасывается: ответы, выданные до Reset,
	// должны остаться устаревшими

	updated, err := s.sessions.Update(ctx, session)
	if err != nil {
		return nil, s.mapRepoError("Reset", sessionID, err)
	}

	s.logger.Info("Reset: session=%s reset to step=%s", sessionID, updated.CurrentStep)
	return models.FromDomainSession(updated), nil
}

// Close закрывает мастер и уничтожает черновик.
// Повторное закрытие - no-op: политика "no resume" делает операцию идемпотентной.
func (s *Service) Close(ctx context.Context, sessionID string, userID int64) error {
	session, err := s.load(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		s.logger.Error("Close: failed to delete session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Close: session=%s destroyed", sessionID)
	return nil
}

// load получает сессию и проверяет владельца
func (s *Service) load(ctx context.Context, sessionID string, userID int64) (*domain.WizardSession, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, s.mapRepoError("load", sessionID, err)
	}

	if session.UserID != userID {
		s.logger.Warn("load: user=%d denied access to session=%s", userID, sessionID)
		return nil, ErrAccessDenied
	}

	return session, nil
}

func (s *Service) mapRepoError(op, sessionID string, err error) error {
	switch {
	case errors.Is(err, sessionRepo.ErrSessionNotFound), errors.Is(err, sessionRepo.ErrSessionExpired):
		return ErrSessionNotFound
	case errors.Is(err, sessionRepo.ErrVersionConflict):
		s.logger.Warn("%s: session=%s concurrent modification", op, sessionID)
		return ErrConflict
	default:
		s.logger.Error("%s: session=%s repository error: %v", op, sessionID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	sessionRepo "github.com/no-solace/EVSC-BookingFlow/internal/infra/storage/session"
)

// maxCASRetries количество повторов compare-and-swap при конкурентном
// изменении сессии
const maxCASRetries = 3

// UseCase use case загрузки слотов для пары (центр, дата).
//
// Каждая загрузка получает монотонно растущий номер поколения в рамках
// сессии. Снимок слотов записывается в сессию только если за время
// загрузки не был выдан более новый номер: поздний ответ на старый
// запрос отбрасывается и не может затереть данные более нового.
type UseCase struct {
	sessions SessionRepository
	client   CentralServiceClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRepository, client CentralServiceClient, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		client:   client,
		logger:   logger,
	}
}

// Execute выполняет загрузку слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: session=%s, center=%d, date=%s", req.SessionID, req.CenterID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем сессию и проверяем владельца
	session, err := uc.loadSession(ctx, req.SessionID, req.UserID)
	if err != nil {
		return nil, err
	}

	duration := session.Draft.Service.EstimateDurationMinutes()

	// 3. Без полного ключа (центр, дата) загрузка не выполняется:
	// пустой ответ вместо ошибки
	if !hasFetchKeys(req) {
		uc.logger.Info("GetAvailableSlots: session=%s missing fetch keys, returning empty", req.SessionID)
		return &Response{
			CenterID:        req.CenterID,
			Date:            req.Date,
			DurationMinutes: duration,
			Morning:         []Slot{},
			Afternoon:       []Slot{},
		}, nil
	}

	// 4. Резервируем номер поколения для этой загрузки
	generation, err := uc.reserveGeneration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Загружаем слоты из центрального сервиса
	slots, fetchErr := uc.client.GetDaySlots(ctx, req.CenterID, req.Date)
	if fetchErr != nil {
		// Не фатально: кэш сессии очищается, чтобы устаревший список
		// не прошёл валидацию выбора слота; пользователь может повторить
		uc.logger.Error("GetAvailableSlots: session=%s upstream fetch failed: %v", req.SessionID, fetchErr)
		if _, storeErr := uc.storeSlotCache(ctx, req, generation, []domain.TimeSlot{}); storeErr != nil &&
			!errors.Is(storeErr, ErrStaleResponse) {
			uc.logger.Warn("GetAvailableSlots: session=%s failed to clear slot cache: %v", req.SessionID, storeErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, fetchErr)
	}

	// 6. Записываем снимок в сессию, отбрасывая устаревшие ответы
	stored, err := uc.storeSlotCache(ctx, req, generation, slots)
	if err != nil {
		return nil, err
	}
	if !stored {
		uc.logger.Warn("GetAvailableSlots: session=%s generation=%d superseded, response discarded",
			req.SessionID, generation)
		return nil, ErrStaleResponse
	}

	morning, afternoon := buildSlotViews(slots, duration)

	uc.logger.Info("GetAvailableSlots: session=%s center=%d date=%s got %d slots (gen=%d)",
		req.SessionID, req.CenterID, req.Date, len(slots), generation)

	return &Response{
		CenterID:        req.CenterID,
		Date:            req.Date,
		DurationMinutes: duration,
		Generation:      generation,
		Morning:         morning,
		Afternoon:       afternoon,
	}, nil
}

// reserveGeneration атомарно выдает следующий номер поколения загрузки
func (uc *UseCase) reserveGeneration(ctx context.Context, req *Request) (uint64, error) {
	for attempt := 0; attempt < maxCASRetries; attempt++ {
		session, err := uc.loadSession(ctx, req.SessionID, req.UserID)
		if err != nil {
			return 0, err
		}

		generation := session.SlotGeneration + 1
		session.SlotGeneration = generation

		if _, err := uc.sessions.Update(ctx, session); err != nil {
			if errors.Is(err, sessionRepo.ErrVersionConflict) {
				continue
			}
			return 0, uc.mapRepoError(err)
		}
		return generation, nil
	}

	return 0, fmt.Errorf("%w: failed to reserve fetch generation after %d attempts", ErrInternal, maxCASRetries)
}

// storeSlotCache записывает снимок слотов в сессию.
// Возвращает false, если снимок устарел (выдано более новое поколение).
func (uc *UseCase) storeSlotCache(ctx context.Context, req *Request, generation uint64, slots []domain.TimeSlot) (bool, error) {
	for attempt := 0; attempt < maxCASRetries; attempt++ {
		session, err := uc.loadSession(ctx, req.SessionID, req.UserID)
		if err != nil {
			return false, err
		}

		// Устаревший ответ: за время загрузки выдан более новый номер
		if session.SlotGeneration > generation {
			return false, nil
		}

		// Снимок текущего или более нового поколения уже записан
		if session.Slots != nil && session.Slots.Generation >= generation {
			return false, nil
		}

		session.Slots = &domain.SlotCache{
			CenterID:   req.CenterID,
			Date:       req.Date,
			Generation: generation,
			Slots:      slots,
		}

		if _, err := uc.sessions.Update(ctx, session); err != nil {
			if errors.Is(err, sessionRepo.ErrVersionConflict) {
				continue
			}
			return false, uc.mapRepoError(err)
		}
		return true, nil
	}

	return false, fmt.Errorf("%w: failed to store slot cache after %d attempts", ErrInternal, maxCASRetries)
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

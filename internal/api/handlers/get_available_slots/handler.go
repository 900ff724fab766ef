package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
	getAvailableSlots "github.com/no-solace/EVSC-BookingFlow/internal/usecase/get_available_slots"
)

const (
	msgInvalidCenterID = "некорректный идентификатор центра"
	msgSessionNotFound = "сессия мастера не найдена или истекла"
	msgAccessDenied    = "доступ к чужой сессии запрещён"
	msgUpstreamFailed  = "не удалось загрузить слоты, попробуйте ещё раз"
	msgStaleDiscarded  = "ответ устарел и был отброшен, повторите запрос"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-sessions/{sessionId}/available-slots?centerId=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	query := r.URL.Query()

	// centerId и date опциональны: без них usecase вернёт пустой список
	var centerID int64
	if raw := query.Get("centerId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /booking-sessions/{id}/available-slots - Invalid centerId: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidCenterID)
			return
		}
		centerID = parsed
	}

	req := &getAvailableSlots.Request{
		SessionID: sessionID,
		UserID:    userID,
		CenterID:  centerID,
		Date:      query.Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSessionNotFound):
			h.logger.Warn("GET /booking-sessions/{id}/available-slots - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getAvailableSlots.ErrAccessDenied):
			h.logger.Warn("GET /booking-sessions/{id}/available-slots - Access denied: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, "некорректные параметры запроса")

		case errors.Is(err, getAvailableSlots.ErrUpstreamUnavailable):
			h.logger.Warn("GET /booking-sessions/{id}/available-slots - Upstream unavailable: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)

		case errors.Is(err, getAvailableSlots.ErrStaleResponse):
			// Гонка двух параллельных загрузок: победила более новая
			handlers.RespondError(w, http.StatusConflict, msgStaleDiscarded)

		default:
			h.logger.Error("GET /booking-sessions/{id}/available-slots - Failed: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-sessions/{id}/available-slots - OK: session_id=%s, morning=%d, afternoon=%d",
		sessionID, len(result.Morning), len(result.Afternoon))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

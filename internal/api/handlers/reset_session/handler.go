package reset_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard"
)

const (
	msgSessionNotFound = "сессия мастера не найдена или истекла"
	msgAccessDenied    = "доступ к чужой сессии запрещён"
	msgConflict        = "сессия была изменена параллельным запросом, повторите"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-sessions/{sessionId}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Reset(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/reset - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("POST /booking-sessions/{id}/reset - Access denied: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, wizard.ErrConflict):
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, "некорректный идентификатор сессии")

		default:
			h.logger.Error("POST /booking-sessions/{id}/reset - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/reset - Session reset: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

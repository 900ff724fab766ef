package retreat_step

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
	msgCannotRetreat   = "с текущего шага вернуться назад нельзя"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/retreat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Retreat(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/retreat - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("POST /booking-sessions/{id}/retreat - Access denied: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, wizard.ErrConflict):
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, wizard.ErrCannotRetreat):
			h.logger.Warn("POST /booking-sessions/{id}/retreat - Cannot retreat: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCannotRetreat)

		case errors.Is(err, wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, "некорректный идентификатор сессии")

		default:
			h.logger.Error("POST /booking-sessions/{id}/retreat - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/retreat - Retreated: session_id=%s, step=%s",
		sessionID, result.StepName)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package close_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard"
)

const msgAccessDenied = "доступ к чужой сессии запрещён"

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

// Handle DELETE /api/v1/booking-sessions/{sessionId}
// Закрытие идемпотентно: повторный DELETE тоже вернёт 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Close(r.Context(), sessionID, userID); err != nil {
		switch {
		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("DELETE /booking-sessions/{id} - Access denied: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, "некорректный идентификатор сессии")

		default:
			h.logger.Error("DELETE /booking-sessions/{id} - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /booking-sessions/{id} - Session closed: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

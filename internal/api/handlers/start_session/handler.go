package start_session

import (
	"net/http"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/booking-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	// Тело опционально: мастер можно открыть и без предвыбранного автомобиля
	var req StartSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /booking-sessions - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.service.StartSession(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		h.logger.Error("POST /booking-sessions - Failed to start session: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking-sessions - Session started: session_id=%s, user_id=%d", result.SessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

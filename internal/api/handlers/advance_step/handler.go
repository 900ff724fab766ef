package advance_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия мастера не найдена или истекла"
	msgAccessDenied       = "доступ к чужой сессии запрещён"
	msgConflict           = "сессия была изменена параллельным запросом, повторите"
	msgTerminalStep       = "мастер уже завершён"
	msgAdvanceNotAllowed  = "переход на следующий шаг с текущего шага невозможен"
	msgCenterRequired     = "не выбран сервисный центр"
	msgDateRequired       = "не указана дата бронирования"
	msgDateOutOfWindow    = "дата бронирования вне допустимого окна"
	msgServiceRequired    = "не выбрана услуга"
	msgInvalidService     = "выбранная услуга заполнена не полностью"
	msgTimeSlotRequired   = "не выбран временной слот"
	msgSlotsNotLoaded     = "слоты для выбранного центра и даты не загружены"
	msgSlotNotSelectable  = "выбранный слот недоступен"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	var req AdvanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/advance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Advance(r.Context(), req.ToServiceRequest(sessionID, userID))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, wizard.ErrConflict):
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, wizard.ErrTerminalStep):
			handlers.RespondError(w, http.StatusConflict, msgTerminalStep)

		case errors.Is(err, wizard.ErrAdvanceNotAllowed):
			handlers.RespondError(w, http.StatusConflict, msgAdvanceNotAllowed)

		case errors.Is(err, wizard.ErrCenterRequired):
			handlers.RespondBadRequest(w, msgCenterRequired)

		case errors.Is(err, wizard.ErrDateRequired):
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, wizard.ErrDateOutOfWindow):
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, wizard.ErrServiceRequired):
			handlers.RespondBadRequest(w, msgServiceRequired)

		case errors.Is(err, wizard.ErrInvalidService):
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, wizard.ErrTimeSlotRequired):
			handlers.RespondBadRequest(w, msgTimeSlotRequired)

		case errors.Is(err, wizard.ErrSlotsNotLoaded):
			handlers.RespondError(w, http.StatusConflict, msgSlotsNotLoaded)

		case errors.Is(err, wizard.ErrSlotNotSelectable):
			handlers.RespondError(w, http.StatusConflict, msgSlotNotSelectable)

		case errors.Is(err, wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /booking-sessions/{id}/advance - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Warn("POST /booking-sessions/{id}/advance - Rejected: session_id=%s, user_id=%d, error=%v",
			sessionID, userID, err)
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/advance - Advanced: session_id=%s, step=%s",
		sessionID, result.StepName)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
	submitBooking "github.com/no-solace/EVSC-BookingFlow/internal/usecase/submit_booking"
)

// Стабильные машиночитаемые коды для двух доменных конфликтов:
// клиенты матчат код, а не текст сообщения
const (
	codeDuplicateBooking = "BOOKING_DUPLICATE"
	codeVehicleInService = "VEHICLE_IN_SERVICE"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия мастера не найдена или истекла"
	msgAccessDenied       = "доступ к чужой сессии запрещён"
	msgInvalidName        = "укажите имя клиента"
	msgInvalidPhone       = "телефон должен содержать 10-11 цифр"
	msgInvalidEmail       = "некорректный формат email"
	msgNotOnConfirmStep   = "отправка доступна только с шага подтверждения"
	msgIncompleteDraft    = "черновик бронирования заполнен не полностью"
	msgUpstreamFailed     = "не удалось отправить бронирование, попробуйте ещё раз"

	// Две ситуации с персональной подачей: копия для конечного
	// пользователя приложения (vi-VN)
	msgDuplicateBooking = "Xe này đã có lịch đặt đang chờ xử lý. Vui lòng kiểm tra lại lịch đặt của bạn."
	msgVehicleInService = "Xe này hiện đang được bảo dưỡng tại trung tâm. Vui lòng thử lại sau."
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, userID))
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Access denied: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, submitBooking.ErrInvalidName):
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, submitBooking.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, submitBooking.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, submitBooking.ErrNotOnConfirmStep):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Not on confirm step: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNotOnConfirmStep)

		case errors.Is(err, submitBooking.ErrIncompleteDraft):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Incomplete draft: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgIncompleteDraft)

		case errors.Is(err, submitBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Duplicate booking: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondErrorCode(w, http.StatusConflict, codeDuplicateBooking, msgDuplicateBooking)

		case errors.Is(err, submitBooking.ErrVehicleInService):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Vehicle in service: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondErrorCode(w, http.StatusConflict, codeVehicleInService, msgVehicleInService)

		case errors.Is(err, submitBooking.ErrUpstreamRejected):
			// Прочие доменные отказы: показываем сообщение бэкенда дословно
			h.logger.Warn("POST /booking-sessions/{id}/submit - Rejected: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, err.Error())

		case errors.Is(err, submitBooking.ErrUpstreamUnavailable):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Upstream unavailable: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)

		default:
			h.logger.Error("POST /booking-sessions/{id}/submit - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/submit - Booking created: session_id=%s, booking_id=%d",
		sessionID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package claim_handoff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
	claimHandoff "github.com/no-solace/EVSC-BookingFlow/internal/usecase/claim_handoff"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgHandoffNotFound  = "запись передачи не найдена"
	msgAlreadyClaimed   = "бронирование уже принято другим сотрудником"
)

type Handler struct {
	useCase ClaimHandoffUseCase
	logger  Logger
}

func NewHandler(useCase ClaimHandoffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/handoffs/{bookingId}/claim
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &claimHandoff.Request{
		BookingID:   bookingID,
		StaffUserID: staffUserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, claimHandoff.ErrHandoffNotFound):
			h.logger.Warn("POST /handoffs/{id}/claim - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgHandoffNotFound)

		case errors.Is(err, claimHandoff.ErrAlreadyClaimed):
			h.logger.Warn("POST /handoffs/{id}/claim - Already claimed: booking_id=%d, staff_id=%d",
				bookingID, staffUserID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyClaimed)

		case errors.Is(err, claimHandoff.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /handoffs/{id}/claim - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /handoffs/{id}/claim - Claimed: booking_id=%d, staff_id=%d", bookingID, staffUserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

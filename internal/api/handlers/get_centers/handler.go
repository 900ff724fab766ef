package get_centers

import (
	"errors"
	"net/http"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/refdata"
)

const msgUpstreamFailed = "не удалось загрузить список центров, попробуйте ещё раз"

type Handler struct {
	service RefDataService
	logger  Logger
}

func NewHandler(service RefDataService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centers, err := h.service.Centers(r.Context())
	if err != nil {
		if errors.Is(err, refdata.ErrUnavailable) {
			h.logger.Warn("GET /centers - Upstream unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)
			return
		}
		h.logger.Error("GET /centers - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, centers)
}

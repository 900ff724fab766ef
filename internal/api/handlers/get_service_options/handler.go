package get_service_options

import (
	"errors"
	"net/http"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/handlers"
	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/refdata"
)

const (
	msgUnknownOfferType = "неизвестная категория услуги, ожидается maintenance, parts или repair"
	msgUpstreamFailed   = "не удалось загрузить справочные данные, попробуйте ещё раз"
)

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

// Handle GET /api/v1/service-options?offerType={maintenance|parts|repair}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerType := domain.OfferType(r.URL.Query().Get("offerType"))
	if !offerType.Valid() {
		h.logger.Warn("GET /service-options - Unknown offer type: %q", offerType)
		handlers.RespondBadRequest(w, msgUnknownOfferType)
		return
	}

	resp := ServiceOptionsResponse{OfferType: string(offerType)}
	var err error

	switch offerType {
	case domain.OfferMaintenance:
		resp.Packages, err = h.service.MaintenancePackages(r.Context())
	case domain.OfferParts:
		resp.Parts, err = h.service.SpareParts(r.Context())
	case domain.OfferRepair:
		resp.Issues, err = h.service.IssuesByOfferType(r.Context(), offerType.BackendID())
	}

	if err != nil {
		if errors.Is(err, refdata.ErrUnavailable) {
			h.logger.Warn("GET /service-options - Upstream unavailable: offer_type=%s, error=%v", offerType, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)
			return
		}
		h.logger.Error("GET /service-options - Failed: offer_type=%s, error=%v", offerType, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

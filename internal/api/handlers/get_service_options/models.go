package get_service_options

import (
	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/integrations/centralservice"
)

// ServiceOptionsResponse справочные данные для шага выбора услуги.
// Заполняется только секция, соответствующая запрошенной категории.
type ServiceOptionsResponse struct {
	OfferType string                      `json:"offerType"`
	Packages  []domain.MaintenancePackage `json:"packages,omitempty"`
	Parts     []domain.SparePart          `json:"parts,omitempty"`
	Issues    []centralservice.Issue      `json:"issues,omitempty"`
}

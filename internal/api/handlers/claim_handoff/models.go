package claim_handoff

import (
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	claimHandoff "github.com/no-solace/EVSC-BookingFlow/internal/usecase/claim_handoff"
)

// HandoffResponse HTTP response model: всё, что нужно приёмке
// для встречи клиента
type HandoffResponse struct {
	BookingID          int64   `json:"bookingId"`
	CenterID           int64   `json:"centerId"`
	VehicleID          int64   `json:"vehicleId"`
	VehicleModel       *string `json:"vehicleModel,omitempty"`
	LicensePlate       *string `json:"licensePlate,omitempty"`
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	CustomerEmail      *string `json:"customerEmail,omitempty"`
	CustomerAddress    *string `json:"customerAddress,omitempty"`
	OfferTypeID        int64   `json:"offerTypeId"`
	PackageID          *int64  `json:"packageId,omitempty"`
	ProblemDescription *string `json:"problemDescription,omitempty"`
	BookingDate        string  `json:"bookingDate"`
	BookingTime        string  `json:"bookingTime"`
	Notes              *string `json:"notes,omitempty"`
	ClaimedAt          string  `json:"claimedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *claimHandoff.Response) *HandoffResponse {
	h := resp.Handoff
	return &HandoffResponse{
		BookingID:          h.BookingID,
		CenterID:           h.CenterID,
		VehicleID:          h.VehicleID,
		VehicleModel:       h.VehicleModel,
		LicensePlate:       h.LicensePlate,
		CustomerName:       h.CustomerName,
		CustomerPhone:      h.CustomerPhone,
		CustomerEmail:      h.CustomerEmail,
		CustomerAddress:    h.CustomerAddress,
		OfferTypeID:        h.OfferTypeID,
		PackageID:          h.PackageID,
		ProblemDescription: h.ProblemDescription,
		BookingDate:        h.BookingDate.Format(domain.DateFormat),
		BookingTime:        h.BookingTime.String(),
		Notes:              h.Notes,
		ClaimedAt:          resp.ClaimedAt.Format(time.RFC3339),
	}
}

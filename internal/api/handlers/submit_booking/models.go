package submit_booking

import (
	submitBooking "github.com/no-solace/EVSC-BookingFlow/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model: контакты с шага подтверждения
type SubmitBookingRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	CustomerAddress string `json:"customerAddress,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	BookingID   int64  `json:"bookingId"`
	Status      string `json:"status"`
	CurrentStep int    `json:"currentStep"`
	StepName    string `json:"stepName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(sessionID string, userID int64) *submitBooking.Request {
	return &submitBooking.Request{
		SessionID:       sessionID,
		UserID:          userID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		CustomerAddress: r.CustomerAddress,
		Notes:           r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		BookingID:   resp.BookingID,
		Status:      string(resp.Status),
		CurrentStep: int(resp.CurrentStep),
		StepName:    resp.CurrentStep.String(),
	}
}

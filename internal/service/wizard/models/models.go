package models

import (
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// StartSessionRequest запрос на открытие мастера бронирования
type StartSessionRequest struct {
	UserID int64
	// PreselectedVehicle автомобиль, с которым открыт мастер (опционально)
	PreselectedVehicle *domain.Vehicle
}

// AdvanceRequest запрос на переход к следующему шагу
type AdvanceRequest struct {
	SessionID string
	UserID    int64
	Patch     domain.DraftPatch
}

// SessionResponse снимок сессии мастера для выдачи наружу
type SessionResponse struct {
	SessionID   string              `json:"sessionId"`
	CurrentStep int                 `json:"currentStep"`
	StepName    string              `json:"stepName"`
	Draft       domain.BookingDraft `json:"draft"`
	Version     int64               `json:"version"`
	ExpiresAt   time.Time           `json:"expiresAt"`
}

// FromDomainSession конвертирует доменную сессию в response
func FromDomainSession(s *domain.WizardSession) *SessionResponse {
	return &SessionResponse{
		SessionID:   s.ID,
		CurrentStep: int(s.CurrentStep),
		StepName:    s.CurrentStep.String(),
		Draft:       s.Draft,
		Version:     s.Version,
		ExpiresAt:   s.ExpiresAt,
	}
}

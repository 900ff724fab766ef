package advance_step

import (
	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard/models"
)

// AdvanceRequest HTTP request model.
// Patch несёт только поля текущего шага: nil-поля черновик не трогают.
type AdvanceRequest struct {
	Patch domain.DraftPatch `json:"patch"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AdvanceRequest) ToServiceRequest(sessionID string, userID int64) *models.AdvanceRequest {
	return &models.AdvanceRequest{
		SessionID: sessionID,
		UserID:    userID,
		Patch:     r.Patch,
	}
}

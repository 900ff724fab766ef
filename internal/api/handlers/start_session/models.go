package start_session

import (
	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard/models"
)

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	// Vehicle автомобиль, с которым открывается мастер (опционально)
	Vehicle *domain.Vehicle `json:"vehicle,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *StartSessionRequest) ToServiceRequest(userID int64) *models.StartSessionRequest {
	return &models.StartSessionRequest{
		UserID:             userID,
		PreselectedVehicle: r.Vehicle,
	}
}

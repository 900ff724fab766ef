package claim_handoff

import (
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// Request модель запроса на получение бронирования приёмкой
type Request struct {
	BookingID   int64 // ID бронирования
	StaffUserID int64 // ID сотрудника приёмки
}

// Response handoff-запись после успешного claim
type Response struct {
	Handoff   *domain.ReceptionHandoff
	ClaimedAt time.Time
}

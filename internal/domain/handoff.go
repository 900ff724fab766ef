package domain

import (
	"time"

	"github.com/no-solace/EVSC-BookingFlow/pkg/types"
)

// ReceptionHandoff типизированная запись передачи успешного бронирования
// на приёмку: заменяет нетипизированную передачу данных между страницами.
// Создаётся при успешной отправке бронирования, забирается сотрудником
// при физическом приезде автомобиля в центр.
type ReceptionHandoff struct {
	ID        int64
	BookingID int64
	UserID    int64
	CenterID  int64

	VehicleID    int64
	VehicleModel *string
	LicensePlate *string

	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	CustomerAddress *string

	OfferTypeID        int64
	PackageID          *int64
	ProblemDescription *string

	BookingDate time.Time
	BookingTime types.TimeString
	Notes       *string

	ClaimedBy *int64
	ClaimedAt *time.Time

	CreatedAt time.Time
}

// IsClaimed возвращает true, если запись уже забрана приёмкой
func (h *ReceptionHandoff) IsClaimed() bool {
	return h.ClaimedAt != nil
}

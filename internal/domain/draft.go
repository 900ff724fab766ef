package domain

import (
	"time"

	"github.com/no-solace/EVSC-BookingFlow/pkg/types"
)

// DraftStatus статус черновика бронирования.
// Выставляется только шагом отправки, пользователь его не редактирует.
type DraftStatus string

const (
	StatusPending        DraftStatus = "pending"
	StatusPendingPayment DraftStatus = "pending_payment"
)

// Center сервисный центр, выбранный на первом шаге
type Center struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone"`
	OpenTime    types.TimeString `json:"openTime"`
	CloseTime   types.TimeString `json:"closeTime"`
	WorkingDays []string         `json:"workingDays"`
}

// Vehicle электромобиль клиента
type Vehicle struct {
	ID              int64      `json:"id"`
	Model           string     `json:"model"`
	LicensePlate    string     `json:"licensePlate"`
	VIN             string     `json:"vin"`
	WarrantyExpires *time.Time `json:"warrantyExpires,omitempty"`
}

// CustomerInfo контактные данные клиента, заполняются на шаге подтверждения
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// BookingDraft черновик бронирования, накапливаемый по шагам мастера.
// Инвариант: черновик только пополняется - уже установленные поля
// никогда не очищаются, кроме как явным полным Reset.
type BookingDraft struct {
	Center       *Center           `json:"center,omitempty"`
	Date         string            `json:"date,omitempty"` // YYYY-MM-DD
	Service      *ServiceSelection `json:"service,omitempty"`
	Vehicle      *Vehicle          `json:"vehicle,omitempty"`
	VehicleData  *Vehicle          `json:"vehicleData,omitempty"`
	TimeSlot     types.TimeString  `json:"timeSlot,omitempty"`
	CustomerInfo *CustomerInfo     `json:"customerInfo,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Status       DraftStatus       `json:"status,omitempty"`
	BookingID    *int64            `json:"bookingId,omitempty"`
}

// DraftPatch частичное обновление черновика: каждый шаг передаёт
// только те поля, которыми владеет. nil-поля не трогают черновик.
type DraftPatch struct {
	Center       *Center           `json:"center,omitempty"`
	Date         *string           `json:"date,omitempty"`
	Service      *ServiceSelection `json:"service,omitempty"`
	Vehicle      *Vehicle          `json:"vehicle,omitempty"`
	TimeSlot     *types.TimeString `json:"timeSlot,omitempty"`
	CustomerInfo *CustomerInfo     `json:"customerInfo,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
}

// NewBookingDraft создает пустой черновик.
// Если при открытии мастера был передан предвыбранный автомобиль,
// он сохраняется в обоих полях (vehicle и vehicleData).
func NewBookingDraft(preselected *Vehicle) BookingDraft {
	draft := BookingDraft{}
	if preselected != nil {
		v := *preselected
		draft.Vehicle = &v
		vd := *preselected
		draft.VehicleData = &vd
	}
	return draft
}

// Merge применяет patch к черновику (shallow merge по верхнеуровневым ключам).
// Поля, отсутствующие в patch, остаются без изменений.
func (d *BookingDraft) Merge(patch DraftPatch) {
	if patch.Center != nil {
		d.Center = patch.Center
	}
	if patch.Date != nil {
		d.Date = *patch.Date
	}
	if patch.Service != nil {
		d.Service = patch.Service
	}
	if patch.Vehicle != nil {
		d.Vehicle = patch.Vehicle
		d.VehicleData = patch.Vehicle
	}
	if patch.TimeSlot != nil {
		d.TimeSlot = *patch.TimeSlot
	}
	if patch.CustomerInfo != nil {
		d.CustomerInfo = patch.CustomerInfo
	}
	if patch.Notes != nil {
		d.Notes = *patch.Notes
	}
}

// ResolveVehicleID возвращает идентификатор автомобиля по цепочке
// vehicleData.id → vehicle.id. Возвращает 0, если не найден.
func (d *BookingDraft) ResolveVehicleID() int64 {
	if d.VehicleData != nil && d.VehicleData.ID > 0 {
		return d.VehicleData.ID
	}
	if d.Vehicle != nil && d.Vehicle.ID > 0 {
		return d.Vehicle.ID
	}
	return 0
}

// CenterID возвращает идентификатор выбранного центра или 0
func (d *BookingDraft) CenterID() int64 {
	if d.Center == nil {
		return 0
	}
	return d.Center.ID
}

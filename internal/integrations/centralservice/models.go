package centralservice

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/no-solace/EVSC-BookingFlow/pkg/types"
)

// FlexibleTime время слота из ответа центрального сервиса.
// Бэкенд отдаёт время либо строкой ("9:00", "09:00:00"), либо
// JSON-массивом-префиксом [hour, minute, second]. В обоих случаях
// значение нормализуется к каноническому "HH:MM".
type FlexibleTime struct {
	Value types.TimeString
}

// UnmarshalJSON принимает строку или массив целых
func (f *FlexibleTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty time value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := types.NewTimeStringFromString(s)
		if err != nil {
			return err
		}
		f.Value = parsed
		return nil
	case '[':
		var parts []int
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		parsed, err := types.NewTimeStringFromParts(parts)
		if err != nil {
			return err
		}
		f.Value = parsed
		return nil
	default:
		return fmt.Errorf("unsupported time value: %s", string(data))
	}
}

// SlotPayload слот из ответа GET /bookings/{centerId}/{date}
type SlotPayload struct {
	Time      FlexibleTime `json:"time"`
	Available bool         `json:"available"`
}

// DaySlotsResponse ответ центрального сервиса со слотами на дату
type DaySlotsResponse struct {
	CenterID int64         `json:"centerId"`
	Date     string        `json:"date"`
	Slots    []SlotPayload `json:"slots"`
}

// CreateBookingRequest тело POST /bookings центрального сервиса
type CreateBookingRequest struct {
	EVID               int64   `json:"eVId"`
	CenterID           int64   `json:"centerId"`
	BookingDate        string  `json:"bookingDate"` // YYYY-MM-DD
	BookingTime        string  `json:"bookingTime"` // HH:MM:SS
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	CustomerEmail      string  `json:"customerEmail,omitempty"`
	CustomerAddress    string  `json:"customerAddress,omitempty"`
	OfferTypeID        int64   `json:"offerTypeId"`
	PackageID          *int64  `json:"packageId,omitempty"`
	ProblemDescription string  `json:"problemDescription,omitempty"`
	Notes              string  `json:"notes,omitempty"`
}

// CreateBookingResponse ответ центрального сервиса на создание бронирования
type CreateBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status,omitempty"`
}

// Issue типовая неисправность из справочника центрального сервиса
type Issue struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse тело ошибки центрального сервиса.
// Code присутствует у актуальных версий бэкенда, старые шлют только message.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

package centralservice

import "errors"

var (
	// ErrInternal возвращается при внутренних/транспортных ошибках клиента
	ErrInternal = errors.New("centralservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("centralservice client: invalid response")

	// ErrDuplicateBooking возвращается, когда у автомобиля уже есть
	// необработанное бронирование
	ErrDuplicateBooking = errors.New("centralservice: vehicle already has a pending booking")

	// ErrVehicleInService возвращается, когда автомобиль сейчас находится
	// на обслуживании в центре
	ErrVehicleInService = errors.New("centralservice: vehicle is currently in service")
)

// DomainError доменная ошибка центрального сервиса, не попавшая в известные
// категории. Message показывается пользователю дословно.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Стабильные машиночитаемые коды ошибок центрального сервиса.
// Устаревшие версии бэкенда кодов не шлют - для них остаётся
// сопоставление по подстроке сообщения.
const (
	codeDuplicateBooking = "BOOKING_DUPLICATE"
	codeVehicleInService = "VEHICLE_IN_SERVICE"

	legacyDuplicateBookingSubstr = "already has a pending booking"
	legacyVehicleInServiceSubstr = "currently in service"
)

package submit_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrAccessDenied возвращается при обращении к чужой сессии
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInvalidName возвращается при пустом имени клиента
	ErrInvalidName = errors.New("submit_booking: customer name is required")

	// ErrInvalidPhone возвращается при некорректном формате телефона
	ErrInvalidPhone = errors.New("submit_booking: customer phone must be 10-11 digits")

	// ErrInvalidEmail возвращается при некорректном формате email
	ErrInvalidEmail = errors.New("submit_booking: invalid email format")

	// ErrNotOnConfirmStep возвращается при попытке отправить бронирование
	// с любого шага, кроме шага подтверждения
	ErrNotOnConfirmStep = errors.New("submit_booking: session is not on confirmation step")

	// ErrIncompleteDraft возвращается, когда в черновике не хватает данных
	// для отправки (центр, дата, услуга, слот или автомобиль)
	ErrIncompleteDraft = errors.New("submit_booking: booking draft is incomplete")

	// ErrDuplicateBooking возвращается, когда у автомобиля уже есть
	// активное бронирование
	ErrDuplicateBooking = errors.New("submit_booking: vehicle already has a pending booking")

	// ErrVehicleInService возвращается, когда автомобиль сейчас в сервисе
	ErrVehicleInService = errors.New("submit_booking: vehicle is currently in service")

	// ErrUpstreamRejected возвращается, когда центральный сервис отклонил
	// бронирование по иной доменной причине
	ErrUpstreamRejected = errors.New("submit_booking: booking rejected by central service")

	// ErrUpstreamUnavailable возвращается при недоступности центрального сервиса
	ErrUpstreamUnavailable = errors.New("submit_booking: central service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

package submit_booking

import "github.com/no-solace/EVSC-BookingFlow/internal/domain"

// Request модель запроса на отправку бронирования.
// Контактные данные приходят с шага подтверждения и попадают в черновик
// только после успешного ответа центрального сервиса.
type Request struct {
	SessionID       string // ID сессии мастера
	UserID          int64  // ID пользователя (владелец сессии)
	CustomerName    string // Имя клиента
	CustomerPhone   string // Телефон, 10-11 цифр (пробелы допустимы)
	CustomerEmail   string // Email, опционально
	CustomerAddress string // Адрес, опционально
	Notes           string // Заметки к бронированию, опционально
}

// Response результат успешной отправки бронирования
type Response struct {
	BookingID   int64              // ID созданного бронирования
	Status      domain.DraftStatus // Статус черновика (pending_payment)
	CurrentStep domain.Step        // Шаг сессии после отправки (booking_success)
}

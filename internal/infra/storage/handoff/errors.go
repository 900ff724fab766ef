package handoff

import "errors"

var (
	// ErrHandoffNotFound возвращается, когда запись handoff не найдена
	ErrHandoffNotFound = errors.New("handoff.repository: handoff not found")

	// ErrAlreadyClaimed возвращается, когда запись уже забрана приёмкой
	ErrAlreadyClaimed = errors.New("handoff.repository: handoff already claimed")

	// ErrDuplicateBooking возвращается при повторной вставке для того же бронирования
	ErrDuplicateBooking = errors.New("handoff.repository: handoff for booking already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("handoff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("handoff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("handoff.repository: failed to scan row")
)

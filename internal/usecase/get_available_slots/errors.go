package get_available_slots

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("get_available_slots: session not found")

	// ErrAccessDenied возвращается при обращении к чужой сессии
	ErrAccessDenied = errors.New("get_available_slots: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrUpstreamUnavailable возвращается, когда центральный сервис
	// не смог отдать слоты. Не фатально: кэш слотов сессии очищается,
	// пользователь может повторить запрос сменой даты.
	ErrUpstreamUnavailable = errors.New("get_available_slots: central service unavailable")

	// ErrStaleResponse возвращается, когда ответ центрального сервиса
	// пришёл позже, чем был выдан более новый запрос, и был отброшен
	ErrStaleResponse = errors.New("get_available_slots: stale response discarded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

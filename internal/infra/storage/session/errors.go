package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrSessionExpired возвращается при обращении к истёкшей сессии
	ErrSessionExpired = errors.New("session.repository: session expired")

	// ErrSessionExists возвращается при попытке создать сессию с занятым ID
	ErrSessionExists = errors.New("session.repository: session already exists")

	// ErrVersionConflict возвращается, когда compare-and-swap по версии
	// не прошёл: сессия была изменена конкурентно
	ErrVersionConflict = errors.New("session.repository: version conflict")
)

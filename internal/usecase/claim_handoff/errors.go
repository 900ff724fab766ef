package claim_handoff

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("claim_handoff: invalid input data")

	// ErrHandoffNotFound возвращается, когда запись не найдена
	ErrHandoffNotFound = errors.New("claim_handoff: handoff not found")

	// ErrAlreadyClaimed возвращается, когда запись уже забрана приёмкой
	ErrAlreadyClaimed = errors.New("claim_handoff: handoff already claimed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("claim_handoff: internal error")
)

package refdata

import "errors"

var (
	// ErrUnavailable возвращается, когда справочные данные недоступны
	// (центральный сервис не ответил и в кэше ничего нет)
	ErrUnavailable = errors.New("refdata: reference data unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("refdata: invalid input data")
)

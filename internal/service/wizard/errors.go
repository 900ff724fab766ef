package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard: session not found")

	// ErrAccessDenied возвращается при обращении к чужой сессии
	ErrAccessDenied = errors.New("wizard: access denied")

	// ErrConflict возвращается при конкурентном изменении сессии
	ErrConflict = errors.New("wizard: session was modified concurrently")

	// ErrTerminalStep возвращается при попытке изменить завершённую сессию
	ErrTerminalStep = errors.New("wizard: session is on terminal step")

	// ErrCannotRetreat возвращается, когда возврат назад с текущего шага запрещён
	ErrCannotRetreat = errors.New("wizard: cannot retreat from current step")

	// ErrAdvanceNotAllowed возвращается для переходов, которые мастер не разрешает
	// (в частности, 4→5 выполняется только через отправку бронирования)
	ErrAdvanceNotAllowed = errors.New("wizard: advance not allowed from current step")

	// ErrCenterRequired возвращается, когда на шаге выбора центра центр не выбран
	ErrCenterRequired = errors.New("wizard: service center is required")

	// ErrDateRequired возвращается, когда дата не указана
	ErrDateRequired = errors.New("wizard: booking date is required")

	// ErrDateOutOfWindow возвращается, когда дата вне окна бронирования
	ErrDateOutOfWindow = errors.New("wizard: booking date is out of the allowed window")

	// ErrServiceRequired возвращается, когда услуга не выбрана
	ErrServiceRequired = errors.New("wizard: service selection is required")

	// ErrInvalidService возвращается при неполном выборе услуги
	ErrInvalidService = errors.New("wizard: invalid service selection")

	// ErrTimeSlotRequired возвращается, когда слот не выбран
	ErrTimeSlotRequired = errors.New("wizard: time slot is required")

	// ErrSlotsNotLoaded возвращается, когда слоты для выбранной пары
	// (центр, дата) ещё не загружались
	ErrSlotsNotLoaded = errors.New("wizard: slots are not loaded for selected center and date")

	// ErrSlotNotSelectable возвращается при выборе недоступного слота.
	// Выбор недоступного слота не меняет состояние черновика.
	ErrSlotNotSelectable = errors.New("wizard: selected slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)

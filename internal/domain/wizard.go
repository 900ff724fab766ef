package domain

import "time"

// Step шаг мастера бронирования
type Step int

const (
	StepSelectCenter   Step = 1
	StepSelectDate     Step = 2
	StepSelectTimeSlot Step = 3
	StepConfirmBooking Step = 4
	StepBookingSuccess Step = 5
)

// allowedStepTransitions определяет допустимые переходы между шагами.
// Ключ - текущий шаг, значение - шаги, в которые из него можно перейти.
// Шаг 5 (success) терминальный: назад из него вернуться нельзя.
var allowedStepTransitions = map[Step][]Step{
	StepSelectCenter:   {StepSelectDate},
	StepSelectDate:     {StepSelectCenter, StepSelectTimeSlot},
	StepSelectTimeSlot: {StepSelectDate, StepConfirmBooking},
	StepConfirmBooking: {StepSelectTimeSlot, StepBookingSuccess},
	StepBookingSuccess: {},
}

// CanTransition проверяет, разрешён ли переход между шагами
func CanTransition(from, to Step) bool {
	allowed, ok := allowedStepTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Valid возвращает true для известного шага
func (s Step) Valid() bool {
	return s >= StepSelectCenter && s <= StepBookingSuccess
}

// IsTerminal возвращает true для финального шага мастера
func (s Step) IsTerminal() bool {
	return s == StepBookingSuccess
}

// String имя шага для логов
func (s Step) String() string {
	switch s {
	case StepSelectCenter:
		return "select_center"
	case StepSelectDate:
		return "select_date"
	case StepSelectTimeSlot:
		return "select_time_slot"
	case StepConfirmBooking:
		return "confirm_booking"
	case StepBookingSuccess:
		return "booking_success"
	default:
		return "unknown"
	}
}

// WizardSession сессия мастера бронирования.
// Живёт только в памяти сервиса: закрытие сессии уничтожает черновик
// без возможности восстановления (политика "no resume").
type WizardSession struct {
	ID          string
	UserID      int64
	CurrentStep Step
	Draft       BookingDraft

	// PreselectedVehicle автомобиль, переданный при открытии мастера.
	// Единственное, что переживает Reset.
	PreselectedVehicle *Vehicle

	// Slots кэш слотов последней успешной загрузки для (center, date).
	// SlotGeneration - номер последнего выданного запроса на загрузку:
	// ответы с меньшим номером отбрасываются как устаревшие.
	Slots          *SlotCache
	SlotGeneration uint64

	// Version монотонно растёт при каждой мутации; обновления
	// применяются только через compare-and-swap по этому полю.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// Expired возвращает true, если сессия истекла к моменту now
func (s *WizardSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Clone возвращает глубокую в достаточной мере копию сессии для
// безопасной выдачи наружу из хранилища (черновик копируется по значению,
// кэш слотов - по указателю на неизменяемый снимок).
func (s *WizardSession) Clone() *WizardSession {
	c := *s
	return &c
}

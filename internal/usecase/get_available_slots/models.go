package get_available_slots

import "github.com/no-solace/EVSC-BookingFlow/pkg/types"

// Request модель запроса на получение слотов для сессии мастера
type Request struct {
	SessionID string // ID сессии мастера
	UserID    int64  // ID пользователя (владелец сессии)
	CenterID  int64  // ID сервисного центра
	Date      string // Дата YYYY-MM-DD
}

// Slot слот с расчётным временем окончания услуги.
// EndTime - чисто отображаемая величина: старт + оценка длительности,
// с переходом через полночь по модулю 24 часов.
type Slot struct {
	Time      types.TimeString // Время начала слота, канонический "HH:MM"
	EndTime   types.TimeString // Расчётное время окончания
	Available bool             // Доступен ли слот для выбора
}

// Response слоты на дату, разбитые на утреннюю и дневную корзины
type Response struct {
	CenterID        int64  // ID центра, для которого запрашивались слоты
	Date            string // Дата запроса
	DurationMinutes int    // Оценка длительности выбранной услуги
	Generation      uint64 // Номер запроса (для диагностики гонок)
	Morning         []Slot // Слоты с началом до 12:00
	Afternoon       []Slot // Слоты с началом с 12:00
}

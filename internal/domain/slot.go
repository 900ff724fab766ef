package domain

import "github.com/no-solace/EVSC-BookingFlow/pkg/types"

// TimeSlot дискретный интервал бронирования в центре на конкретную дату.
// Эфемерный: загружается заново при каждой смене пары (center, date)
// и нигде не персистится.
type TimeSlot struct {
	Time      types.TimeString `json:"time"`
	Available bool             `json:"available"`
}

// SlotBuckets слоты, разбитые на утренние (час < 12) и дневные (час >= 12)
type SlotBuckets struct {
	Morning   []TimeSlot `json:"morning"`
	Afternoon []TimeSlot `json:"afternoon"`
}

// PartitionSlots разбивает слоты на утренние и дневные корзины.
// Слоты с некорректным временем отбрасываются.
func PartitionSlots(slots []TimeSlot) SlotBuckets {
	buckets := SlotBuckets{
		Morning:   make([]TimeSlot, 0, len(slots)),
		Afternoon: make([]TimeSlot, 0, len(slots)),
	}

	for _, slot := range slots {
		hour, err := slot.Time.Hour()
		if err != nil {
			continue
		}
		if hour < 12 {
			buckets.Morning = append(buckets.Morning, slot)
		} else {
			buckets.Afternoon = append(buckets.Afternoon, slot)
		}
	}

	return buckets
}

// SlotCache снимок слотов, загруженных для пары (center, date).
// Generation - номер запроса, которым снимок был получен.
type SlotCache struct {
	CenterID   int64
	Date       string // YYYY-MM-DD
	Generation uint64
	Slots      []TimeSlot
}

// Matches возвращает true, если кэш относится к указанной паре (center, date)
func (c *SlotCache) Matches(centerID int64, date string) bool {
	return c != nil && c.CenterID == centerID && c.Date == date
}

// IsSelectable возвращает true, если слот присутствует в кэше и доступен.
// Выбор недоступного слота - no-op на уровне мастера.
func (c *SlotCache) IsSelectable(t types.TimeString) bool {
	if c == nil {
		return false
	}
	for _, slot := range c.Slots {
		if slot.Time == t {
			return slot.Available
		}
	}
	return false
}

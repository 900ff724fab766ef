package get_available_slots

import (
	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// buildSlotViews достраивает к слотам расчётное время окончания
// и раскладывает их по корзинам утро/день
func buildSlotViews(slots []domain.TimeSlot, durationMinutes int) (morning, afternoon []Slot) {
	buckets := domain.PartitionSlots(slots)

	morning = toViews(buckets.Morning, durationMinutes)
	afternoon = toViews(buckets.Afternoon, durationMinutes)
	return morning, afternoon
}

func toViews(slots []domain.TimeSlot, durationMinutes int) []Slot {
	views := make([]Slot, 0, len(slots))
	for _, s := range slots {
		endTime, err := s.Time.AddMinutes(durationMinutes)
		if err != nil {
			// Слот с некорректным временем не показываем
			continue
		}
		views = append(views, Slot{
			Time:      s.Time,
			EndTime:   endTime,
			Available: s.Available,
		})
	}
	return views
}

package get_available_slots

import (
	getAvailableSlots "github.com/no-solace/EVSC-BookingFlow/internal/usecase/get_available_slots"
)

// SlotResponse слот в HTTP-ответе
type SlotResponse struct {
	Time      string `json:"time"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	CenterID        int64          `json:"centerId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Morning         []SlotResponse `json:"morning"`
	Afternoon       []SlotResponse `json:"afternoon"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		CenterID:        resp.CenterID,
		Date:            resp.Date,
		DurationMinutes: resp.DurationMinutes,
		Morning:         toSlotResponses(resp.Morning),
		Afternoon:       toSlotResponses(resp.Afternoon),
	}
}

func toSlotResponses(slots []getAvailableSlots.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			Time:      s.Time.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
		}
	}
	return out
}

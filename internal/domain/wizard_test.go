package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Step
		to   Step
		want bool
	}{
		{name: "1 to 2", from: StepSelectCenter, to: StepSelectDate, want: true},
		{name: "2 to 3", from: StepSelectDate, to: StepSelectTimeSlot, want: true},
		{name: "3 to 4", from: StepSelectTimeSlot, to: StepConfirmBooking, want: true},
		{name: "4 to 5", from: StepConfirmBooking, to: StepBookingSuccess, want: true},
		{name: "2 back to 1", from: StepSelectDate, to: StepSelectCenter, want: true},
		{name: "4 back to 3", from: StepConfirmBooking, to: StepSelectTimeSlot, want: true},
		{name: "skip 1 to 3", from: StepSelectCenter, to: StepSelectTimeSlot, want: false},
		{name: "skip 2 to 4", from: StepSelectDate, to: StepConfirmBooking, want: false},
		{name: "terminal has no exits", from: StepBookingSuccess, to: StepConfirmBooking, want: false},
		{name: "1 cannot retreat", from: StepSelectCenter, to: 0, want: false},
		{name: "unknown step", from: Step(42), to: StepSelectCenter, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStepIsTerminal(t *testing.T) {
	assert.True(t, StepBookingSuccess.IsTerminal())
	assert.False(t, StepConfirmBooking.IsTerminal())
	assert.False(t, StepSelectCenter.IsTerminal())
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	session := &WizardSession{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(2*time.Hour)))
}

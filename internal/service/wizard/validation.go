package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// validateStepComplete проверяет, что текущий шаг укомплектован
// и сессию можно переводить дальше
func (s *Service) validateStepComplete(session *domain.WizardSession) error {
	switch session.CurrentStep {
	case domain.StepSelectCenter:
		if session.Draft.Center == nil || session.Draft.Center.ID <= 0 {
			return ErrCenterRequired
		}
		return nil

	case domain.StepSelectDate:
		if err := validateBookingDate(session.Draft.Date, s.timeProvider.Now()); err != nil {
			return err
		}
		return validateServiceSelection(session.Draft.Service)

	case domain.StepSelectTimeSlot:
		return validateTimeSlot(session)

	default:
		return fmt.Errorf("%w: no completion rule for step %s", ErrInternal, session.CurrentStep)
	}
}

// validateBookingDate проверяет, что дата лежит в окне бронирования:
// от завтрашнего дня включительно на BookingWindowDays дней вперёд
func validateBookingDate(date string, now time.Time) error {
	if date == "" {
		return ErrDateRequired
	}

	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrDateRequired, date)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(0, 0, domain.MinAdvanceBookingDays)
	latest := earliest.AddDate(0, 0, domain.BookingWindowDays-1)

	dateOnly := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly.Before(earliest) || dateOnly.After(latest) {
		return fmt.Errorf("%w: date must be between %s and %s", ErrDateOutOfWindow,
			earliest.Format(domain.DateFormat), latest.Format(domain.DateFormat))
	}

	return nil
}

// validateServiceSelection проверяет полноту выбранной услуги
// в зависимости от её категории
func validateServiceSelection(svc *domain.ServiceSelection) error {
	if svc == nil {
		return ErrServiceRequired
	}
	if !svc.OfferType.Valid() {
		return fmt.Errorf("%w: unknown offer type %q", ErrInvalidService, svc.OfferType)
	}

	switch svc.OfferType {
	case domain.OfferMaintenance:
		if svc.Package == nil || svc.Package.ID <= 0 {
			return fmt.Errorf("%w: maintenance requires a service package", ErrInvalidService)
		}
	case domain.OfferParts:
		if len(svc.Parts) == 0 {
			return fmt.Errorf("%w: parts order requires at least one part", ErrInvalidService)
		}
	case domain.OfferRepair:
		if len(strings.TrimSpace(svc.ProblemDescription)) < domain.MinProblemDescriptionChars {
			return fmt.Errorf("%w: problem description must be at least %d characters",
				ErrInvalidService, domain.MinProblemDescriptionChars)
		}
	}

	return nil
}

// validateTimeSlot проверяет, что выбранный слот присутствует среди
// загруженных для текущей пары (центр, дата) и доступен.
// Недоступный слот не может стать выбранным.
func validateTimeSlot(session *domain.WizardSession) error {
	if session.Draft.TimeSlot.IsZero() {
		return ErrTimeSlotRequired
	}

	cache := session.Slots
	if !cache.Matches(session.Draft.CenterID(), session.Draft.Date) {
		return ErrSlotsNotLoaded
	}

	if !cache.IsSelectable(session.Draft.TimeSlot) {
		return ErrSlotNotSelectable
	}

	return nil
}

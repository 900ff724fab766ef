package submit_booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

var (
	// Телефон: 10-11 цифр после удаления пробельных символов
	phoneRegexp = regexp.MustCompile(`^[0-9]{10,11}$`)

	// Email: минимальная проверка "что-то@что-то.домен", без RFC-педантизма
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	whitespaceRegexp = regexp.MustCompile(`\s+`)
)

// customerPayload контактные данные в форме для валидатора
type customerPayload struct {
	Name  string `validate:"required"`
	Phone string `validate:"phone_digits"`
	Email string `validate:"omitempty,basic_email"`
	Notes string `validate:"max=500"`
}

// newValidator собирает валидатор с доменными правилами для контактов
func newValidator() *validator.Validate {
	v := validator.New()

	// Паника здесь невозможна: функции не-nil, имена тегов валидны
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(stripWhitespace(fl.Field().String()))
	})
	_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	return v
}

// validateRequest валидирует входные данные запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	payload := customerPayload{
		Name:  strings.TrimSpace(req.CustomerName),
		Phone: req.CustomerPhone,
		Email: strings.TrimSpace(req.CustomerEmail),
		Notes: req.Notes,
	}

	if err := uc.validate.Struct(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Name":
				return ErrInvalidName
			case "Phone":
				return ErrInvalidPhone
			case "Email":
				return ErrInvalidEmail
			case "Notes":
				return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDraftComplete проверяет, что в черновике есть всё необходимое
// для отправки. Шаговая валидация уже прошла, это последний рубеж перед
// единственным state-changing вызовом наружу.
func validateDraftComplete(draft *domain.BookingDraft) error {
	if draft.CenterID() <= 0 {
		return fmt.Errorf("%w: service center is not selected", ErrIncompleteDraft)
	}

	if draft.Date == "" {
		return fmt.Errorf("%w: booking date is not selected", ErrIncompleteDraft)
	}

	if draft.Service == nil || !draft.Service.OfferType.Valid() {
		return fmt.Errorf("%w: service is not selected", ErrIncompleteDraft)
	}

	if draft.TimeSlot.IsZero() {
		return fmt.Errorf("%w: time slot is not selected", ErrIncompleteDraft)
	}

	if draft.ResolveVehicleID() <= 0 {
		return fmt.Errorf("%w: vehicle is not resolved", ErrIncompleteDraft)
	}

	return nil
}

// stripWhitespace удаляет все пробельные символы из строки
func stripWhitespace(s string) string {
	return whitespaceRegexp.ReplaceAllString(s, "")
}

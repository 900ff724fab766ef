package get_available_slots

import (
	"fmt"
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отсутствие центра или даты проверяется отдельно (это не ошибка,
// а сигнал "данных нет" - см. Execute), здесь отсекается мусор.
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CenterID < 0 {
		return fmt.Errorf("%w: centerID must be positive", ErrInvalidInput)
	}

	if req.Date != "" {
		if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
			return fmt.Errorf("%w: expected date in YYYY-MM-DD format, got %q", ErrInvalidInput, req.Date)
		}
	}

	return nil
}

// hasFetchKeys возвращает true, когда заданы оба ключа загрузки.
// Без полного ключа (centerID, date) загрузка не выполняется.
func hasFetchKeys(req *Request) bool {
	return req.CenterID > 0 && req.Date != ""
}

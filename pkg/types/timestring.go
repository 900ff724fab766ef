package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// TimeLayout формат времени HH:MM
	TimeLayout = "15:04"

	minutesPerDay = 24 * 60
)

// TimeString время в каноническом формате "HH:MM" (с ведущими нулями).
// Используется для времени начала слота и времени бронирования.
// Благодаря ведущим нулям лексикографическое сравнение совпадает с хронологическим.
type TimeString string

// NewTimeString создает TimeString из time.Time (дата отбрасывается)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromString парсит строку времени и нормализует её к "HH:MM".
// Принимает "HH:MM", "H:MM" и "HH:MM:SS" (секунды отбрасываются).
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}

	return fromHourMinute(hour, minute)
}

// NewTimeStringFromParts собирает TimeString из префикса массива [hour, minute, second].
// Бэкенд может отдавать время как JSON-массив произвольной длины: [9], [9, 30] или [9, 30, 0].
func NewTimeStringFromParts(parts []int) (TimeString, error) {
	if len(parts) == 0 {
		return "", fmt.Errorf("empty time parts")
	}

	hour := parts[0]
	minute := 0
	if len(parts) > 1 {
		minute = parts[1]
	}

	return fromHourMinute(hour, minute)
}

func fromHourMinute(hour, minute int) (TimeString, error) {
	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return "", fmt.Errorf("minute out of range: %d", minute)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным временем "HH:MM"
func (t TimeString) Validate() error {
	_, _, err := t.hourMinute()
	return err
}

// Hour возвращает часовую компоненту
func (t TimeString) Hour() (int, error) {
	h, _, err := t.hourMinute()
	return h, err
}

// WithSeconds возвращает время в формате "HH:MM:SS".
// Идемпотентно: значение, уже содержащее секунды, не меняется.
func (t TimeString) WithSeconds() string {
	if strings.Count(string(t), ":") >= 2 {
		return string(t)
	}
	return string(t) + ":00"
}

// AddMinutes прибавляет минуты к времени.
// Переход через полночь сворачивается по модулю 24 часов: "23:30" + 60 → "00:30".
// Многодневные интервалы не поддерживаются.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	hour, minute, err := t.hourMinute()
	if err != nil {
		return "", err
	}

	total := (hour*60 + minute + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

func (t TimeString) hourMinute() (int, int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid time string format: %q", t)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in time string: %q", t)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in time string: %q", t)
	}

	return hour, minute, nil
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON десериализует и нормализует строку времени
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.WithSeconds(), nil
}

// Scan реализует sql.Scanner: принимает time.Time, string и []byte
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("unsupported source type %T for TimeString", src)
	}
}

package centralservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик исходящих запросов.
// Может быть nil, если метрики выключены.
type MetricsRecorder interface {
	ObserveUpstreamRequest(operation, outcome string, duration time.Duration)
}

// Client клиент центрального сервиса EV-центров - авторитетного бэкенда,
// владеющего центрами, справочниками, слотами и самими бронированиями.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента центрального сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetDaySlots получает слоты центра на дату: GET /bookings/{centerId}/{date}
func (c *Client) GetDaySlots(ctx context.Context, centerID int64, date string) ([]domain.TimeSlot, error) {
	url := fmt.Sprintf("%s/bookings/%d/%s", c.baseURL, centerID, date)

	var payload DaySlotsResponse
	if err := c.getJSON(ctx, "get_day_slots", url, &payload); err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, len(payload.Slots))
	for i, s := range payload.Slots {
		slots[i] = domain.TimeSlot{
			Time:      s.Time.Value,
			Available: s.Available,
		}
	}

	return slots, nil
}

// CreateBooking создает бронирование: POST /bookings.
// Единственный state-changing вызов во всём потоке мастера.
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResponse, error) {
	url := c.baseURL + "/bookings"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe("create_booking", "transport_error", start)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var created CreateBookingResponse
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			c.observe("create_booking", "invalid_response", start)
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		c.observe("create_booking", "ok", start)
		return &created, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		domainErr := c.decodeDomainError(resp.Body)
		c.observe("create_booking", "rejected", start)
		return nil, domainErr

	default:
		body, _ := io.ReadAll(resp.Body)
		c.observe("create_booking", "upstream_error", start)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// GetCenters получает список сервисных центров: GET /centers
func (c *Client) GetCenters(ctx context.Context) ([]domain.Center, error) {
	var centers []domain.Center
	if err := c.getJSON(ctx, "get_centers", c.baseURL+"/centers", &centers); err != nil {
		return nil, err
	}
	return centers, nil
}

// GetMaintenancePackages получает справочник пакетов обслуживания
func (c *Client) GetMaintenancePackages(ctx context.Context) ([]domain.MaintenancePackage, error) {
	var packages []domain.MaintenancePackage
	if err := c.getJSON(ctx, "get_maintenance_packages", c.baseURL+"/maintenance-packages", &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// GetIssuesByOfferType получает типовые неисправности для категории услуги
func (c *Client) GetIssuesByOfferType(ctx context.Context, offerTypeID int64) ([]Issue, error) {
	url := fmt.Sprintf("%s/issues/by-offer-type/%d", c.baseURL, offerTypeID)

	var issues []Issue
	if err := c.getJSON(ctx, "get_issues", url, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// GetSpareParts получает справочник запасных частей
func (c *Client) GetSpareParts(ctx context.Context) ([]domain.SparePart, error) {
	var parts []domain.SparePart
	if err := c.getJSON(ctx, "get_spare_parts", c.baseURL+"/spare-parts", &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ
func (c *Client) getJSON(ctx context.Context, operation, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "transport_error", start)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.observe(operation, "upstream_error", start)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.observe(operation, "invalid_response", start)
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe(operation, "ok", start)
	return nil
}

// decodeDomainError разбирает тело доменной ошибки центрального сервиса.
// Сначала сопоставляется стабильный машиночитаемый код, затем - для старых
// версий бэкенда - две известные подстроки сообщения. Всё остальное
// возвращается как DomainError с дословным сообщением.
func (c *Client) decodeDomainError(body io.Reader) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return fmt.Errorf("%w: failed to decode error body: %v", ErrInvalidResponse, err)
	}

	switch errResp.Code {
	case codeDuplicateBooking:
		return ErrDuplicateBooking
	case codeVehicleInService:
		return ErrVehicleInService
	}

	switch {
	case strings.Contains(errResp.Message, legacyDuplicateBookingSubstr):
		return ErrDuplicateBooking
	case strings.Contains(errResp.Message, legacyVehicleInServiceSubstr):
		return ErrVehicleInService
	}

	return &DomainError{Code: errResp.Code, Message: errResp.Message}
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(operation, outcome, time.Since(start))
	}
}

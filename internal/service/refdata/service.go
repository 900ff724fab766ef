package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/integrations/centralservice"
)

const (
	keyCenters  = "refdata:centers"
	keyPackages = "refdata:maintenance-packages"
	keyParts    = "refdata:spare-parts"
	keyIssues   = "refdata:issues:%d"
)

// Service отдаёт справочные данные центрального сервиса
// (центры, пакеты, неисправности, запчасти) через сквозной Redis-кэш.
// Кэш опционален: без него и при его ошибках сервис ходит напрямую.
type Service struct {
	client CentralServiceClient
	cache  *redis.Client // nil = кэширование выключено
	ttl    time.Duration
	logger Logger
}

// NewService создает новый сервис справочных данных
func NewService(client CentralServiceClient, cache *redis.Client, ttl time.Duration, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Centers возвращает список сервисных центров
func (s *Service) Centers(ctx context.Context) ([]domain.Center, error) {
	return cached(ctx, s, keyCenters, s.client.GetCenters)
}

// MaintenancePackages возвращает справочник пакетов обслуживания
func (s *Service) MaintenancePackages(ctx context.Context) ([]domain.MaintenancePackage, error) {
	return cached(ctx, s, keyPackages, s.client.GetMaintenancePackages)
}

// IssuesByOfferType возвращает типовые неисправности для категории услуги
func (s *Service) IssuesByOfferType(ctx context.Context, offerTypeID int64) ([]centralservice.Issue, error) {
	if offerTypeID <= 0 {
		return nil, fmt.Errorf("%w: offerTypeID must be positive", ErrInvalidInput)
	}

	key := fmt.Sprintf(keyIssues, offerTypeID)
	return cached(ctx, s, key, func(ctx context.Context) ([]centralservice.Issue, error) {
		return s.client.GetIssuesByOfferType(ctx, offerTypeID)
	})
}

// SpareParts возвращает справочник запасных частей
func (s *Service) SpareParts(ctx context.Context) ([]domain.SparePart, error) {
	return cached(ctx, s, keyParts, s.client.GetSpareParts)
}

// cached сквозное чтение через кэш: попадание возвращается сразу,
// промах загружается из центрального сервиса и записывается с TTL.
// Ошибки Redis не фатальны - деградируем до прямой загрузки.
func cached[T any](ctx context.Context, s *Service, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var value T
			if jsonErr := json.Unmarshal(raw, &value); jsonErr == nil {
				return value, nil
			}
			// Битое значение в кэше - перезагружаем
			s.logger.Warn("refdata: corrupted cache entry %s, refetching", key)
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("refdata: cache read failed for %s: %v", key, err)
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		s.logger.Error("refdata: upstream fetch failed for %s: %v", key, err)
		return zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(value); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				s.logger.Warn("refdata: cache write failed for %s: %v", key, err)
			}
		}
	}

	return value, nil
}

package session

import (
	"context"
	"sync"
	"time"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

// Repository in-memory хранилище сессий мастера бронирования.
//
// Сессии намеренно не персистятся: закрытие мастера уничтожает черновик
// безвозвратно (политика "no resume"), поэтому дискового хранилища нет.
// Все мутации проходят через compare-and-swap по Version - это явная
// замена неявной дисциплины "единственный писатель" UI-слоя.
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.WizardSession
}

// NewRepository создает новое in-memory хранилище сессий
func NewRepository() *Repository {
	return &Repository{
		sessions: make(map[string]*domain.WizardSession),
	}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, s *domain.WizardSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return ErrSessionExists
	}

	r.sessions[s.ID] = s.Clone()
	return nil
}

// Get возвращает копию сессии по ID.
// Истёкшая сессия удаляется и считается не найденной.
func (r *Repository) Get(ctx context.Context, id string) (*domain.WizardSession, error) {
	r.mu.RLock()
	stored, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if stored.Expired(time.Now()) {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, ErrSessionExpired
	}

	return stored.Clone(), nil
}

// Update применяет изменённую сессию через compare-and-swap:
// версия переданной сессии должна совпадать с сохранённой, иначе
// возвращается ErrVersionConflict. При успехе версия инкрементируется.
func (r *Repository) Update(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[s.ID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if stored.Expired(time.Now()) {
		delete(r.sessions, s.ID)
		return nil, ErrSessionExpired
	}

	if stored.Version != s.Version {
		return nil, ErrVersionConflict
	}

	updated := s.Clone()
	updated.Version = s.Version + 1
	updated.UpdatedAt = time.Now()

	r.sessions[s.ID] = updated
	return updated.Clone(), nil
}

// Delete удаляет сессию. Удаление несуществующей сессии - не ошибка:
// закрытие мастера должно быть идемпотентным.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// Count возвращает количество живых сессий (для метрик)
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// DeleteExpired удаляет все истёкшие сессии и возвращает их количество.
// Вызывается периодической горутиной очистки.
func (r *Repository) DeleteExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

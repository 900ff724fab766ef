package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
)

func newTestSession(id string) *domain.WizardSession {
	now := time.Now()
	return &domain.WizardSession{
		ID:          id,
		UserID:      10,
		CurrentStep: domain.StepSelectCenter,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("s1")))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, int64(1), got.Version)
}

func TestCreateDuplicate(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("s1")))
	err := repo.Create(ctx, newTestSession("s1"))
	assert.ErrorIs(t, err, ErrSessionExists)
}

func TestGetNotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetExpiredIsDeleted(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	s := newTestSession("s1")
	s.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Create(ctx, s))

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionExpired)

	// Повторный запрос: сессия уже удалена
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("s1")))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)

	// Мутация копии не затрагивает хранимое состояние
	got.CurrentStep = domain.StepConfirmBooking

	stored, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectCenter, stored.CurrentStep)
}

func TestUpdateCAS(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("s1")))

	first, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	second, err := repo.Get(ctx, "s1")
	require.NoError(t, err)

	first.CurrentStep = domain.StepSelectDate
	updated, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	// Второй писатель работает с устаревшей версией
	second.CurrentStep = domain.StepSelectTimeSlot
	_, err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, ErrVersionConflict)

	stored, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectDate, stored.CurrentStep)
}

func TestUpdateNotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Update(context.Background(), newTestSession("missing"))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteIdempotent(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("s1")))
	require.NoError(t, repo.Delete(ctx, "s1"))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteExpired(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	live := newTestSession("live")
	require.NoError(t, repo.Create(ctx, live))

	dead := newTestSession("dead")
	dead.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Create(ctx, dead))

	removed := repo.DeleteExpired(time.Now())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, repo.Count())
}

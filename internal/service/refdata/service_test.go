package refdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/internal/integrations/centralservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUpstream struct {
	centers  []domain.Center
	packages []domain.MaintenancePackage
	parts    []domain.SparePart
	issues   []centralservice.Issue
	err      error

	calls int
}

func (f *fakeUpstream) GetCenters(ctx context.Context) ([]domain.Center, error) {
	f.calls++
	return f.centers, f.err
}

func (f *fakeUpstream) GetMaintenancePackages(ctx context.Context) ([]domain.MaintenancePackage, error) {
	f.calls++
	return f.packages, f.err
}

func (f *fakeUpstream) GetIssuesByOfferType(ctx context.Context, offerTypeID int64) ([]centralservice.Issue, error) {
	f.calls++
	return f.issues, f.err
}

func (f *fakeUpstream) GetSpareParts(ctx context.Context) ([]domain.SparePart, error) {
	f.calls++
	return f.parts, f.err
}

func newCacheClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestCentersCacheMissThenHit(t *testing.T) {
	cache, mr := newCacheClient(t)
	upstream := &fakeUpstream{centers: []domain.Center{{ID: 1, Name: "EVSC District 7"}}}
	svc := NewService(upstream, cache, time.Minute, nopLogger{})
	ctx := context.Background()

	// Промах: загрузка из центрального сервиса и запись в кэш
	centers, err := svc.Centers(ctx)
	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, 1, upstream.calls)
	assert.True(t, mr.Exists("refdata:centers"))

	// Попадание: второй запрос не ходит наружу
	centers, err = svc.Centers(ctx)
	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, "EVSC District 7", centers[0].Name)
	assert.Equal(t, 1, upstream.calls)
}

func TestCentersCorruptedCacheEntryRefetches(t *testing.T) {
	cache, mr := newCacheClient(t)
	upstream := &fakeUpstream{centers: []domain.Center{{ID: 1, Name: "EVSC District 7"}}}
	svc := NewService(upstream, cache, time.Minute, nopLogger{})

	require.NoError(t, mr.Set("refdata:centers", "{not json"))

	centers, err := svc.Centers(context.Background())
	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, 1, upstream.calls, "corrupted entry must be refetched")
}

func TestCentersCacheDownDegradesToDirectFetch(t *testing.T) {
	cache, mr := newCacheClient(t)
	mr.Close()

	upstream := &fakeUpstream{centers: []domain.Center{{ID: 1}}}
	svc := NewService(upstream, cache, time.Minute, nopLogger{})

	centers, err := svc.Centers(context.Background())
	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, 1, upstream.calls)
}

func TestCentersWithoutCache(t *testing.T) {
	upstream := &fakeUpstream{centers: []domain.Center{{ID: 1}}}
	svc := NewService(upstream, nil, time.Minute, nopLogger{})
	ctx := context.Background()

	_, err := svc.Centers(ctx)
	require.NoError(t, err)
	_, err = svc.Centers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls, "no cache means every call goes upstream")
}

func TestCentersUpstreamFailure(t *testing.T) {
	cache, _ := newCacheClient(t)
	upstream := &fakeUpstream{err: errors.New("connection refused")}
	svc := NewService(upstream, cache, time.Minute, nopLogger{})

	_, err := svc.Centers(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestIssuesByOfferTypeKeyedPerType(t *testing.T) {
	cache, mr := newCacheClient(t)
	upstream := &fakeUpstream{issues: []centralservice.Issue{{ID: 1, Name: "Battery drain"}}}
	svc := NewService(upstream, cache, time.Minute, nopLogger{})
	ctx := context.Background()

	_, err := svc.IssuesByOfferType(ctx, 3)
	require.NoError(t, err)
	assert.True(t, mr.Exists("refdata:issues:3"))
	assert.False(t, mr.Exists("refdata:issues:1"))
}

func TestIssuesByOfferTypeInvalidID(t *testing.T) {
	svc := NewService(&fakeUpstream{}, nil, time.Minute, nopLogger{})

	_, err := svc.IssuesByOfferType(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMaintenancePackagesCached(t *testing.T) {
	cache, _ := newCacheClient(t)
	upstream := &fakeUpstream{packages: []domain.MaintenancePackage{{ID: 5, DurationMinutes: 120}}}
	svc := NewService(upstream, cache, time.Minute, nopLogger{})
	ctx := context.Background()

	first, err := svc.MaintenancePackages(ctx)
	require.NoError(t, err)
	second, err := svc.MaintenancePackages(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, upstream.calls)
}

func TestSparePartsCacheExpiry(t *testing.T) {
	cache, mr := newCacheClient(t)
	upstream := &fakeUpstream{parts: []domain.SparePart{{ID: 9, Name: "Brake pads", InStock: true}}}
	svc := NewService(upstream, cache, time.Minute, nopLogger{})
	ctx := context.Background()

	_, err := svc.SpareParts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.calls)

	// TTL истёк, следующий запрос снова идёт наружу
	mr.FastForward(2 * time.Minute)

	_, err = svc.SpareParts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls)
}

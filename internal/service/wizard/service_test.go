package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	sessionRepo "github.com/no-solace/EVSC-BookingFlow/internal/infra/storage/session"
	"github.com/no-solace/EVSC-BookingFlow/internal/service/wizard/models"
	"github.com/no-solace/EVSC-BookingFlow/pkg/ptr"
	"github.com/no-solace/EVSC-BookingFlow/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

const testUserID int64 = 42

func newTestService(t *testing.T) (*Service, *sessionRepo.Repository) {
	t.Helper()
	repo := sessionRepo.NewRepository()
	svc := NewService(repo, time.Hour, nopLogger{})
	svc.timeProvider = &fixedTime{t: time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)}
	return svc, repo
}

func startSession(t *testing.T, svc *Service, vehicle *domain.Vehicle) string {
	t.Helper()
	resp, err := svc.StartSession(context.Background(), &models.StartSessionRequest{
		UserID:             testUserID,
		PreselectedVehicle: vehicle,
	})
	require.NoError(t, err)
	return resp.SessionID
}

// advanceToStep прогоняет сессию до нужного шага валидными данными.
// Окно дат считается от фиксированного "сегодня" 2025-11-15.
func advanceToStep(t *testing.T, svc *Service, repo *sessionRepo.Repository, sessionID string, target domain.Step) {
	t.Helper()
	ctx := context.Background()

	steps := []domain.DraftPatch{
		{Center: &domain.Center{ID: 1, Name: "EVSC District 7"}},
		{
			Date: ptr.Ptr("2025-11-20"),
			Service: &domain.ServiceSelection{
				OfferType: domain.OfferMaintenance,
				Package:   &domain.MaintenancePackage{ID: 11, DurationMinutes: 60},
			},
		},
		{TimeSlot: ptr.Ptr(types.TimeString("09:00"))},
	}

	for i, patch := range steps {
		current := domain.Step(i + 1)
		if current >= target {
			return
		}

		// Шаг выбора слота требует загруженного кэша слотов
		if current == domain.StepSelectTimeSlot {
			seedSlotCache(t, repo, sessionID)
		}

		_, err := svc.Advance(ctx, &models.AdvanceRequest{
			SessionID: sessionID,
			UserID:    testUserID,
			Patch:     patch,
		})
		require.NoError(t, err)
	}
}

func seedSlotCache(t *testing.T, repo *sessionRepo.Repository, sessionID string) {
	t.Helper()
	ctx := context.Background()

	session, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	session.Slots = &domain.SlotCache{
		CenterID:   1,
		Date:       "2025-11-20",
		Generation: 1,
		Slots: []domain.TimeSlot{
			{Time: "09:00", Available: true},
			{Time: "10:00", Available: false},
		},
	}
	_, err = repo.Update(ctx, session)
	require.NoError(t, err)
}

func TestStartSession(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.StartSession(context.Background(), &models.StartSessionRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentStep)
	assert.Equal(t, "select_center", resp.StepName)
	assert.NotEmpty(t, resp.SessionID)
}

func TestStartSessionInvalidUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.StartSession(context.Background(), &models.StartSessionRequest{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdvanceHappyPath(t *testing.T) {
	svc, repo := newTestService(t)
	sessionID := startSession(t, svc, nil)

	advanceToStep(t, svc, repo, sessionID, domain.StepConfirmBooking)

	resp, err := svc.Get(context.Background(), sessionID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, int(domain.StepConfirmBooking), resp.CurrentStep)

	// Черновик накопил данные всех пройденных шагов
	require.NotNil(t, resp.Draft.Center)
	assert.Equal(t, "2025-11-20", resp.Draft.Date)
	require.NotNil(t, resp.Draft.Service)
	assert.Equal(t, "09:00", resp.Draft.TimeSlot.String())
}

func TestAdvanceRequiresCompletedStep(t *testing.T) {
	svc, _ := newTestService(t)
	sessionID := startSession(t, svc, nil)

	// Шаг 1 без выбранного центра
	_, err := svc.Advance(context.Background(), &models.AdvanceRequest{
		SessionID: sessionID,
		UserID:    testUserID,
	})
	assert.ErrorIs(t, err, ErrCenterRequired)
}

func TestAdvanceRejectsDateOutOfWindow(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		date string
	}{
		{name: "today is too early", date: "2025-11-15"},
		{name: "past date", date: "2025-11-01"},
		{name: "beyond the window", date: "2025-11-23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionID := startSession(t, svc, nil)
			advanceToStep(t, svc, repo, sessionID, domain.StepSelectDate)

			_, err := svc.Advance(ctx, &models.AdvanceRequest{
				SessionID: sessionID,
				UserID:    testUserID,
				Patch: domain.DraftPatch{
					Date: ptr.Ptr(tt.date),
					Service: &domain.ServiceSelection{
						OfferType:          domain.OfferRepair,
						ProblemDescription: "аккумулятор быстро разряжается на трассе",
					},
				},
			})
			assert.ErrorIs(t, err, ErrDateOutOfWindow)
		})
	}
}

func TestAdvanceWindowBoundaries(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	// Завтра и последний день окна включительно
	for _, date := range []string{"2025-11-16", "2025-11-22"} {
		sessionID := startSession(t, svc, nil)
		advanceToStep(t, svc, repo, sessionID, domain.StepSelectDate)

		_, err := svc.Advance(ctx, &models.AdvanceRequest{
			SessionID: sessionID,
			UserID:    testUserID,
			Patch: domain.DraftPatch{
				Date: ptr.Ptr(date),
				Service: &domain.ServiceSelection{
					OfferType:          domain.OfferRepair,
					ProblemDescription: "аккумулятор быстро разряжается на трассе",
				},
			},
		})
		assert.NoError(t, err, "date %s must be inside the booking window", date)
	}
}

func TestAdvanceRejectsUnavailableSlot(t *testing.T) {
	svc, repo := newTestService(t)
	sessionID := startSession(t, svc, nil)
	advanceToStep(t, svc, repo, sessionID, domain.StepSelectTimeSlot)
	seedSlotCache(t, repo, sessionID)

	before, err := svc.Get(context.Background(), sessionID, testUserID)
	require.NoError(t, err)

	// Слот 10:00 загружен, но недоступен
	_, err = svc.Advance(context.Background(), &models.AdvanceRequest{
		SessionID: sessionID,
		UserID:    testUserID,
		Patch:     domain.DraftPatch{TimeSlot: ptr.Ptr(types.TimeString("10:00"))},
	})
	assert.ErrorIs(t, err, ErrSlotNotSelectable)

	// Выбор недоступного слота - no-op: хранимая сессия не изменилась
	after, err := svc.Get(context.Background(), sessionID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, before.CurrentStep, after.CurrentStep)
	assert.Equal(t, before.Draft.TimeSlot, after.Draft.TimeSlot)
	assert.Equal(t, before.Version, after.Version)
}

func TestAdvanceRejectsSlotWithoutLoadedCache(t *testing.T) {
	svc, repo := newTestService(t)
	sessionID := startSession(t, svc, nil)
	advanceToStep(t, svc, repo, sessionID, domain.StepSelectTimeSlot)

	_, err := svc.Advance(context.Background(), &models.AdvanceRequest{
		SessionID: sessionID,
		UserID:    testUserID,
		Patch:     domain.DraftPatch{TimeSlot: ptr.Ptr(types.TimeString("09:00"))},
	})
	assert.ErrorIs(t, err, ErrSlotsNotLoaded)
}

func TestAdvanceForbidden4To5(t *testing.T) {
	svc, repo := newTestService(t)
	sessionID := startSession(t, svc, nil)
	advanceToStep(t, svc, repo, sessionID, domain.StepConfirmBooking)

	// 4→5 доступен только через отправку бронирования
	_, err := svc.Advance(context.Background(), &models.AdvanceRequest{
		SessionID: sessionID,
		UserID:    testUserID,
	})
	assert.ErrorIs(t, err, ErrAdvanceNotAllowed)
}

func TestRetreat(t *testing.T) {
	svc, repo := newTestService(t)
	sessionID := startSession(t, svc, nil)
	advanceToStep(t, svc, repo, sessionID, domain.StepSelectTimeSlot)

	resp, err := svc.Retreat(context.Background(), sessionID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, int(domain.StepSelectDate), resp.CurrentStep)

	// Черновик при отступлении сохраняется
	assert.Equal(t, "2025-11-20", resp.Draft.Date)
}

func TestRetreatFromFirstStep(t *testing.T) {
	svc, _ := newTestService(t)
	sessionID := startSession(t, svc, nil)

	_, err := svc.Retreat(context.Background(), sessionID, testUserID)
	assert.ErrorIs(t, err, ErrCannotRetreat)
}

func TestReset(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 7, Model: "VF 8"}

	svc, repo := newTestService(t)
	sessionID := startSession(t, svc, vehicle)
	advanceToStep(t, svc, repo, sessionID, domain.StepConfirmBooking)

	resp, err := svc.Reset(context.Background(), sessionID, testUserID)
	require.NoError(t, err)

	assert.Equal(t, int(domain.StepSelectCenter), resp.CurrentStep)
	assert.Nil(t, resp.Draft.Center)
	assert.Empty(t, resp.Draft.Date)
	assert.True(t, resp.Draft.TimeSlot.IsZero())

	// Единственное, что переживает Reset, - предвыбранный автомобиль
	require.NotNil(t, resp.Draft.Vehicle)
	assert.Equal(t, int64(7), resp.Draft.Vehicle.ID)
	require.NotNil(t, resp.Draft.VehicleData)
	assert.Equal(t, int64(7), resp.Draft.VehicleData.ID)
}

func TestCloseIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	sessionID := startSession(t, svc, nil)
	ctx := context.Background()

	require.NoError(t, svc.Close(ctx, sessionID, testUserID))
	require.NoError(t, svc.Close(ctx, sessionID, testUserID))

	_, err := svc.Get(ctx, sessionID, testUserID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAccessDenied(t *testing.T) {
	svc, _ := newTestService(t)
	sessionID := startSession(t, svc, nil)

	_, err := svc.Get(context.Background(), sessionID, testUserID+1)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

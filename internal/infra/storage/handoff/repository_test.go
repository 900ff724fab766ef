package handoff

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/pkg/ptr"
	"github.com/no-solace/EVSC-BookingFlow/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func sampleHandoff() *domain.ReceptionHandoff {
	return &domain.ReceptionHandoff{
		BookingID:     555,
		UserID:        42,
		CenterID:      1,
		VehicleID:     7,
		VehicleModel:  ptr.Ptr("VF 8"),
		CustomerName:  "Nguyen Van A",
		CustomerPhone: "0901234567",
		OfferTypeID:   1,
		PackageID:     ptr.Ptr(int64(5)),
		BookingDate:   time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		BookingTime:   types.TimeString("09:00"),
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO reception_handoffs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	h := sampleHandoff()
	created, err := repo.Create(context.Background(), h)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateBooking(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO reception_handoffs").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), sampleHandoff())
	assert.ErrorIs(t, err, ErrDuplicateBooking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func handoffRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_id", "user_id", "center_id",
		"vehicle_id", "vehicle_model", "license_plate",
		"customer_name", "customer_phone", "customer_email", "customer_address",
		"offer_type_id", "package_id", "problem_description",
		"booking_date", "booking_time", "notes",
		"claimed_by", "claimed_at", "created_at",
	})
}

func TestGetByBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM reception_handoffs").
		WithArgs(int64(555)).
		WillReturnRows(handoffRows().AddRow(
			int64(1), int64(555), int64(42), int64(1),
			int64(7), "VF 8", nil,
			"Nguyen Van A", "0901234567", nil, nil,
			int64(1), int64(5), nil,
			time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), "09:00", nil,
			nil, nil, time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC),
		))

	h, err := repo.GetByBookingID(context.Background(), 555)
	require.NoError(t, err)

	assert.Equal(t, int64(555), h.BookingID)
	require.NotNil(t, h.VehicleModel)
	assert.Equal(t, "VF 8", *h.VehicleModel)
	assert.Equal(t, types.TimeString("09:00"), h.BookingTime)
	assert.False(t, h.IsClaimed())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByBookingIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM reception_handoffs").
		WithArgs(int64(404)).
		WillReturnRows(handoffRows())

	_, err := repo.GetByBookingID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrHandoffNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaim(t *testing.T) {
	repo, mock := newMockRepo(t)
	claimedAt := time.Date(2025, 11, 20, 9, 5, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE reception_handoffs SET claimed_by").
		WithArgs(int64(99), claimedAt, int64(555)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Claim(context.Background(), 555, 99, claimedAt)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimAlreadyClaimed(t *testing.T) {
	repo, mock := newMockRepo(t)
	claimedAt := time.Date(2025, 11, 20, 9, 5, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE reception_handoffs SET claimed_by").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Запись существует, но claimed_at уже установлен
	mock.ExpectQuery("SELECT .+ FROM reception_handoffs").
		WillReturnRows(handoffRows().AddRow(
			int64(1), int64(555), int64(42), int64(1),
			int64(7), nil, nil,
			"Nguyen Van A", "0901234567", nil, nil,
			int64(1), nil, nil,
			time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), "09:00", nil,
			int64(77), time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC), time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC),
		))

	err := repo.Claim(context.Background(), 555, 99, claimedAt)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE reception_handoffs SET claimed_by").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .+ FROM reception_handoffs").
		WillReturnRows(handoffRows())

	err := repo.Claim(context.Background(), 555, 99, time.Now())
	assert.ErrorIs(t, err, ErrHandoffNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

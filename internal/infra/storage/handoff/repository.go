package handoff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	"github.com/no-solace/EVSC-BookingFlow/pkg/psqlbuilder"
	"github.com/no-solace/EVSC-BookingFlow/pkg/txmanager"
)

const uniqueViolationCode = "23505"

var handoffColumns = []string{
	"id",
	"booking_id",
	"user_id",
	"center_id",
	"vehicle_id",
	"vehicle_model",
	"license_plate",
	"customer_name",
	"customer_phone",
	"customer_email",
	"customer_address",
	"offer_type_id",
	"package_id",
	"problem_description",
	"booking_date",
	"booking_time",
	"notes",
	"claimed_by",
	"claimed_at",
	"created_at",
}

// Repository репозиторий записей передачи бронирований на приёмку
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория handoff-записей
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую handoff-запись.
// На booking_id стоит уникальный индекс: повторная отправка того же
// бронирования не создаст вторую запись.
func (r *Repository) Create(ctx context.Context, h *domain.ReceptionHandoff) (*domain.ReceptionHandoff, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reception_handoffs").
		Columns(
			"booking_id",
			"user_id",
			"center_id",
			"vehicle_id",
			"vehicle_model",
			"license_plate",
			"customer_name",
			"customer_phone",
			"customer_email",
			"customer_address",
			"offer_type_id",
			"package_id",
			"problem_description",
			"booking_date",
			"booking_time",
			"notes",
		).
		Values(
			h.BookingID,
			h.UserID,
			h.CenterID,
			h.VehicleID,
			h.VehicleModel,
			h.LicensePlate,
			h.CustomerName,
			h.CustomerPhone,
			h.CustomerEmail,
			h.CustomerAddress,
			h.OfferTypeID,
			h.PackageID,
			h.ProblemDescription,
			h.BookingDate,
			h.BookingTime,
			h.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time
	return h, nil
}

// GetByBookingID получает handoff-запись по ID бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.ReceptionHandoff, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(handoffColumns...).
		From("reception_handoffs").
		Where(squirrel.Eq{"booking_id": bookingID})

	// Внутри транзакции блокируем строку: claim делает read-then-update
	if txmanager.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.ReceptionHandoff
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.BookingID,
		&h.UserID,
		&h.CenterID,
		&h.VehicleID,
		&h.VehicleModel,
		&h.LicensePlate,
		&h.CustomerName,
		&h.CustomerPhone,
		&h.CustomerEmail,
		&h.CustomerAddress,
		&h.OfferTypeID,
		&h.PackageID,
		&h.ProblemDescription,
		&h.BookingDate,
		&h.BookingTime,
		&h.Notes,
		&h.ClaimedBy,
		&h.ClaimedAt,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHandoffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan handoff: %v", ErrScanRow, err)
	}

	h.CreatedAt = createdAt.Time
	return &h, nil
}

// Claim помечает запись как забранную сотрудником приёмки.
// Запись можно забрать ровно один раз (claimed_at IS NULL в предикате).
func (r *Repository) Claim(ctx context.Context, bookingID, staffUserID int64, claimedAt time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reception_handoffs").
		Set("claimed_by", staffUserID).
		Set("claimed_at", claimedAt).
		Where(squirrel.Eq{"booking_id": bookingID}).
		Where("claimed_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Claim - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Claim - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Claim - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		// Различаем "нет записи" и "уже забрана"
		if _, err := r.GetByBookingID(ctx, bookingID); err != nil {
			return err
		}
		return ErrAlreadyClaimed
	}

	return nil
}

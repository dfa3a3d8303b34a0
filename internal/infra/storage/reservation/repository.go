package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/BIM-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию
// Вызывается только внутри сериализуемой транзакции usecase'а создания
// резервации: проверка доступности и вставка должны быть атомарны
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"client_name",
			"client_email",
			"reservation_date",
			"reservation_time",
			"service_name",
			"notes",
			"status",
		).
		Values(
			res.ClientName,
			res.ClientEmail,
			res.Date,
			res.Time,
			res.ServiceName,
			res.Notes,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_name",
		"client_email",
		"reservation_date",
		"reservation_time",
		"service_name",
		"notes",
		"status",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.ClientName,
		&res.ClientEmail,
		&res.Date,
		&res.Time,
		&res.ServiceName,
		&res.Notes,
		&res.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// ListByDate получает все активные резервации на дату
// В транзакции добавляет FOR UPDATE: два конкурирующих коммита на один слот
// увидят друг друга и один из них откатится
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_name",
		"client_email",
		"reservation_date",
		"reservation_time",
		"service_name",
		"notes",
		"status",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"reservation_date": date}).
		Where(squirrel.NotEq{"status": domain.ReservationCancelled}).
		OrderBy("reservation_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListByDateRange получает активные резервации в окне дат (для статистики)
func (r *Repository) ListByDateRange(ctx context.Context, fromDate, toDate time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_name",
		"client_email",
		"reservation_date",
		"reservation_time",
		"service_name",
		"notes",
		"status",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.GtOrEq{"reservation_date": fromDate}).
		Where(squirrel.LtOrEq{"reservation_date": toDate}).
		Where(squirrel.NotEq{"status": domain.ReservationCancelled}).
		OrderBy("reservation_date ASC, reservation_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс резерваций
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.ClientName,
			&res.ClientEmail,
			&res.Date,
			&res.Time,
			&res.ServiceName,
			&res.Notes,
			&res.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

package blockedslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/BIM-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// Repository репозиторий для работы с блокировками слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет одну блокировку
// Повторная блокировка уже заблокированной пары (date, time) не создает
// дубликат: запись обновляется (upsert по уникальному индексу даты и времени,
// NULL время для all-day блокировок хранится как пустая строка в индексе)
func (r *Repository) Insert(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var timeValue interface{}
	if slot.Time != nil {
		timeValue = slot.Time.String()
	}

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns(
			"block_date",
			"block_time",
			"reason",
		).
		Values(
			slot.Date,
			timeValue,
			slot.Reason,
		).
		Suffix(`ON CONFLICT (block_date, COALESCE(block_time, '')) DO UPDATE
			SET reason = EXCLUDED.reason, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// List получает блокировки с опциональным окном дат
// Без фильтра возвращает все активные записи
// Сортировка: дата ASC, затем время ASC (all-day записи первыми)
func (r *Repository) List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"block_date",
		"block_time",
		"reason",
		"created_at",
		"updated_at",
	).
		From("blocked_slots").
		OrderBy("block_date ASC, block_time ASC NULLS FIRST")

	// Фильтрация по окну дат
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"block_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"block_date": *filter.ToDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockedSlots(rows)
}

// ListByDate получает все блокировки на конкретную дату
// В транзакции добавляет FOR SHARE, чтобы конкурирующее удаление блокировки
// не прошло между проверкой и коммитом резервации
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"block_date",
		"block_time",
		"reason",
		"created_at",
		"updated_at",
	).
		From("blocked_slots").
		Where(squirrel.Eq{"block_date": date}).
		OrderBy("block_time ASC NULLS FIRST")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE")
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

	return r.scanBlockedSlots(rows)
}

// DeleteByID удаляет блокировку по ID
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}

// DeleteByDate удаляет все блокировки на дату (каскадное удаление дня)
// Возвращает количество удаленных записей
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"block_date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DeleteTimesByDate удаляет только per-time блокировки на дату, не трогая
// all-day запись. Используется при вставке all-day блокировки: частичные
// записи становятся избыточными и убираются из аудита оператора
func (r *Repository) DeleteTimesByDate(ctx context.Context, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"block_date": date}).
		Where(squirrel.NotEq{"block_time": nil}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteTimesByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteTimesByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteTimesByDate - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanBlockedSlots сканирует результаты запроса в слайс блокировок
func (r *Repository) scanBlockedSlots(rows *sql.Rows) ([]*domain.BlockedSlot, error) {
	slots := make([]*domain.BlockedSlot, 0)

	for rows.Next() {
		var slot domain.BlockedSlot
		var blockTime sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.Date,
			&blockTime,
			&slot.Reason,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBlockedSlots - scan row: %v", ErrScanRow, err)
		}

		if blockTime.Valid {
			t := types.TimeString(blockTime.String)
			slot.Time = &t
		}
		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlockedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/BIM-AvailabilityService/pkg/dbmetrics"
)

// serializationFailureCode код ошибки PostgreSQL при конфликте сериализации
const serializationFailureCode = "40001"

// maxRetries максимальное число повторов сериализуемой транзакции
const maxRetries = 3

// TransactionManager менеджер транзакций поверх dbmetrics.DB
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает менеджер транзакций с метриками
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
// При конфликте сериализации (40001) транзакция повторяется до maxRetries раз
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("txmanager: serializable transaction failed after %d attempts: %w", maxRetries, err)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}

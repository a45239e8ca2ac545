package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hallhub/SHB-ScheduleService/pkg/dbmetrics"
)

// TransactionManager управляет транзакциями поверх обычного *sql.DB,
// используется при выключенных метриках
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри serializable-транзакции
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin: %v", err)
	}

	wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}
	if err := fn(dbmetrics.WithTx(ctx, wrapped)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("simpletxmanager: rollback after %v: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit: %v", err)
	}
	return nil
}

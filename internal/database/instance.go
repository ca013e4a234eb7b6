package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
)

// instance implements contract.DataManager over the shared connection or,
// when db is nil, over an open transaction.
type instance struct {
	db      *DB
	standup contract.StandupRepo
}

// NewInstance creates the data manager used by the services.
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:      db,
		standup: newStandupRepo(db.conn),
	}
}

func newTxInstance(tx dbConn) *instance {
	return &instance{standup: newStandupRepo(tx)}
}

func (i *instance) Standup() contract.StandupRepo {
	return i.standup
}

// WithTransaction runs fn in a transaction that is committed when fn
// returns nil and rolled back otherwise. Calls made on the transactional
// instance join the running transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(newTxInstance(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

package database

import (
	"context"

	"github.com/diegoclair/slack-schedule-bot/internal/domain/contract"
	"github.com/pkg/errors"
)

// instance implements DataManager interface
type instance struct {
	db                  *DB
	channelRepo         contract.ChannelRepo
	scheduledActionRepo contract.ScheduledActionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := repoInstancesWithConn(db.conn)
	i.db = db
	return i
}

// repoInstancesWithConn creates repository instances over a connection or a transaction
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo:         newChannelRepo(db),
		scheduledActionRepo: newScheduledActionRepo(db),
	}
}

func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

func (i *instance) ScheduledAction() contract.ScheduledActionRepo {
	return i.scheduledActionRepo
}

// WithTransaction executes fn within a database transaction. Calls nested inside
// fn reuse the same transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	if err := fn(repoInstancesWithConn(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback failed: %v", rbErr)
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit transaction")
}

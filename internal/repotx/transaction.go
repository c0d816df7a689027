// Package repotx guards transactions on the object repository so that
// every transaction that is opened ends up either committed or aborted,
// no matter which way the calling code exits.
package repotx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sentry "github.com/getsentry/sentry-go"
	"gitlab.com/flatkit/publisher/internal/log"
)

// ErrTransactionDone is returned when the transaction was already
// committed or rolled back.
var ErrTransactionDone = errors.New("transaction was already committed or rolled back")

var logger = log.Default()

// Repository is the transactional capability set of the object
// repository. The repository permits at most one open transaction at a
// time and enforces that itself; this package does not serialize
// concurrent guards.
type Repository interface {
	PrepareTransaction(ctx context.Context) error
	CommitTransaction(ctx context.Context) error
	AbortTransaction(ctx context.Context) error
}

// Transaction is an open transaction on a Repository. It is finished
// by exactly one call to Commit or Rollback; deferring Rollback right
// after Begin guarantees the transaction is aborted on every exit path
// that did not commit, including panics.
type Transaction struct {
	repo             Repository
	commitOrRollback sync.Once
}

// Begin prepares a transaction on repo and returns a guard bound to it.
// If preparing fails, the repository error is returned as-is and no
// transaction is open.
func Begin(ctx context.Context, repo Repository) (*Transaction, error) {
	if err := repo.PrepareTransaction(ctx); err != nil {
		return nil, err
	}
	begunTotal.Inc()
	return &Transaction{repo: repo}, nil
}

// Commit commits the transaction. Commit is single-shot: when the
// repository fails the commit, the transaction is aborted right away
// and the commit error is returned as-is. Either way the guard is
// finished afterwards and further calls return ErrTransactionDone.
func (tx *Transaction) Commit(ctx context.Context) error {
	err := ErrTransactionDone

	tx.commitOrRollback.Do(func() {
		if err = tx.repo.CommitTransaction(ctx); err != nil {
			tx.abort(ctx)
			return
		}
		committedTotal.Inc()
	})

	return err
}

// Rollback aborts the transaction unless it was already finished, in
// which case it returns ErrTransactionDone and leaves the repository
// alone. It is meant to be deferred immediately after Begin.
func (tx *Transaction) Rollback(ctx context.Context) error {
	err := ErrTransactionDone

	tx.commitOrRollback.Do(func() {
		tx.abort(ctx)
		err = nil
	})

	return err
}

// abort ends the transaction via the repository's abort primitive. An
// abort that fails leaves the repository with a dangling transaction in
// undefined state, which no caller can recover from, so it escalates
// instead of returning.
func (tx *Transaction) abort(ctx context.Context) {
	if err := tx.repo.AbortTransaction(ctx); err != nil {
		abortFailedTotal.Inc()
		sentry.CaptureException(err)
		logger.WithError(err).Error("repotx: aborting the transaction failed")
		panic(fmt.Sprintf("repotx: aborting the transaction must not fail: %v", err))
	}
	abortedTotal.Inc()
}

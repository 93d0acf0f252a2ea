package app

import (
	"context"
	"time"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Runner executes transactions one at a time. Every call runs in its own
// cache wrap over the store, so a call either applies all of its changes
// or none of them.
type Runner struct {
	store   claimable.CacheableKVStore
	handler claimable.Handler
	chainID string
	logger  log.Logger
}

// NewRunner returns a runner executing handler against store. A nil
// logger discards all messages.
func NewRunner(store claimable.CacheableKVStore, handler claimable.Handler, chainID string, logger log.Logger) *Runner {
	if !claimable.IsValidChainID(chainID) {
		panic("invalid chain ID: " + chainID)
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Runner{
		store:   store,
		handler: handler,
		chainID: chainID,
		logger:  logger,
	}
}

// ChainID returns the chain the runner executes transactions for.
func (r *Runner) ChainID() string {
	return r.chainID
}

// Check validates the transaction at given time. Changes made by the
// handler are always discarded.
func (r *Runner) Check(now time.Time, tx claimable.Tx) (_ *claimable.CheckResult, err error) {
	cache := r.store.CacheWrap()
	defer cache.Discard()
	defer errors.Recover(&err)

	ctx := r.context(now, "check_tx", tx)
	return r.handler.Check(ctx, cache, tx)
}

// Deliver executes the transaction at given time. Changes are written to
// the store only if the handler returns no error.
func (r *Runner) Deliver(now time.Time, tx claimable.Tx) (*claimable.DeliverResult, error) {
	cache := r.store.CacheWrap()
	ctx := r.context(now, "deliver_tx", tx)

	res, err := r.deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write cache")
	}
	return res, nil
}

func (r *Runner) deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (_ *claimable.DeliverResult, err error) {
	defer errors.Recover(&err)
	return r.handler.Deliver(ctx, db, tx)
}

func (r *Runner) context(now time.Time, call string, tx claimable.Tx) claimable.Context {
	ctx := claimable.WithLogger(context.Background(), r.logger)
	ctx = claimable.WithChainID(ctx, r.chainID)
	ctx = claimable.WithBlockTime(ctx, now)
	return claimable.WithLogInfo(ctx, "call", call, "path", claimable.GetPath(tx))
}

package app

import (
	"time"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ claimable.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (Recovery) Check(ctx claimable.Context, store claimable.KVStore, tx claimable.Tx, next claimable.Checker) (_ *claimable.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx claimable.Context, store claimable.KVStore, tx claimable.Tx, next claimable.Deliverer) (_ *claimable.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ claimable.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (Logging) Check(ctx claimable.Context, store claimable.KVStore, tx claimable.Tx, next claimable.Checker) (*claimable.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (Logging) Deliver(ctx claimable.Context, store claimable.KVStore, tx claimable.Tx, next claimable.Deliverer) (*claimable.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx claimable.Context, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := claimable.GetLogger(ctx).With("duration", delta/time.Microsecond)
	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}

package escrow

import (
	"time"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
)

// Holds returns true if a claim made at given time satisfies the time
// bound. Both bounds are inclusive.
func (tb TimeBound) Holds(now time.Time) bool {
	unix := now.Unix()
	if unix < 0 {
		// Before the epoch every timestamp is in the future.
		return tb.Kind == Before
	}
	switch tb.Kind {
	case Before:
		return uint64(unix) <= tb.Timestamp
	case After:
		return uint64(unix) >= tb.Timestamp
	}
	return false
}

// currentTime returns the block time carried by the context.
func currentTime(ctx claimable.Context) (time.Time, error) {
	now, ok := claimable.BlockTime(ctx)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in context")
	}
	return now, nil
}

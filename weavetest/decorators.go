package weavetest

import "github.com/iov-one/claimable"

// Decorator is a mock claimable.Decorator. It returns CheckErr or
// DeliverErr without calling the next handler when set.
type Decorator struct {
	Calls
	CheckErr   error
	DeliverErr error
}

var _ claimable.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx, next claimable.Checker) (*claimable.CheckResult, error) {
	d.checks++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx, next claimable.Deliverer) (*claimable.DeliverResult, error) {
	d.delivers++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler that runs h behind d.
func Decorate(h claimable.Handler, d claimable.Decorator) claimable.Handler {
	return decorated{h: h, d: d}
}

type decorated struct {
	h claimable.Handler
	d claimable.Decorator
}

func (s decorated) Check(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.h)
}

func (s decorated) Deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.h)
}

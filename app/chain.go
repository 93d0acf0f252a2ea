package app

import (
	"reflect"

	"github.com/iov-one/claimable"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []claimable.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (often a Router),
returns a Handler that will execute this whole stack.

  app.ChainDecorators(
    app.NewLogging(),
    app.NewRecovery(),
    sigs.NewDecorator(),
  ).WithHandler(
    router,
  )
*/
func ChainDecorators(chain ...claimable.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...claimable.Decorator) Decorators {
	chain = cutoffNil(chain)
	newChain := make([]claimable.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(newChain, d.chain...)
	newChain = append(newChain, chain...)
	return Decorators{newChain}
}

// cutoffNil returns given slice without nil values.
func cutoffNil(ds []claimable.Decorator) []claimable.Decorator {
	res := make([]claimable.Decorator, 0, len(ds))
	for _, d := range ds {
		if d == nil {
			continue
		}
		if v := reflect.ValueOf(d); v.Kind() == reflect.Ptr && v.IsNil() {
			continue
		}
		res = append(res, d)
	}
	return res
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h claimable.Handler) claimable.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a
// specific Handler. Simplified version of a closure.
type step struct {
	d    claimable.Decorator
	next claimable.Handler
}

var _ claimable.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx claimable.Context, store claimable.KVStore, tx claimable.Tx) (*claimable.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx claimable.Context, store claimable.KVStore, tx claimable.Tx) (*claimable.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}

package app

import (
	"context"
	"testing"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/store"
	"github.com/iov-one/claimable/weavetest"
	"github.com/iov-one/claimable/weavetest/assert"
)

func TestChain(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	var none *weavetest.Decorator
	h := &weavetest.Handler{}

	stack := ChainDecorators(c1, NewLogging(), none, NewRecovery(), c2).WithHandler(h)

	ctx := context.Background()
	_, err := stack.Check(ctx, nil, nil)
	assert.Nil(t, err)
	_, err = stack.Deliver(ctx, nil, nil)
	assert.Nil(t, err)

	assert.Equal(t, 2, c1.Total())
	assert.Equal(t, 2, c2.Total())
	assert.Equal(t, 2, h.Total())

	// An error stops the chain.
	c2.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, nil, nil)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 1, h.Delivers())
}

func TestRecovery(t *testing.T) {
	stack := ChainDecorators(NewRecovery()).WithHandler(writeHandler{key: []byte("k"), panic: true})
	db := store.MemStore()

	_, err := stack.Deliver(context.Background(), db, nil)
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = stack.Check(context.Background(), db, nil)
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestChainKeepsOriginal(t *testing.T) {
	base := ChainDecorators(&weavetest.Decorator{})
	a := base.Chain(&weavetest.Decorator{DeliverErr: errors.ErrHuman})
	b := base.Chain(&weavetest.Decorator{})

	h := &weavetest.Handler{}
	_, err := b.WithHandler(h).Deliver(context.Background(), nil, nil)
	assert.Nil(t, err)
	_, err = a.WithHandler(h).Deliver(context.Background(), nil, nil)
	assert.IsErr(t, errors.ErrHuman, err)

	var _ claimable.Handler = a.WithHandler(h)
}

package app

import (
	"context"
	"testing"

	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/weavetest"
	"github.com/iov-one/claimable/weavetest/assert"
)

func TestRouter(t *testing.T) {
	var (
		good = &weavetest.Handler{}
		bad  = &weavetest.Handler{CheckErr: errors.ErrUnauthorized, DeliverErr: errors.ErrUnauthorized}
	)

	r := NewRouter()
	r.Handle("escrow/good", good)
	r.Handle("bad", bad)

	assert.Panics(t, func() { r.Handle("escrow/good", good) })
	assert.Panics(t, func() { r.Handle("l:7", good) })

	ctx := context.Background()

	_, err := r.Check(ctx, nil, txOf("escrow/good"))
	assert.Nil(t, err)
	_, err = r.Deliver(ctx, nil, txOf("escrow/good"))
	assert.Nil(t, err)
	assert.Equal(t, 2, good.Total())

	_, err = r.Deliver(ctx, nil, txOf("bad"))
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 1, bad.Delivers())

	_, err = r.Deliver(ctx, nil, txOf("missing"))
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Check(ctx, nil, txOf("missing"))
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = r.Check(ctx, nil, &testTx{})
	assert.IsErr(t, errors.ErrMsg, err)
}

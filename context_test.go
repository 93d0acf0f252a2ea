package claimable

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/claimable/weavetest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestBlockTime(t *testing.T) {
	ctx := context.Background()
	if _, ok := BlockTime(ctx); ok {
		t.Fatal("block time must not be present")
	}

	now := time.Unix(12345, 0)
	ctx = WithBlockTime(ctx, now)
	got, ok := BlockTime(ctx)
	assert.Equal(t, true, ok)
	assert.Equal(t, now, got)

	assert.Panics(t, func() { WithBlockTime(ctx, now) })
}

func TestChainID(t *testing.T) {
	ctx := context.Background()
	assert.Panics(t, func() { GetChainID(ctx) })
	assert.Panics(t, func() { WithChainID(ctx, "bad") })

	ctx = WithChainID(ctx, "test-chain")
	assert.Equal(t, "test-chain", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "other-chain") })
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(ctx))

	logger := log.NewNopLogger()
	ctx = WithLogger(ctx, logger)
	assert.Equal(t, logger, GetLogger(ctx))

	ctx = WithLogInfo(ctx, "instance", "one")
	if GetLogger(ctx) == nil {
		t.Fatal("logger must be set")
	}
}

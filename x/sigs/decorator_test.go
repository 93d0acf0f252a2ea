package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/store"
	"github.com/iov-one/claimable/weavetest"
	"github.com/iov-one/claimable/weavetest/assert"
)

func TestDecorator(t *testing.T) {
	const chainID = "deco-chain"
	ctx := claimable.WithChainID(context.Background(), chainID)
	key := weavetest.NewKey()
	unsigned := &signedTx{payload: []byte("some call")}

	cases := map[string]struct {
		decorator   Decorator
		tx          claimable.Tx
		wantErr     *errors.Error
		wantSigners []claimable.Condition
	}{
		"signed": {
			decorator:   NewDecorator(),
			tx:          sign(unsigned, key, chainID, 0),
			wantSigners: []claimable.Condition{key.PublicKey().Condition()},
		},
		"unsigned is rejected by default": {
			decorator: NewDecorator(),
			tx:        unsigned,
			wantErr:   errors.ErrUnauthorized,
		},
		"unsigned passes when allowed": {
			decorator:   NewDecorator().AllowMissingSigs(),
			tx:          unsigned,
			wantSigners: []claimable.Condition{},
		},
		"invalid signature is rejected even when missing are allowed": {
			decorator: NewDecorator().AllowMissingSigs(),
			tx:        sign(unsigned, key, "another-chain", 0),
			wantErr:   errors.ErrUnauthorized,
		},
		"invalid signature is dropped when ignored": {
			decorator:   NewDecorator().AllowMissingSigs().IgnoreInvalidSigs(),
			tx:          sign(unsigned, key, "another-chain", 0),
			wantSigners: []claimable.Condition{},
		},
		"bad sequence is rejected when invalid are ignored": {
			decorator: NewDecorator().AllowMissingSigs().IgnoreInvalidSigs(),
			tx:        sign(unsigned, key, chainID, 5),
			wantErr:   ErrInvalidSequence,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var h signersRecorder
			stack := weavetest.Decorate(&h, tc.decorator)

			_, err := stack.Check(ctx, store.MemStore(), tc.tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("check: unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantSigners, h.signers)
			}

			h.signers = nil
			_, err = stack.Deliver(ctx, store.MemStore(), tc.tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("deliver: unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantSigners, h.signers)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()

	var auth Authenticate
	assert.Equal(t, 0, len(auth.GetConditions(context.Background())))

	ctx := withSigners(context.Background(), []claimable.Condition{a})
	assert.Equal(t, []claimable.Condition{a}, auth.GetConditions(ctx))
	assert.Equal(t, true, auth.HasAddress(ctx, a.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, b.Address()))
}

package cash

import (
	"testing"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/store"
)

func TestGenesis(t *testing.T) {
	const genesis = `[
		{"address": "0102030405060708090021222324252627282930",
		 "coins": [{"asset": "FOO", "amount": "1000"}, {"asset": "BAR", "amount": 3}]}
	]`
	owner := claimable.Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x30}

	cases := map[string]struct {
		opts    claimable.Options
		wantErr *errors.Error
		wantFoo int64
	}{
		"no data":         {opts: claimable.Options{}},
		"other extension": {opts: claimable.Options{"foo": []byte(`"bar"`)}},
		"accounts": {
			opts:    claimable.Options{"cash": []byte(genesis)},
			wantFoo: 1000,
		},
		"bad format": {
			opts:    claimable.Options{"cash": []byte(`{"address": 1}`)},
			wantErr: errors.ErrInput,
		},
		"bad address": {
			opts:    claimable.Options{"cash": []byte(`[{"address": "1234", "coins": []}]`)},
			wantErr: errors.ErrInput,
		},
		"zero issuance": {
			opts:    claimable.Options{"cash": []byte(`[{"address": "0102030405060708090021222324252627282930", "coins": [{"asset": "FOO", "amount": "0"}]}]`)},
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Initializer{}.FromGenesis(tc.opts, db)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			ctrl := NewController(NewBucket())
			assertBalance(t, ctrl, db, owner, "FOO", tc.wantFoo)
		})
	}
}

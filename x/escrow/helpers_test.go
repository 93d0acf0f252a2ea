package escrow

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/x/cash"
	"github.com/iov-one/claimable/weavetest"
	"github.com/iov-one/claimable/weavetest/assert"
)

const testAsset coin.AssetID = "FOO"

var testInstance = []byte("escrow-instance-1")

// atTime returns a context with block time set to given UNIX seconds.
func atTime(unix int64) claimable.Context {
	return claimable.WithBlockTime(context.Background(), time.Unix(unix, 0))
}

func amount(v int64) coin.Amount {
	return coin.NewAmount(v)
}

func newTestController(auth *weavetest.Auth) (*Controller, cash.BaseController) {
	bank := cash.NewController(cash.NewBucket())
	return NewController(testInstance, auth, bank, nil), bank
}

func mint(t testing.TB, db claimable.KVStore, bank cash.BaseController, owner claimable.Address, v int64) {
	t.Helper()
	assert.Nil(t, bank.CoinMint(db, owner, coin.NewCoin(v, testAsset)))
}

func assertBalance(t testing.TB, db claimable.ReadOnlyKVStore, bank cash.BaseController, owner claimable.Address, want int64) {
	t.Helper()
	got, err := bank.Balance(db, owner, testAsset)
	assert.Nil(t, err)
	if got.Cmp(amount(want)) != 0 {
		t.Fatalf("want %s balance of %d, got %s", owner, want, got)
	}
}

func assertState(t testing.TB, db claimable.ReadOnlyKVStore, ctrl *Controller, want State) {
	t.Helper()
	got, err := ctrl.State(db)
	assert.Nil(t, err)
	if got != want {
		t.Fatalf("want %s state, got %s", want, got)
	}
}

func addresses(conds ...claimable.Condition) []claimable.Address {
	res := make([]claimable.Address, len(conds))
	for i, c := range conds {
		res[i] = c.Address()
	}
	return res
}

// recordingMover records transfers and returns err for each of them.
type recordingMover struct {
	calls int
	err   error
}

func (m *recordingMover) MoveCoins(db claimable.KVStore, src, dest claimable.Address, amount coin.Coin) error {
	m.calls++
	return m.err
}

var _ CoinMover = (*recordingMover)(nil)

// msgTx carries a single message.
type msgTx struct {
	msg claimable.Msg
}

func (t *msgTx) GetMsg() (claimable.Msg, error) { return t.msg, nil }
func (t *msgTx) Marshal() ([]byte, error)        { return t.msg.Marshal() }
func (t *msgTx) Unmarshal([]byte) error          { return errors.Wrap(errors.ErrHuman, "not supported") }

package app

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
)

type testMsg struct {
	path string
}

func (m *testMsg) Path() string             { return m.path }
func (m *testMsg) Validate() error          { return nil }
func (m *testMsg) Marshal() ([]byte, error) { return []byte(m.path), nil }
func (m *testMsg) Unmarshal(raw []byte) error {
	m.path = string(raw)
	return nil
}

type testTx struct {
	msg claimable.Msg
}

func (t *testTx) GetMsg() (claimable.Msg, error) { return t.msg, nil }
func (t *testTx) Marshal() ([]byte, error)        { return t.msg.Marshal() }
func (t *testTx) Unmarshal([]byte) error          { return errors.Wrap(errors.ErrHuman, "not supported") }

func txOf(path string) claimable.Tx {
	return &testTx{msg: &testMsg{path: path}}
}

// writeHandler writes a key on every call and returns err or panics
// afterwards.
type writeHandler struct {
	key   []byte
	err   error
	panic bool
}

func (h writeHandler) Check(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.CheckResult, error) {
	if err := h.run(db); err != nil {
		return nil, err
	}
	return &claimable.CheckResult{}, nil
}

func (h writeHandler) Deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.DeliverResult, error) {
	if err := h.run(db); err != nil {
		return nil, err
	}
	return &claimable.DeliverResult{}, nil
}

func (h writeHandler) run(db claimable.KVStore) error {
	if err := db.Set(h.key, []byte("written")); err != nil {
		return err
	}
	if h.panic {
		panic("handler panic")
	}
	return h.err
}

package claimable

import (
	"testing"

	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/weavetest/assert"
)

type demoMsg struct {
	Num  int
	Text string
	err  error
}

func (demoMsg) Path() string               { return "demo/path" }
func (m demoMsg) Validate() error          { return m.err }
func (demoMsg) Marshal() ([]byte, error)   { return []byte("foo"), nil }
func (*demoMsg) Unmarshal(bz []byte) error { return nil }

var _ Msg = (*demoMsg)(nil)

type otherMsg struct {
	demoMsg
}

type demoTx struct {
	msg Msg
	err error
}

func (demoTx) Marshal() ([]byte, error)   { return nil, nil }
func (*demoTx) Unmarshal(bz []byte) error { return nil }
func (t demoTx) GetMsg() (Msg, error)     { return t.msg, t.err }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		wantErr *errors.Error
		wantNum int
	}{
		"success": {
			tx:      &demoTx{msg: &demoMsg{Num: 17, Text: "hello"}},
			dest:    &demoMsg{},
			wantNum: 17,
		},
		"invalid message": {
			tx:      &demoTx{msg: &demoMsg{err: errors.ErrInput}},
			dest:    &demoMsg{},
			wantErr: errors.ErrInput,
		},
		"no message": {
			tx:      &demoTx{},
			dest:    &demoMsg{},
			wantErr: errors.ErrMsg,
		},
		"message cannot be decoded": {
			tx:      &demoTx{err: errors.ErrInput},
			dest:    &demoMsg{},
			wantErr: errors.ErrInput,
		},
		"wrong destination type": {
			tx:      &demoTx{msg: &demoMsg{Num: 1}},
			dest:    &otherMsg{},
			wantErr: errors.ErrType,
		},
		"destination not a pointer": {
			tx:      &demoTx{msg: &demoMsg{Num: 1}},
			dest:    demoMsg{},
			wantErr: errors.ErrHuman,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantNum, tc.dest.(*demoMsg).Num)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "demo/path", GetPath(&demoTx{msg: &demoMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&demoTx{}))
}

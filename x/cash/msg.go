package cash

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/errors"
)

// Ensure we implement the Msg interface
var _ claimable.Msg = (*SendMsg)(nil)

const maxMemoSize int = 128

// SendMsg moves an amount of an asset from the source to the destination
// account. The source must sign the transaction.
type SendMsg struct {
	Src    claimable.Address
	Dest   claimable.Address
	Amount coin.Coin
	Memo   string
}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	var errs error
	if !s.Amount.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrapf(errors.ErrAmount, "non-positive %s", s.Amount))
	}
	errs = errors.AppendField(errs, "Amount", s.Amount.Validate())
	errs = errors.AppendField(errs, "Src", s.Src.Validate())
	errs = errors.AppendField(errs, "Dest", s.Dest.Validate())
	if len(s.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.Wrap(errors.ErrInput, "memo too long"))
	}
	return errs
}

func (s *SendMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, s.Src)
	e.Bytes(2, s.Dest)
	if err := e.Message(3, &s.Amount); err != nil {
		return nil, err
	}
	e.String(4, s.Memo)
	return e.Result(), nil
}

func (s *SendMsg) Unmarshal(raw []byte) error {
	*s = SendMsg{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			s.Src, err = d.Bytes()
		case 2:
			s.Dest, err = d.Bytes()
		case 3:
			err = d.Message(&s.Amount)
		case 4:
			s.Memo, err = d.String()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "send msg field %d", field)
		}
	}
	return nil
}

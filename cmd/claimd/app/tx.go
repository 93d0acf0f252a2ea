package app

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/x/cash"
	"github.com/iov-one/claimable/x/escrow"
	"github.com/iov-one/claimable/x/sigs"
)

// Tx carries exactly one message and the signatures authorizing it.
type Tx struct {
	Signatures []*sigs.StdSignature
	DepositMsg *escrow.DepositMsg
	ClaimMsg   *escrow.ClaimMsg
	SendMsg    *cash.SendMsg
}

var (
	_ claimable.Tx  = (*Tx)(nil)
	_ sigs.SignedTx = (*Tx)(nil)
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(raw []byte) (claimable.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(raw); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg returns the message carried by the transaction.
func (tx *Tx) GetMsg() (claimable.Msg, error) {
	var msgs []claimable.Msg
	if tx.DepositMsg != nil {
		msgs = append(msgs, tx.DepositMsg)
	}
	if tx.ClaimMsg != nil {
		msgs = append(msgs, tx.ClaimMsg)
	}
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "transaction without a message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "transaction with %d messages", len(msgs))
	}
}

// SetMsg replaces the message carried by the transaction.
func (tx *Tx) SetMsg(msg claimable.Msg) error {
	tx.DepositMsg, tx.ClaimMsg, tx.SendMsg = nil, nil, nil
	switch m := msg.(type) {
	case *escrow.DepositMsg:
		tx.DepositMsg = m
	case *escrow.ClaimMsg:
		tx.ClaimMsg = m
	case *cash.SendMsg:
		tx.SendMsg = m
	default:
		return errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return nil
}

// GetSignatures returns all signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized transaction without signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signatures = nil
	return unsigned.Marshal()
}

func (tx *Tx) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	for _, sig := range tx.Signatures {
		if err := e.Message(1, sig); err != nil {
			return nil, err
		}
	}
	if tx.DepositMsg != nil {
		if err := e.Message(2, tx.DepositMsg); err != nil {
			return nil, err
		}
	}
	if tx.ClaimMsg != nil {
		if err := e.Message(3, tx.ClaimMsg); err != nil {
			return nil, err
		}
	}
	if tx.SendMsg != nil {
		if err := e.Message(4, tx.SendMsg); err != nil {
			return nil, err
		}
	}
	return e.Result(), nil
}

func (tx *Tx) Unmarshal(raw []byte) error {
	*tx = Tx{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			var sig sigs.StdSignature
			if err = d.Message(&sig); err == nil {
				tx.Signatures = append(tx.Signatures, &sig)
			}
		case 2:
			tx.DepositMsg = new(escrow.DepositMsg)
			err = d.Message(tx.DepositMsg)
		case 3:
			tx.ClaimMsg = new(escrow.ClaimMsg)
			err = d.Message(tx.ClaimMsg)
		case 4:
			tx.SendMsg = new(cash.SendMsg)
			err = d.Message(tx.SendMsg)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "tx field %d", field)
		}
	}
	return nil
}

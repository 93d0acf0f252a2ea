package sigs

import (
	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/crypto"
	"github.com/iov-one/claimable/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the sigs.Decorator
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the Msg.
	// Signatures are computed over these bytes so they must have a
	// deterministic serialization.
	GetSignBytes() ([]byte, error)

	// Signatures returns the signature of signers who signed the Msg.
	GetSignatures() []*StdSignature
}

// StdSignature is a signature of a transaction created by the owner of
// the public key, bound to the signer sequence.
type StdSignature struct {
	Sequence  int64
	Pubkey    *crypto.PublicKey
	Signature *crypto.Signature
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.Pubkey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if s.Signature == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}

func (s *StdSignature) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Varint(1, s.Sequence)
	if s.Pubkey != nil {
		if err := e.Message(2, s.Pubkey); err != nil {
			return nil, err
		}
	}
	if s.Signature != nil {
		if err := e.Message(3, s.Signature); err != nil {
			return nil, err
		}
	}
	return e.Result(), nil
}

func (s *StdSignature) Unmarshal(raw []byte) error {
	*s = StdSignature{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			s.Sequence, err = d.Varint()
		case 2:
			s.Pubkey = &crypto.PublicKey{}
			err = d.Message(s.Pubkey)
		case 3:
			s.Signature = &crypto.Signature{}
			err = d.Message(s.Signature)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "signature field %d", field)
		}
	}
	return nil
}

package crypto

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/errors"
)

// ExtensionName is used for the Conditions we get from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() claimable.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

var (
	_ PubKey = (*PublicKey)(nil)
	_ Signer = (*PrivateKey)(nil)

	_ claimable.Persistent = (*PublicKey)(nil)
	_ claimable.Persistent = (*PrivateKey)(nil)
	_ claimable.Persistent = (*Signature)(nil)
)

// PublicKey is a public key of one of the supported algorithms. Currently
// only ed25519 is supported.
type PublicKey struct {
	Ed25519 []byte
}

// PrivateKey is a private key of one of the supported algorithms.
type PrivateKey struct {
	Ed25519 []byte
}

// Signature is a signature created by one of the supported algorithms.
type Signature struct {
	Ed25519 []byte
}

// Address returns the address of the condition this key represents.
func (p *PublicKey) Address() claimable.Address {
	return p.Condition().Address()
}

func (p *PublicKey) Marshal() ([]byte, error) {
	return marshalOneOf(p.Ed25519), nil
}

func (p *PublicKey) Unmarshal(raw []byte) error {
	bz, err := unmarshalOneOf(raw)
	p.Ed25519 = bz
	return errors.Wrap(err, "public key")
}

func (p *PrivateKey) Marshal() ([]byte, error) {
	return marshalOneOf(p.Ed25519), nil
}

func (p *PrivateKey) Unmarshal(raw []byte) error {
	bz, err := unmarshalOneOf(raw)
	p.Ed25519 = bz
	return errors.Wrap(err, "private key")
}

func (s *Signature) Marshal() ([]byte, error) {
	return marshalOneOf(s.Ed25519), nil
}

func (s *Signature) Unmarshal(raw []byte) error {
	bz, err := unmarshalOneOf(raw)
	s.Ed25519 = bz
	return errors.Wrap(err, "signature")
}

// Each key type is stored under its own field number. Field 1 is ed25519.
func marshalOneOf(ed25519 []byte) []byte {
	e := codec.NewEncoder()
	e.Bytes(1, ed25519)
	return e.Result()
}

func unmarshalOneOf(raw []byte) ([]byte, error) {
	var res []byte
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return nil, err
		}
		switch field {
		case 1:
			if res, err = d.Bytes(); err != nil {
				return nil, err
			}
		default:
			if err := d.Skip(); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

package weavetest

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/crypto"
)

// NewKey returns a new random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a condition of a new random key.
func NewCondition() claimable.Condition {
	return NewKey().PublicKey().Condition()
}

// NewAddress returns an address of a new random key.
func NewAddress() claimable.Address {
	return NewCondition().Address()
}

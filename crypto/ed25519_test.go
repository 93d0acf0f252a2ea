package crypto

import (
	"bytes"
	"testing"

	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/weavetest/assert"
)

func TestEd25519Signing(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()

	msg := []byte("foobar")
	msg2 := []byte("dingbooms")

	sig, err := private.Sign(msg)
	assert.Nil(t, err)
	sig2, err := private.Sign(msg2)
	assert.Nil(t, err)

	bz, err := sig.Marshal()
	assert.Nil(t, err)
	bz2, err := sig2.Marshal()
	assert.Nil(t, err)

	if bytes.Equal(bz, bz2) {
		t.Fatal("marshaling different signatures produce the same binary representation")
	}

	if !public.Verify(msg, sig) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if !public.Verify(msg2, sig2) {
		t.Fatal("cannot verify a message signed with this public key")
	}

	if public.Verify(msg, sig2) {
		t.Fatal("verified message signature of the wrong message")
	}
	if public.Verify(msg2, sig) {
		t.Fatal("verified message signature of the wrong message")
	}

	if public.Verify(msg, &Signature{}) {
		t.Fatal("verified an empty signature of a message")
	}
	if public.Verify(msg, nil) {
		t.Fatal("verified a nil signature of a message")
	}
}

func TestEd25519Address(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	pub2 := GenPrivKeyEd25519().PublicKey()

	assert.Nil(t, pub.Condition().Validate())
	assert.Nil(t, pub2.Condition().Validate())
	if bytes.Equal(pub.Condition(), pub2.Condition()) {
		t.Fatal("two different keys must produce different conditions")
	}
	assert.Nil(t, pub.Address().Validate())
	if pub.Address().Equals(pub2.Address()) {
		t.Fatal("two different keys must produce different addresses")
	}
}

func TestSeedRestore(t *testing.T) {
	private := GenPrivKeyEd25519()
	restored, err := PrivKeyEd25519FromSeed(private.Seed())
	assert.Nil(t, err)
	assert.Equal(t, private.Ed25519, restored.Ed25519)

	_, err = PrivKeyEd25519FromSeed([]byte("short"))
	assert.IsErr(t, errors.ErrInput, err)
}

func TestKeySerialization(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()

	raw, err := public.Marshal()
	assert.Nil(t, err)
	var loaded PublicKey
	assert.Nil(t, loaded.Unmarshal(raw))
	assert.Equal(t, public.Ed25519, loaded.Ed25519)
	assert.Nil(t, loaded.Validate())

	raw, err = private.Marshal()
	assert.Nil(t, err)
	var loadedPriv PrivateKey
	assert.Nil(t, loadedPriv.Unmarshal(raw))
	assert.Equal(t, private.Ed25519, loadedPriv.Ed25519)
}

func TestPublicKeyValidate(t *testing.T) {
	assert.IsErr(t, errors.ErrEmpty, (&PublicKey{}).Validate())
	assert.IsErr(t, errors.ErrInput, (&PublicKey{Ed25519: []byte("short")}).Validate())
}

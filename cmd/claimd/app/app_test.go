package app

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/app"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/crypto"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/store"
	"github.com/iov-one/claimable/weavetest"
	"github.com/iov-one/claimable/weavetest/assert"
	"github.com/iov-one/claimable/x/cash"
	"github.com/iov-one/claimable/x/escrow"
	"github.com/iov-one/claimable/x/sigs"
	"github.com/stretchr/testify/require"
)

const testChainID = "test-chain"

func newTestApp(t *testing.T, funded claimable.Address) (*Application, claimable.CacheableKVStore) {
	t.Helper()
	db := store.MemStore()

	accounts, err := json.Marshal([]cash.GenesisAccount{
		{Address: funded, Coins: []coin.Coin{coin.NewCoin(1000, "FOO")}},
	})
	require.NoError(t, err)
	gen := &app.Genesis{
		ChainID:  testChainID,
		AppState: claimable.Options{"cash": accounts},
	}
	require.NoError(t, app.InitChain(db, gen, Initializers()))

	return Stack(db, testChainID, []byte("instance"), nil, nil), db
}

// signedTx wraps msg in a transaction signed by all given keys.
func signedTx(t *testing.T, db claimable.ReadOnlyKVStore, msg claimable.Msg, keys ...*crypto.PrivateKey) *Tx {
	t.Helper()
	return signedForChain(t, db, testChainID, msg, keys...)
}

// signedForChain is signedTx with a chain ID of choice.
func signedForChain(t *testing.T, db claimable.ReadOnlyKVStore, chainID string, msg claimable.Msg, keys ...*crypto.PrivateKey) *Tx {
	t.Helper()
	tx := new(Tx)
	require.NoError(t, tx.SetMsg(msg))
	for _, k := range keys {
		seq, err := sigs.NextSequence(db, k.PublicKey())
		require.NoError(t, err)
		sig, err := sigs.SignTx(k, tx, chainID, seq)
		require.NoError(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}
	return tx
}

func balance(t *testing.T, a *Application, db claimable.ReadOnlyKVStore, addr claimable.Address) int64 {
	t.Helper()
	got, err := a.Cash.Balance(db, addr, "FOO")
	require.NoError(t, err)
	return got.BigInt().Int64()
}

func TestEscrowThroughTransactions(t *testing.T) {
	depositor := weavetest.NewKey()
	c1, c2 := weavetest.NewKey(), weavetest.NewKey()
	a, db := newTestApp(t, depositor.PublicKey().Address())
	now := time.Unix(12345, 0)

	deposit := &escrow.DepositMsg{
		Depositor: depositor.PublicKey().Address(),
		Asset:     "FOO",
		Amount:    coin.NewAmount(800),
		Claimants: []claimable.Address{c1.PublicKey().Address(), c2.PublicKey().Address()},
		TimeBound: escrow.TimeBound{Kind: escrow.Before, Timestamp: 12346},
	}

	// Unsigned deposit is not authorized.
	_, err := a.Deliver(now, signedTx(t, db, deposit))
	assert.IsErr(t, escrow.ErrAuthorizationFailure, err)

	// Signed by someone else.
	_, err = a.Deliver(now, signedTx(t, db, deposit, c1))
	assert.IsErr(t, escrow.ErrAuthorizationFailure, err)
	seq, err := sigs.NextSequence(db, c1.PublicKey())
	require.NoError(t, err)
	require.Equal(t, int64(0), seq, "failed call must not consume the sequence")

	tx := signedTx(t, db, deposit, depositor)
	_, err = a.Check(now, tx)
	require.NoError(t, err)
	_, err = a.Deliver(now, tx)
	require.NoError(t, err)
	require.Equal(t, int64(200), balance(t, a, db, depositor.PublicKey().Address()))
	require.Equal(t, int64(800), balance(t, a, db, a.Escrow.Custody()))

	// Replaying the same signed call is rejected by the signature check.
	_, err = a.Deliver(now, tx)
	assert.IsErr(t, sigs.ErrInvalidSequence, err)

	claim := &escrow.ClaimMsg{Claimant: c2.PublicKey().Address()}
	_, err = a.Deliver(now, signedTx(t, db, claim, c1))
	assert.IsErr(t, escrow.ErrAuthorizationFailure, err)

	_, err = a.Deliver(now, signedTx(t, db, claim, c2))
	require.NoError(t, err)
	require.Equal(t, int64(800), balance(t, a, db, c2.PublicKey().Address()))
	require.Equal(t, int64(0), balance(t, a, db, a.Escrow.Custody()))

	state, err := a.Escrow.State(db)
	require.NoError(t, err)
	require.Equal(t, escrow.Consumed, state)

	_, err = a.Deliver(now, signedTx(t, db, &escrow.ClaimMsg{Claimant: c1.PublicKey().Address()}, c1))
	assert.IsErr(t, escrow.ErrNoActiveEscrow, err)
}

func TestFailedDepositRollsBack(t *testing.T) {
	depositor := weavetest.NewKey()
	a, db := newTestApp(t, depositor.PublicKey().Address())

	deposit := &escrow.DepositMsg{
		Depositor: depositor.PublicKey().Address(),
		Asset:     "FOO",
		Amount:    coin.NewAmount(1001),
		Claimants: []claimable.Address{weavetest.NewAddress()},
		TimeBound: escrow.TimeBound{Kind: escrow.After, Timestamp: 1},
	}
	_, err := a.Deliver(time.Unix(5, 0), signedTx(t, db, deposit, depositor))
	assert.IsErr(t, escrow.ErrTransferFailure, err)

	seq, err := sigs.NextSequence(db, depositor.PublicKey())
	require.NoError(t, err)
	require.Equal(t, int64(0), seq)
	require.Equal(t, int64(1000), balance(t, a, db, depositor.PublicKey().Address()))

	state, err := a.Escrow.State(db)
	require.NoError(t, err)
	require.Equal(t, escrow.Uninitialized, state)
}

func TestSendThroughTransactions(t *testing.T) {
	alice := weavetest.NewKey()
	bob := weavetest.NewAddress()
	a, db := newTestApp(t, alice.PublicKey().Address())

	send := &cash.SendMsg{Src: alice.PublicKey().Address(), Dest: bob, Amount: coin.NewCoin(10, "FOO")}
	_, err := a.Deliver(time.Unix(5, 0), signedTx(t, db, send, alice))
	require.NoError(t, err)
	require.Equal(t, int64(10), balance(t, a, db, bob))
}

func TestTxSerialization(t *testing.T) {
	key := weavetest.NewKey()
	db := store.MemStore()
	msg := &escrow.ClaimMsg{Claimant: key.PublicKey().Address()}
	tx := signedTx(t, db, msg, key)

	raw, err := tx.Marshal()
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	require.Equal(t, tx, decoded)

	got, err := decoded.GetMsg()
	require.NoError(t, err)
	require.Equal(t, msg, got)

	// Sign bytes do not depend on signatures.
	unsigned := &Tx{ClaimMsg: msg}
	want, err := unsigned.GetSignBytes()
	require.NoError(t, err)
	have, err := tx.GetSignBytes()
	require.NoError(t, err)
	require.Equal(t, want, have)
}

func TestTxMessages(t *testing.T) {
	var tx Tx
	_, err := tx.GetMsg()
	assert.IsErr(t, errors.ErrMsg, err)

	tx.ClaimMsg = &escrow.ClaimMsg{}
	tx.SendMsg = &cash.SendMsg{}
	_, err = tx.GetMsg()
	assert.IsErr(t, errors.ErrMsg, err)

	assert.Nil(t, tx.SetMsg(&escrow.DepositMsg{}))
	msg, err := tx.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, "escrow/deposit", msg.Path())
}

func TestInvalidSignatureIsAnAuthorizationFailure(t *testing.T) {
	depositor := weavetest.NewKey()
	claimant := weavetest.NewKey()
	a, db := newTestApp(t, depositor.PublicKey().Address())
	now := time.Unix(100, 0)

	deposit := &escrow.DepositMsg{
		Depositor: depositor.PublicKey().Address(),
		Asset:     "FOO",
		Amount:    coin.NewAmount(300),
		Claimants: []claimable.Address{claimant.PublicKey().Address()},
		TimeBound: escrow.TimeBound{Kind: escrow.After, Timestamp: 50},
	}

	_, err := a.Deliver(now, signedForChain(t, db, "other-chain", deposit, depositor))
	assert.IsErr(t, escrow.ErrAuthorizationFailure, err)

	// A tampered signature does not verify either.
	tampered := signedTx(t, db, deposit, depositor)
	tampered.Signatures[0].Signature.Ed25519[0] ^= 0xff
	_, err = a.Deliver(now, tampered)
	assert.IsErr(t, escrow.ErrAuthorizationFailure, err)

	state, err := a.Escrow.State(db)
	require.NoError(t, err)
	require.Equal(t, escrow.Uninitialized, state)

	_, err = a.Deliver(now, signedTx(t, db, deposit, depositor))
	require.NoError(t, err)

	// Initialization is reported before the signature is looked at.
	_, err = a.Deliver(now, signedForChain(t, db, "other-chain", deposit, depositor))
	assert.IsErr(t, escrow.ErrAlreadyInitialized, err)

	claim := &escrow.ClaimMsg{Claimant: claimant.PublicKey().Address()}
	_, err = a.Deliver(now, signedForChain(t, db, "other-chain", claim, claimant))
	assert.IsErr(t, escrow.ErrAuthorizationFailure, err)

	seq, err := sigs.NextSequence(db, claimant.PublicKey())
	require.NoError(t, err)
	require.Equal(t, int64(0), seq, "invalid signature must not consume the sequence")

	_, err = a.Deliver(now, signedTx(t, db, claim, claimant))
	require.NoError(t, err)
	require.Equal(t, int64(300), balance(t, a, db, claimant.PublicKey().Address()))
}

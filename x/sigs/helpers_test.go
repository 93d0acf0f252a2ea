package sigs

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/crypto"
)

// signedTx is a transaction carrying an opaque payload that all signatures
// are computed over.
type signedTx struct {
	payload []byte
	sigs    []*StdSignature
}

var (
	_ SignedTx     = (*signedTx)(nil)
	_ claimable.Tx = (*signedTx)(nil)
)

func (t *signedTx) GetMsg() (claimable.Msg, error) { return nil, nil }

func (t *signedTx) Marshal() ([]byte, error) { return t.payload, nil }

func (t *signedTx) Unmarshal(raw []byte) error {
	t.payload = raw
	return nil
}

func (t *signedTx) GetSignBytes() ([]byte, error) { return t.payload, nil }

func (t *signedTx) GetSignatures() []*StdSignature { return t.sigs }

// sign returns the tx with a signature of given key appended.
func sign(tx *signedTx, key crypto.Signer, chainID string, seq int64) *signedTx {
	sig, err := SignTx(key, tx, chainID, seq)
	if err != nil {
		panic(err)
	}
	return &signedTx{
		payload: tx.payload,
		sigs:    append(append([]*StdSignature{}, tx.sigs...), sig),
	}
}

// signersRecorder is a handler remembering who signed the last call.
type signersRecorder struct {
	signers []claimable.Condition
}

func (h *signersRecorder) Check(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.CheckResult, error) {
	h.signers = Authenticate{}.GetConditions(ctx)
	return &claimable.CheckResult{}, nil
}

func (h *signersRecorder) Deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.DeliverResult, error) {
	h.signers = Authenticate{}.GetConditions(ctx)
	return &claimable.DeliverResult{}, nil
}

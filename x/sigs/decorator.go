/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.
*/
package sigs

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
)

// Decorator verifies the signatures and adds them to the context
type Decorator struct {
	allowMissingSigs  bool
	ignoreInvalidSigs bool
}

var _ claimable.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator,
// which appends the chainID before checking the signature,
// and requires at least one signature to be present
func NewDecorator() Decorator {
	return Decorator{
		allowMissingSigs: false,
	}
}

// AllowMissingSigs allows us to pass along items with no signatures.
// Handlers then decide themselves what an unsigned call may do.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// IgnoreInvalidSigs drops signatures that do not verify instead of
// rejecting the transaction. Their owners are not added to the context.
// Sequence errors are still returned, so a replayed transaction fails.
func (d Decorator) IgnoreInvalidSigs() Decorator {
	d.ignoreInvalidSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx, next claimable.Checker) (*claimable.CheckResult, error) {
	ctx, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx, next claimable.Deliverer) (*claimable.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d Decorator) authenticate(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (claimable.Context, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return ctx, nil
	}

	chainID := claimable.GetChainID(ctx)
	verify := VerifyTxSignatures
	if d.ignoreInvalidSigs {
		verify = verifyValidSignatures
	}
	signers, err := verify(db, stx, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), nil
}

// verifyValidSignatures returns the signers of all signatures that verify.
// Unauthorized signatures are skipped, any other failure is returned.
func verifyValidSignatures(db claimable.KVStore, tx SignedTx, chainID string) ([]claimable.Condition, error) {
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get sign bytes")
	}
	sigs := tx.GetSignatures()

	signers := make([]claimable.Condition, 0, len(sigs))
	for _, sig := range sigs {
		signer, err := VerifySignature(db, sig, bz, chainID)
		switch {
		case err == nil:
			signers = append(signers, signer)
		case errors.ErrUnauthorized.Is(err):
			continue
		default:
			return nil, err
		}
	}
	return signers, nil
}

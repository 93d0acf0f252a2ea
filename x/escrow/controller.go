package escrow

import (
	"encoding/hex"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/orm"
	"github.com/iov-one/claimable/x"
)

// CoinMover moves funds between addresses. Implemented by x/cash.
type CoinMover interface {
	MoveCoins(db claimable.KVStore, src, dest claimable.Address, amount coin.Coin) error
}

// State of an escrow instance.
type State int

const (
	Uninitialized State = iota
	Escrowed
	Consumed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Escrowed:
		return "escrowed"
	case Consumed:
		return "consumed"
	default:
		return "unknown"
	}
}

// Controller runs the escrow state machine of a single instance.
//
// Deposit and Claim may write to the store before they fail. They must be
// executed inside a cache wrap that is discarded on error, as the app
// runner does.
type Controller struct {
	instance []byte
	auth     x.Authenticator
	bank     CoinMover
	metrics  *Metrics
	records  orm.ModelBucket
	flags    orm.Bucket
}

// NewController returns a controller of the escrow identified by instance.
// Metrics are optional.
func NewController(instance []byte, auth x.Authenticator, bank CoinMover, metrics *Metrics) *Controller {
	return &Controller{
		instance: append([]byte(nil), instance...),
		auth:     auth,
		bank:     bank,
		metrics:  metrics,
		records:  orm.NewModelBucket(recordBucket),
		flags:    orm.NewBucket(flagBucket),
	}
}

// Custody returns the address holding funds of this escrow.
func (c *Controller) Custody() claimable.Address {
	return Condition(c.instance).Address()
}

// Deposit locks amount of asset in the escrow. It can succeed only once in
// the lifetime of the instance.
func (c *Controller) Deposit(
	ctx claimable.Context,
	db claimable.KVStore,
	depositor claimable.Address,
	asset coin.AssetID,
	amount coin.Amount,
	claimants []claimable.Address,
	timeBound TimeBound,
) error {
	err := c.deposit(ctx, db, depositor, asset, amount, claimants, timeBound)
	c.metrics.deposit(err)
	return err
}

func (c *Controller) deposit(
	ctx claimable.Context,
	db claimable.KVStore,
	depositor claimable.Address,
	asset coin.AssetID,
	amount coin.Amount,
	claimants []claimable.Address,
	timeBound TimeBound,
) error {
	if len(claimants) > MaxClaimants {
		return errors.Wrapf(ErrTooManyClaimants, "%d claimants, max %d", len(claimants), MaxClaimants)
	}
	initialized, err := c.initialized(db)
	if err != nil {
		return err
	}
	if initialized {
		return ErrAlreadyInitialized
	}
	if !c.auth.HasAddress(ctx, depositor) {
		return errors.Wrap(ErrAuthorizationFailure, "depositor signature missing")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(ErrTransferFailure, "amount must be positive, got %s", amount)
	}

	escrow := Escrow{
		Asset:     asset,
		Amount:    amount,
		Claimants: claimants,
		TimeBound: timeBound,
	}
	if err := escrow.Validate(); err != nil {
		return errors.Wrap(err, "escrow")
	}

	deposit := coin.Coin{Asset: asset, Amount: amount}
	if err := c.bank.MoveCoins(db, depositor, c.Custody(), deposit); err != nil {
		return errors.Wrapf(ErrTransferFailure, "deposit %s: %s", deposit, err)
	}
	if err := c.records.Put(db, c.instance, &escrow); err != nil {
		return errors.Wrap(err, "save escrow")
	}
	if err := db.Set(c.flags.DBKey(c.instance), []byte{1}); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	claimable.GetLogger(ctx).Info("escrow deposit",
		"instance", hex.EncodeToString(c.instance),
		"asset", asset,
		"amount", amount.String(),
		"depositor", depositor,
		"claimants", len(claimants))
	return nil
}

// Claim transfers the whole escrowed amount to claimant and consumes the
// escrow.
func (c *Controller) Claim(ctx claimable.Context, db claimable.KVStore, claimant claimable.Address) error {
	err := c.claim(ctx, db, claimant)
	c.metrics.claim(err)
	return err
}

func (c *Controller) claim(ctx claimable.Context, db claimable.KVStore, claimant claimable.Address) error {
	if !c.auth.HasAddress(ctx, claimant) {
		return errors.Wrap(ErrAuthorizationFailure, "claimant signature missing")
	}
	escrow, err := c.Current(db)
	if err != nil {
		return err
	}
	now, err := currentTime(ctx)
	if err != nil {
		return err
	}
	if !escrow.TimeBound.Holds(now) {
		return errors.Wrapf(ErrTimeConditionUnmet, "claim at %d, bound %s %d",
			now.Unix(), escrow.TimeBound.Kind, escrow.TimeBound.Timestamp)
	}
	if !escrow.IsClaimant(claimant) {
		return ErrClaimantNotAllowed
	}

	payout := coin.Coin{Asset: escrow.Asset, Amount: escrow.Amount}
	if err := c.bank.MoveCoins(db, c.Custody(), claimant, payout); err != nil {
		return errors.Wrapf(ErrTransferFailure, "claim %s: %s", payout, err)
	}
	if err := c.records.Delete(db, c.instance); err != nil {
		return errors.Wrap(err, "delete escrow")
	}

	claimable.GetLogger(ctx).Info("escrow claimed",
		"instance", hex.EncodeToString(c.instance),
		"asset", escrow.Asset,
		"amount", escrow.Amount.String(),
		"claimant", claimant)
	return nil
}

// Current returns the active escrow or ErrNoActiveEscrow.
func (c *Controller) Current(db claimable.ReadOnlyKVStore) (*Escrow, error) {
	var escrow Escrow
	switch err := c.records.One(db, c.instance, &escrow); {
	case err == nil:
		return &escrow, nil
	case errors.ErrNotFound.Is(err):
		return nil, ErrNoActiveEscrow
	default:
		return nil, errors.Wrap(err, "load escrow")
	}
}

// State returns the lifecycle state of the instance.
func (c *Controller) State(db claimable.ReadOnlyKVStore) (State, error) {
	initialized, err := c.initialized(db)
	if err != nil || !initialized {
		return Uninitialized, err
	}
	switch err := c.records.Has(db, c.instance); {
	case err == nil:
		return Escrowed, nil
	case errors.ErrNotFound.Is(err):
		return Consumed, nil
	default:
		return Uninitialized, err
	}
}

func (c *Controller) initialized(db claimable.ReadOnlyKVStore) (bool, error) {
	ok, err := db.Has(c.flags.DBKey(c.instance))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

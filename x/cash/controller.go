package cash

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/errors"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to the
	// destination account. This operation is atomic.
	MoveCoins(db claimable.KVStore, src, dest claimable.Address, amount coin.Coin) error
}

// CoinMinter is an interface to create new coins.
type CoinMinter interface {
	CoinMint(db claimable.KVStore, dest claimable.Address, amount coin.Coin) error
}

// Balancer is an interface to query the amount of an asset an account holds.
type Balancer interface {
	Balance(db claimable.ReadOnlyKVStore, owner claimable.Address, asset coin.AssetID) (coin.Amount, error)
}

// Controller is the functionality needed by cash.Handler and by other
// extensions that transfer assets.
type Controller interface {
	CoinMover
	CoinMinter
	Balancer
}

// BaseController is a simple implementation of controller. Wallets are
// stored in the bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of the asset held by the owner. An account
// that was never funded holds zero of everything.
func (c BaseController) Balance(db claimable.ReadOnlyKVStore, owner claimable.Address, asset coin.AssetID) (coin.Amount, error) {
	w, err := c.bucket.Get(db, owner)
	if err != nil {
		return coin.Amount{}, err
	}
	if w == nil {
		return coin.Amount{}, nil
	}
	return w.Coins.Balance(asset), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db claimable.KVStore, src, dest claimable.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer of %s", amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if have := sender.Coins.Balance(amount.Asset); have.Cmp(amount.Amount) < 0 {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %s %s, wants %s", src, have, amount.Asset, amount)
	}
	if sender.Coins, err = sender.Coins.Subtract(amount); err != nil {
		return err
	}

	// The sender is saved before the recipient is loaded so that moving
	// funds to self leaves the balance unchanged.
	if err := c.bucket.Save(db, src, sender); err != nil {
		return err
	}
	return c.add(db, dest, amount)
}

// CoinMint attempts to add the given amount of coins to the destination
// address. Fails if it overflows the wallet.
func (c BaseController) CoinMint(db claimable.KVStore, dest claimable.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive issuance of %s", amount)
	}
	return c.add(db, dest, amount)
}

func (c BaseController) add(db claimable.KVStore, dest claimable.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if recipient.Coins, err = recipient.Coins.Add(amount); err != nil {
		return errors.Wrapf(err, "crediting %s", dest)
	}
	return c.bucket.Save(db, dest, recipient)
}

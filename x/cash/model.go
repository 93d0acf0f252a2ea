package cash

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds the balance of every asset an address owns.
type Wallet struct {
	Coins coin.Coins `json:"coins"`
}

var _ orm.Model = (*Wallet)(nil)

// Validate requires that all coins are in alphabetical order, unique and
// not negative.
func (w *Wallet) Validate() error {
	if err := w.Coins.Validate(); err != nil {
		return err
	}
	for _, c := range w.Coins {
		if c.Amount.IsNegative() {
			return errors.Wrapf(errors.ErrAmount, "negative balance of %s", c.Asset)
		}
	}
	return nil
}

func (w *Wallet) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	for _, c := range w.Coins {
		if err := e.Message(1, c); err != nil {
			return nil, err
		}
	}
	return e.Result(), nil
}

func (w *Wallet) Unmarshal(raw []byte) error {
	*w = Wallet{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		if field != 1 {
			if err := d.Skip(); err != nil {
				return err
			}
			continue
		}
		var c coin.Coin
		if err := d.Message(&c); err != nil {
			return errors.Wrap(err, "wallet coin")
		}
		w.Coins = append(w.Coins, &c)
	}
	return nil
}

// Bucket is a type-safe wrapper around orm.ModelBucket keeping one wallet
// per address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName),
	}
}

// Get returns the wallet of given owner or nil if there is none.
func (b Bucket) Get(db claimable.ReadOnlyKVStore, owner claimable.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, owner, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// GetOrCreate returns the wallet of given owner, or a new empty wallet
// that is not saved yet.
func (b Bucket) GetOrCreate(db claimable.ReadOnlyKVStore, owner claimable.Address) (*Wallet, error) {
	w, err := b.Get(db, owner)
	if err != nil || w != nil {
		return w, err
	}
	return &Wallet{}, nil
}

// Save stores the wallet of given owner.
func (b Bucket) Save(db claimable.KVStore, owner claimable.Address, w *Wallet) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "wallet owner")
	}
	return b.Put(db, owner, w)
}

package coin

import (
	"sort"

	"github.com/iov-one/claimable/errors"
)

// Coins represents a set of coins. Most operations on the coin set require
// normalized form: sorted by asset, no duplicates, no zero values.
type Coins []*Coin

// Clone returns a copy that can be safely modified
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make([]*Coin, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return Coins(res)
}

// Balance returns the amount held of given asset. Missing asset is zero.
func (cs Coins) Balance(asset AssetID) Amount {
	if c, _ := cs.findCoin(asset); c != nil {
		return c.Amount
	}
	return Amount{}
}

// Add returns a new set with the holdings increased by c. Use a negative
// amount to decrease holdings. The receiver is not modified.
func (cs Coins) Add(c Coin) (Coins, error) {
	res := cs.Clone()
	// We ignore zero values
	if c.Amount.IsZero() {
		return res, nil
	}

	has, i := res.findCoin(c.Asset)
	// add to existing coin
	if has != nil {
		sum, err := has.Add(c)
		if err != nil {
			return nil, err
		}
		// if the result is zero, remove this asset
		if sum.Amount.IsZero() {
			return append(res[:i], res[i+1:]...), nil
		}
		res[i] = &sum
		return res, nil
	}
	// insert keeping the order (with one alloc)
	res = append(res, nil)
	copy(res[i+1:], res[i:])
	res[i] = c.Clone()
	return res, nil
}

// Subtract returns a new set with the holdings of c decreased.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	neg, err := Amount{}.Sub(c.Amount)
	if err != nil {
		return nil, err
	}
	return cs.Add(Coin{Asset: c.Asset, Amount: neg})
}

// Validate requires that all coins are valid, sorted by asset, unique and
// not zero.
func (cs Coins) Validate() error {
	for i, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrEmpty, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.Amount.IsZero() {
			return errors.Wrapf(errors.ErrAmount, "zero %s", c.Asset)
		}
		if i > 0 && cs[i-1].Asset >= c.Asset {
			return errors.Wrap(errors.ErrState, "coins not sorted or not unique")
		}
	}
	return nil
}

// findCoin returns the coin of given asset and its index. If not found,
// the index is where the coin should be inserted.
func (cs Coins) findCoin(asset AssetID) (*Coin, int) {
	i := sort.Search(len(cs), func(i int) bool {
		return cs[i].Asset >= asset
	})
	if i < len(cs) && cs[i].Asset == asset {
		return cs[i], i
	}
	return nil, i
}

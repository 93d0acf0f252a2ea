package cash

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use claimable.Address, so address in hex, not base64
type GenesisAccount struct {
	Address claimable.Address `json:"address"`
	Coins   []coin.Coin       `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ claimable.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts claimable.Options, db claimable.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	ctrl := NewController(NewBucket())
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		for _, c := range acct.Coins {
			if err := ctrl.CoinMint(db, acct.Address, c); err != nil {
				return errors.Wrapf(err, "account %s", acct.Address)
			}
		}
	}
	return nil
}

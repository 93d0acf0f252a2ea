package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
)

// Genesis file format
type Genesis struct {
	ChainID  string            `json:"chain_id"`
	AppState claimable.Options `json:"app_state"`
}

// LoadGenesis reads a genesis file.
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "unmarshal genesis: %s", err)
	}
	if !claimable.IsValidChainID(gen.ChainID) {
		return nil, errors.Wrapf(errors.ErrInput, "invalid chain ID %q", gen.ChainID)
	}
	return &gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...claimable.Initializer) claimable.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []claimable.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts claimable.Options, kv claimable.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}

// InitChain stores the chain ID and applies the genesis state. All changes
// are written only if every initializer succeeds. A store can be initialized
// only once.
func InitChain(store claimable.CacheableKVStore, gen *Genesis, init claimable.Initializer) error {
	cache := store.CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if err := init.FromGenesis(gen.AppState, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "genesis")
	}
	return cache.Write()
}

const chainIDKey = "_wv:chainID"

// LoadChainID returns the chain id stored if any
func LoadChainID(kv claimable.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv claimable.KVStore, chainID string) error {
	if !claimable.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if exists {
		return errors.Wrap(errors.ErrDuplicate, "chain id already set")
	}
	return kv.Set(k, []byte(chainID))
}

//nolint
package store

import "github.com/iov-one/claimable"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = claimable.ReadOnlyKVStore
type SetDeleter = claimable.SetDeleter
type KVStore = claimable.KVStore
type CacheableKVStore = claimable.CacheableKVStore
type KVCacheWrap = claimable.KVCacheWrap
type CommitKVStore = claimable.CommitKVStore
type CommitID = claimable.CommitID

// Batch can write multiple ops atomically to an underlying KVStore
type Batch interface {
	SetDeleter
	Write() error
}

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}

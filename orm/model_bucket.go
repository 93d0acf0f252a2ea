package orm

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	claimable.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db claimable.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given key exists, ErrNotFound
	// otherwise.
	Has(db claimable.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. The model is validated first.
	Put(db claimable.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db claimable.KVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance that stores models under
// the prefix of a bucket with given name.
func NewModelBucket(name string) ModelBucket {
	return &modelBucket{
		b: NewBucket(name),
	}
}

type modelBucket struct {
	b Bucket
}

func (mb *modelBucket) One(db claimable.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(mb.b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %T", dest)
	}
	return nil
}

func (mb *modelBucket) Has(db claimable.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%q not in %s", key, mb.b.name)
	}
	return nil
}

func (mb *modelBucket) Put(db claimable.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %T", m)
	}
	if raw == nil {
		raw = []byte{}
	}
	if err := db.Set(mb.b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot write")
	}
	return nil
}

func (mb *modelBucket) Delete(db claimable.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.b.DBKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete")
	}
	return nil
}

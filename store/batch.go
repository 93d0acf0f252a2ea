package store

import (
	"fmt"

	"github.com/iov-one/claimable/errors"
)

type opKind int32

const (
	setKind opKind = iota + 1
	delKind
)

// Op is either set or delete
type Op struct {
	kind  opKind
	key   []byte
	value []byte // only for set
}

// Apply performs the operation on given store.
func (o Op) Apply(out SetDeleter) error {
	switch o.kind {
	case setKind:
		return out.Set(o.key, o.value)
	case delKind:
		return out.Delete(o.key)
	default:
		return errors.Wrapf(errors.ErrDatabase, "unknown kind: %d", o.kind)
	}
}

// IsSetOp returns true if this is a set operation, and the key-value
// pair that is set.
func (o Op) IsSetOp() (*Model, bool) {
	if o.kind != setKind {
		return nil, false
	}
	return &Model{Key: o.key, Value: o.value}, true
}

// IsDeleteOp returns true if this is a delete operation, and the deleted
// key.
func (o Op) IsDeleteOp() ([]byte, bool) {
	if o.kind != delKind {
		return nil, false
	}
	return o.key, true
}

func (o Op) String() string {
	if o.kind == setKind {
		return fmt.Sprintf("set %X=%X", o.key, o.value)
	}
	return fmt.Sprintf("del %X", o.key)
}

// SetOp is a helper to create a set operation
func SetOp(key, value []byte) Op {
	return Op{
		kind:  setKind,
		key:   key,
		value: value,
	}
}

// DelOp is a helper to create a del operation
func DelOp(key []byte) Op {
	return Op{
		kind: delKind,
		key:  key,
	}
}

// NonAtomicBatch just piles up ops and executes them later
// on the underlying store. Can be used when there is no better
// option (for in-memory stores).
//
// NOTE: Never use this for KVStores that are persistent
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
	// log keeps every op ever written, for inspection in tests
	log []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch to be later writen
// to the KVStore
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{
		out: out,
	}
}

// Set adds a set operation to the batch
func (b *NonAtomicBatch) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	if value == nil {
		return errors.Wrap(errors.ErrDatabase, "nil value")
	}
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

// Delete adds a delete operation to the batch
func (b *NonAtomicBatch) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write writes all the ops to the underlying store and resets
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.log = append(b.log, b.ops...)
	b.ops = nil
	return nil
}

// ShowOps returns all operations written through this batch so far
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.log
}

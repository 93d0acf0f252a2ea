package sigs

import (
	"math"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/crypto"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// UserData is the state kept for every signer: the public key and the
// sequence the next signature must use.
type UserData struct {
	Pubkey   *crypto.PublicKey
	Sequence int64
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	var errs error
	if seq := u.Sequence; seq < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	} else if seq > 0 && u.Pubkey == nil {
		errs = errors.Append(errs, errors.Field("Sequence", ErrInvalidSequence, "needs Pubkey"))
	}
	if u.Pubkey != nil {
		errs = errors.AppendField(errs, "Pubkey", u.Pubkey.Validate())
	}
	return errs
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
// Before incrementing the sequence, this function is testing for a value
// overflow.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", u.Sequence, expected)
	}
	if u.Sequence == math.MaxInt64 {
		return errors.Wrap(errors.ErrOverflow, "sequence")
	}
	u.Sequence++
	return nil
}

func (u *UserData) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if u.Pubkey != nil {
		if err := e.Message(1, u.Pubkey); err != nil {
			return nil, err
		}
	}
	e.Varint(2, u.Sequence)
	return e.Result(), nil
}

func (u *UserData) Unmarshal(raw []byte) error {
	*u = UserData{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			u.Pubkey = &crypto.PublicKey{}
			err = d.Message(u.Pubkey)
		case 2:
			u.Sequence, err = d.Varint()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "user data field %d", field)
		}
	}
	return nil
}

// Bucket stores UserData under the address of the signer public key.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for managing user data
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName),
	}
}

// GetOrCreate loads the user data of given key owner. A missing entry
// results in a new UserData with zero sequence, that is not saved yet.
func (b Bucket) GetOrCreate(db claimable.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var user UserData
	switch err := b.One(db, pubkey.Address(), &user); {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}

// Save stores the user data under the address of its public key.
func (b Bucket) Save(db claimable.KVStore, user *UserData) error {
	if user.Pubkey == nil {
		return errors.Wrap(errors.ErrEmpty, "pubkey")
	}
	return b.Put(db, user.Pubkey.Address(), user)
}

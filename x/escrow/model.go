package escrow

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/orm"
)

const (
	// MaxClaimants is the highest number of addresses an escrow can be
	// claimed by.
	MaxClaimants = 10

	recordBucket = "escrow"
	flagBucket   = "escinit"
)

// TimeBoundKind tells which side of the timestamp a claim is allowed on.
type TimeBoundKind int32

const (
	// Before allows claims until the timestamp (inclusive).
	Before TimeBoundKind = 1
	// After allows claims from the timestamp on (inclusive).
	After TimeBoundKind = 2
)

func (k TimeBoundKind) String() string {
	switch k {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "unknown"
	}
}

// ParseTimeBoundKind returns the kind represented by given name.
func ParseTimeBoundKind(s string) (TimeBoundKind, error) {
	switch strings.ToLower(s) {
	case "before":
		return Before, nil
	case "after":
		return After, nil
	default:
		return 0, errors.Wrapf(errors.ErrInput, "unknown time bound kind %q", s)
	}
}

func (k TimeBoundKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *TimeBoundKind) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "time bound kind must be a string")
	}
	kind, err := ParseTimeBoundKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// TimeBound restricts when an escrow can be claimed.
type TimeBound struct {
	Kind TimeBoundKind `json:"kind"`
	// Timestamp is in UNIX seconds.
	Timestamp uint64 `json:"timestamp"`
}

// Validate returns an error if the kind is not known.
func (tb TimeBound) Validate() error {
	if tb.Kind != Before && tb.Kind != After {
		return errors.Wrapf(errors.ErrInput, "time bound kind %d", tb.Kind)
	}
	return nil
}

func (tb TimeBound) String() string {
	return tb.Kind.String() + " " + claimable.UnixTime(tb.Timestamp).String()
}

func (tb *TimeBound) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Varint(1, int64(tb.Kind))
	e.Uvarint(2, tb.Timestamp)
	return e.Result(), nil
}

func (tb *TimeBound) Unmarshal(raw []byte) error {
	*tb = TimeBound{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			var kind int32
			kind, err = d.Int32()
			tb.Kind = TimeBoundKind(kind)
		case 2:
			tb.Timestamp, err = d.Uvarint()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "time bound field %d", field)
		}
	}
	return nil
}

// Escrow is the record of funds locked by a deposit. It exists only while
// the custody address holds exactly Amount of Asset.
type Escrow struct {
	Asset     coin.AssetID        `json:"asset"`
	Amount    coin.Amount         `json:"amount"`
	Claimants []claimable.Address `json:"claimants"`
	TimeBound TimeBound           `json:"time_bound"`
}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow is well formed and holds a positive amount.
func (e *Escrow) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Asset", e.Asset.Validate())
	if !e.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrapf(errors.ErrAmount, "%s", e.Amount))
	}
	if len(e.Claimants) > MaxClaimants {
		errs = errors.AppendField(errs, "Claimants", ErrTooManyClaimants)
	}
	for i, c := range e.Claimants {
		if err := c.Validate(); err != nil {
			errs = errors.AppendField(errs, "Claimants."+strconv.Itoa(i), err)
		}
	}
	errs = errors.AppendField(errs, "TimeBound", e.TimeBound.Validate())
	return errs
}

// IsClaimant returns true if given address may claim the escrow.
func (e *Escrow) IsClaimant(addr claimable.Address) bool {
	for _, c := range e.Claimants {
		if c.Equals(addr) {
			return true
		}
	}
	return false
}

func (e *Escrow) Marshal() ([]byte, error) {
	enc := codec.NewEncoder()
	enc.String(1, string(e.Asset))
	if !e.Amount.IsZero() {
		enc.Bytes(2, e.Amount.Bytes())
	}
	claimants := make([][]byte, len(e.Claimants))
	for i, c := range e.Claimants {
		claimants[i] = c
	}
	enc.RepeatedBytes(3, claimants)
	if err := enc.Message(4, &e.TimeBound); err != nil {
		return nil, err
	}
	return enc.Result(), nil
}

func (e *Escrow) Unmarshal(raw []byte) error {
	*e = Escrow{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			var s string
			s, err = d.String()
			e.Asset = coin.AssetID(s)
		case 2:
			var bz []byte
			if bz, err = d.Bytes(); err == nil {
				e.Amount, err = coin.AmountFromBytes(bz)
			}
		case 3:
			var bz []byte
			bz, err = d.Bytes()
			e.Claimants = append(e.Claimants, claimable.Address(bz))
		case 4:
			err = d.Message(&e.TimeBound)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "escrow field %d", field)
		}
	}
	return nil
}

// Condition returns the condition of the escrow instance. Funds of the
// instance are held on the address of this condition.
func Condition(instance []byte) claimable.Condition {
	return claimable.NewCondition("escrow", "instance", instance)
}

package coin

import (
	"encoding/binary"
	"encoding/json"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/iov-one/claimable/errors"
)

// Amount is a signed 128-bit integer. Its zero value is zero.
//
// The value is stored in two's complement as the high (signed) and the low
// (unsigned) 64 bits. All arithmetic is checked and returns ErrOverflow
// instead of wrapping around.
type Amount struct {
	hi int64
	lo uint64
}

var (
	maxAmount = Amount{hi: 1<<63 - 1, lo: 1<<64 - 1}
	minAmount = Amount{hi: -1 << 63, lo: 0}

	bigMax = maxAmount.BigInt()
	bigMin = minAmount.BigInt()
)

// NewAmount returns an amount representing given integer value.
func NewAmount(v int64) Amount {
	if v < 0 {
		return Amount{hi: -1, lo: uint64(v)}
	}
	return Amount{lo: uint64(v)}
}

// MaxAmount returns the largest representable amount, 2^127-1.
func MaxAmount() Amount { return maxAmount }

// MinAmount returns the smallest representable amount, -2^127.
func MinAmount() Amount { return minAmount }

// AmountFromBig converts given integer into an amount. It fails if the
// value does not fit in 128 bits.
func AmountFromBig(v *big.Int) (Amount, error) {
	if v.Cmp(bigMax) > 0 || v.Cmp(bigMin) < 0 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s exceeds 128 bits", v)
	}
	mask := new(big.Int).SetUint64(1<<64 - 1)
	lo := new(big.Int).And(v, mask).Uint64()
	hi := new(big.Int).Rsh(v, 64).Int64()
	return Amount{hi: hi, lo: lo}, nil
}

// ParseAmount parses a decimal integer representation.
func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, errors.Wrapf(errors.ErrInput, "invalid amount %q", s)
	}
	return AmountFromBig(v)
}

// BigInt returns the value as an arbitrary precision integer.
func (a Amount) BigInt() *big.Int {
	v := new(big.Int).SetInt64(a.hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(a.lo))
}

// Add returns the sum of both amounts.
func (a Amount) Add(b Amount) (Amount, error) {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	uhi, _ := bits.Add64(uint64(a.hi), uint64(b.hi), carry)
	res := Amount{hi: int64(uhi), lo: lo}
	// Overflow happens only when both operands have the same sign and
	// the result sign differs.
	if (a.hi < 0) == (b.hi < 0) && (res.hi < 0) != (a.hi < 0) {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return res, nil
}

// Sub returns the difference of both amounts.
func (a Amount) Sub(b Amount) (Amount, error) {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	uhi, _ := bits.Sub64(uint64(a.hi), uint64(b.hi), borrow)
	res := Amount{hi: int64(uhi), lo: lo}
	if (a.hi < 0) != (b.hi < 0) && (res.hi < 0) != (a.hi < 0) {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s - %s", a, b)
	}
	return res, nil
}

// Cmp compares two amounts and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0 or +1 depending on the sign of the value.
func (a Amount) Sign() int {
	switch {
	case a.hi < 0:
		return -1
	case a.hi == 0 && a.lo == 0:
		return 0
	default:
		return 1
	}
}

// IsZero returns true if the value is zero.
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// IsPositive returns true if the value is greater than zero.
func (a Amount) IsPositive() bool {
	return a.Sign() > 0
}

// IsNegative returns true if the value is lower than zero.
func (a Amount) IsNegative() bool {
	return a.Sign() < 0
}

func (a Amount) String() string {
	if a.hi == 0 {
		return strconv.FormatUint(a.lo, 10)
	}
	if a.hi == -1 && a.lo >= 1<<63 {
		return strconv.FormatInt(int64(a.lo), 10)
	}
	return a.BigInt().String()
}

// Bytes returns the 16 bytes big-endian two's complement representation.
func (a Amount) Bytes() []byte {
	bz := make([]byte, 16)
	binary.BigEndian.PutUint64(bz[:8], uint64(a.hi))
	binary.BigEndian.PutUint64(bz[8:], a.lo)
	return bz
}

// AmountFromBytes decodes a value serialized with Amount.Bytes. An empty
// slice decodes to zero.
func AmountFromBytes(bz []byte) (Amount, error) {
	switch len(bz) {
	case 0:
		return Amount{}, nil
	case 16:
		return Amount{
			hi: int64(binary.BigEndian.Uint64(bz[:8])),
			lo: binary.BigEndian.Uint64(bz[8:]),
		}, nil
	default:
		return Amount{}, errors.Wrapf(errors.ErrInput, "amount must be 16 bytes, got %d", len(bz))
	}
}

// MarshalJSON encodes the amount as a decimal string, because JSON numbers
// cannot safely carry 128-bit values.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a decimal string and a JSON number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrInput, "amount must be a string or a number")
		}
		s = n.String()
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

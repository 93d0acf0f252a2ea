package coin

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/weavetest/assert"
)

func TestAmountArithmetic(t *testing.T) {
	cases := map[string]struct {
		a, b    Amount
		sum     string
		sumErr  *errors.Error
		diff    string
		diffErr *errors.Error
	}{
		"small values": {
			a: NewAmount(800), b: NewAmount(200), sum: "1000", diff: "600",
		},
		"negative result": {
			a: NewAmount(5), b: NewAmount(7), sum: "12", diff: "-2",
		},
		"carry into the high word": {
			a:    Amount{lo: 1<<64 - 1},
			b:    NewAmount(1),
			sum:  "18446744073709551616",
			diff: "18446744073709551614",
		},
		"maximum plus one overflows": {
			a: MaxAmount(), b: NewAmount(1), sumErr: errors.ErrOverflow, diff: "170141183460469231731687303715884105726",
		},
		"minimum minus one overflows": {
			a: MinAmount(), b: NewAmount(1), sum: "-170141183460469231731687303715884105727", diffErr: errors.ErrOverflow,
		},
		"zero minus minimum overflows": {
			a: Amount{}, b: MinAmount(), sum: "-170141183460469231731687303715884105728", diffErr: errors.ErrOverflow,
		},
		"mixed signs never overflow on add": {
			a: MaxAmount(), b: MinAmount(), sum: "-1", diffErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			sum, err := tc.a.Add(tc.b)
			if !tc.sumErr.Is(err) {
				t.Fatalf("unexpected add error: %+v", err)
			}
			if tc.sumErr == nil {
				assert.Equal(t, tc.sum, sum.String())
			}
			diff, err := tc.a.Sub(tc.b)
			if !tc.diffErr.Is(err) {
				t.Fatalf("unexpected sub error: %+v", err)
			}
			if tc.diffErr == nil {
				assert.Equal(t, tc.diff, diff.String())
			}
		})
	}
}

func TestAmountCmpAndSign(t *testing.T) {
	ordered := []Amount{
		MinAmount(),
		NewAmount(-1 << 40),
		NewAmount(-1),
		{},
		NewAmount(1),
		{lo: 1<<64 - 1},
		{hi: 1},
		MaxAmount(),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := ordered[i].Cmp(ordered[j]); got != want {
				t.Errorf("cmp(%s, %s): want %d, got %d", ordered[i], ordered[j], want, got)
			}
		}
	}

	assert.Equal(t, -1, NewAmount(-4).Sign())
	assert.Equal(t, 0, Amount{}.Sign())
	assert.Equal(t, 1, Amount{hi: 1}.Sign())
	assert.Equal(t, true, Amount{}.IsZero())
	assert.Equal(t, true, NewAmount(3).IsPositive())
	assert.Equal(t, true, MinAmount().IsNegative())
}

func TestAmountBigConversion(t *testing.T) {
	for _, s := range []string{
		"0",
		"1",
		"-1",
		"800",
		"-9223372036854775808",
		"18446744073709551616",
		"-18446744073709551617",
		"170141183460469231731687303715884105727",
		"-170141183460469231731687303715884105728",
	} {
		a, err := ParseAmount(s)
		assert.Nil(t, err)
		assert.Equal(t, s, a.String())
		assert.Equal(t, s, a.BigInt().String())

		b, err := AmountFromBytes(a.Bytes())
		assert.Nil(t, err)
		assert.Equal(t, 0, a.Cmp(b))
	}

	tooBig, _ := new(big.Int).SetString("170141183460469231731687303715884105728", 10)
	if _, err := AmountFromBig(tooBig); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow, got %+v", err)
	}
	if _, err := ParseAmount("12a"); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
	if _, err := AmountFromBytes([]byte{1, 2, 3}); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}

func TestAmountJSON(t *testing.T) {
	raw, err := json.Marshal(NewAmount(-42))
	assert.Nil(t, err)
	assert.Equal(t, `"-42"`, string(raw))

	var a Amount
	assert.Nil(t, json.Unmarshal([]byte(`"340282366920938463463374607431768211"`), &a))
	assert.Equal(t, "340282366920938463463374607431768211", a.String())

	assert.Nil(t, json.Unmarshal([]byte(`800`), &a))
	assert.Equal(t, "800", a.String())

	if err := json.Unmarshal([]byte(`{}`), &a); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}

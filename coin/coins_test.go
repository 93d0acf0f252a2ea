package coin

import (
	"testing"

	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/weavetest/assert"
)

func TestCoinsAdd(t *testing.T) {
	var cs Coins
	cs, err := cs.Add(NewCoin(10, "FOO"))
	assert.Nil(t, err)
	cs, err = cs.Add(NewCoin(5, "BAR"))
	assert.Nil(t, err)
	cs, err = cs.Add(NewCoin(7, "ZED"))
	assert.Nil(t, err)
	assert.Nil(t, cs.Validate())
	assert.Equal(t, 3, len(cs))
	assert.Equal(t, AssetID("BAR"), cs[0].Asset)

	// The receiver is not modified.
	more, err := cs.Add(NewCoin(5, "FOO"))
	assert.Nil(t, err)
	assert.Equal(t, "10", cs.Balance("FOO").String())
	assert.Equal(t, "15", more.Balance("FOO").String())

	// Reaching zero removes the entry.
	less, err := more.Subtract(NewCoin(15, "FOO"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(less))
	assert.Equal(t, true, less.Balance("FOO").IsZero())
	assert.Nil(t, less.Validate())

	// Zero values are ignored.
	same, err := less.Add(NewCoin(0, "NEW"))
	assert.Nil(t, err)
	assert.Equal(t, less, same)

	max := Coins{{Asset: "MAX", Amount: MaxAmount()}}
	if _, err := max.Add(NewCoin(1, "MAX")); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow, got %+v", err)
	}
}

func TestCoinsValidate(t *testing.T) {
	cases := map[string]struct {
		coins Coins
		want  *errors.Error
	}{
		"empty":      {coins: nil, want: nil},
		"sorted":     {coins: Coins{NewCoinp(1, "A"), NewCoinp(2, "B")}, want: nil},
		"unsorted":   {coins: Coins{NewCoinp(1, "B"), NewCoinp(2, "A")}, want: errors.ErrState},
		"duplicated": {coins: Coins{NewCoinp(1, "A"), NewCoinp(2, "A")}, want: errors.ErrState},
		"zero":       {coins: Coins{NewCoinp(0, "A")}, want: errors.ErrAmount},
		"nil coin":   {coins: Coins{nil}, want: errors.ErrEmpty},
		"bad asset":  {coins: Coins{NewCoinp(1, "a b")}, want: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.coins.Validate(); !tc.want.Is(err) {
				t.Fatalf("want %v, got %+v", tc.want, err)
			}
		})
	}
}

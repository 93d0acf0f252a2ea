package coin

import (
	"fmt"
	"strings"

	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/errors"
)

// Coin is an amount of a single asset.
type Coin struct {
	Asset  AssetID `json:"asset"`
	Amount Amount  `json:"amount"`
}

// NewCoin creates a new coin object
func NewCoin(amount int64, asset AssetID) Coin {
	return Coin{Asset: asset, Amount: NewAmount(amount)}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount int64, asset AssetID) *Coin {
	c := NewCoin(amount, asset)
	return &c
}

// Add combines two coins of the same asset.
func (c Coin) Add(o Coin) (Coin, error) {
	if c.Asset != o.Asset {
		return Coin{}, errors.Wrapf(errors.ErrType, "adding %s to %s", o.Asset, c.Asset)
	}
	sum, err := c.Amount.Add(o.Amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Asset: c.Asset, Amount: sum}, nil
}

// Subtract given amount from this coin.
func (c Coin) Subtract(o Coin) (Coin, error) {
	if c.Asset != o.Asset {
		return Coin{}, errors.Wrapf(errors.ErrType, "subtracting %s from %s", o.Asset, c.Asset)
	}
	diff, err := c.Amount.Sub(o.Amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Asset: c.Asset, Amount: diff}, nil
}

// IsGTE returns true if this coin holds at least as much as the other one
// of the same asset.
func (c Coin) IsGTE(o Coin) bool {
	return c.Asset == o.Asset && c.Amount.Cmp(o.Amount) >= 0
}

// Equals returns true if both coins represent the same value.
func (c Coin) Equals(o Coin) bool {
	return c.Asset == o.Asset && c.Amount.Cmp(o.Amount) == 0
}

// Clone returns a copy of this coin.
func (c *Coin) Clone() *Coin {
	res := *c
	return &res
}

// Validate ensures the asset id is valid.
func (c Coin) Validate() error {
	return errors.Wrap(c.Asset.Validate(), "coin")
}

// String provides a human readable representation of the coin, for example
// "800 FOO".
func (c Coin) String() string {
	return fmt.Sprintf("%s %s", c.Amount, c.Asset)
}

// ParseHumanFormat parses "<amount> <asset>" representation as produced by
// String.
func ParseHumanFormat(h string) (Coin, error) {
	chunks := strings.Fields(h)
	if len(chunks) != 2 {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format %q", h)
	}
	amount, err := ParseAmount(chunks[0])
	if err != nil {
		return Coin{}, err
	}
	c := Coin{Asset: AssetID(chunks[1]), Amount: amount}
	if err := c.Validate(); err != nil {
		return Coin{}, err
	}
	return c, nil
}

func (c *Coin) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.String(1, string(c.Asset))
	if !c.Amount.IsZero() {
		e.Bytes(2, c.Amount.Bytes())
	}
	return e.Result(), nil
}

func (c *Coin) Unmarshal(raw []byte) error {
	*c = Coin{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			s, err := d.String()
			if err != nil {
				return err
			}
			c.Asset = AssetID(s)
		case 2:
			bz, err := d.Bytes()
			if err != nil {
				return err
			}
			if c.Amount, err = AmountFromBytes(bz); err != nil {
				return err
			}
		default:
			if err := d.Skip(); err != nil {
				return err
			}
		}
	}
	return nil
}

package escrow

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/codec"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/errors"
)

const (
	pathDepositMsg = "escrow/deposit"
	pathClaimMsg   = "escrow/claim"
)

var _ claimable.Msg = (*DepositMsg)(nil)

// DepositMsg locks Amount of Asset owned by Depositor in the escrow.
type DepositMsg struct {
	Depositor claimable.Address   `json:"depositor"`
	Asset     coin.AssetID        `json:"asset"`
	Amount    coin.Amount         `json:"amount"`
	Claimants []claimable.Address `json:"claimants"`
	TimeBound TimeBound           `json:"time_bound"`
}

func (DepositMsg) Path() string {
	return pathDepositMsg
}

// Validate checks the format of the message fields. Amount and the number
// of claimants are business rules checked by the controller.
func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	errs = errors.AppendField(errs, "Asset", m.Asset.Validate())
	for _, c := range m.Claimants {
		errs = errors.AppendField(errs, "Claimants", c.Validate())
	}
	errs = errors.AppendField(errs, "TimeBound", m.TimeBound.Validate())
	return errs
}

func (m *DepositMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Depositor)
	e.String(2, string(m.Asset))
	if !m.Amount.IsZero() {
		e.Bytes(3, m.Amount.Bytes())
	}
	claimants := make([][]byte, len(m.Claimants))
	for i, c := range m.Claimants {
		claimants[i] = c
	}
	e.RepeatedBytes(4, claimants)
	if err := e.Message(5, &m.TimeBound); err != nil {
		return nil, err
	}
	return e.Result(), nil
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	*m = DepositMsg{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			m.Depositor, err = d.Bytes()
		case 2:
			var s string
			s, err = d.String()
			m.Asset = coin.AssetID(s)
		case 3:
			var bz []byte
			if bz, err = d.Bytes(); err == nil {
				m.Amount, err = coin.AmountFromBytes(bz)
			}
		case 4:
			var bz []byte
			bz, err = d.Bytes()
			m.Claimants = append(m.Claimants, claimable.Address(bz))
		case 5:
			err = d.Message(&m.TimeBound)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "deposit field %d", field)
		}
	}
	return nil
}

var _ claimable.Msg = (*ClaimMsg)(nil)

// ClaimMsg withdraws the whole escrowed amount to Claimant.
type ClaimMsg struct {
	Claimant claimable.Address `json:"claimant"`
}

func (ClaimMsg) Path() string {
	return pathClaimMsg
}

func (m *ClaimMsg) Validate() error {
	return errors.Field("Claimant", m.Claimant.Validate(), "invalid claimant")
}

func (m *ClaimMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Claimant)
	return e.Result(), nil
}

func (m *ClaimMsg) Unmarshal(raw []byte) error {
	*m = ClaimMsg{}
	d := codec.NewDecoder(raw)
	for !d.Done() {
		field, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			m.Claimant, err = d.Bytes()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "claim field %d", field)
		}
	}
	return nil
}

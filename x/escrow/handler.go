package escrow

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
)

// RegisterRoutes registers handlers for all escrow messages.
func RegisterRoutes(r claimable.Registry, ctrl *Controller) {
	r.Handle(pathDepositMsg, DepositHandler{ctrl: ctrl})
	r.Handle(pathClaimMsg, ClaimHandler{ctrl: ctrl})
}

// DepositHandler processes DepositMsg.
type DepositHandler struct {
	ctrl *Controller
}

var _ claimable.Handler = DepositHandler{}

// Check verifies the message is well formed. State rules are evaluated
// only on delivery.
func (h DepositHandler) Check(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.CheckResult, error) {
	var msg DepositMsg
	if err := claimable.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &claimable.CheckResult{}, nil
}

func (h DepositHandler) Deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.DeliverResult, error) {
	var msg DepositMsg
	if err := claimable.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	err := h.ctrl.Deposit(ctx, db, msg.Depositor, msg.Asset, msg.Amount, msg.Claimants, msg.TimeBound)
	if err != nil {
		return nil, err
	}
	return &claimable.DeliverResult{Data: h.ctrl.Custody()}, nil
}

// ClaimHandler processes ClaimMsg.
type ClaimHandler struct {
	ctrl *Controller
}

var _ claimable.Handler = ClaimHandler{}

func (h ClaimHandler) Check(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.CheckResult, error) {
	var msg ClaimMsg
	if err := claimable.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &claimable.CheckResult{}, nil
}

func (h ClaimHandler) Deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.DeliverResult, error) {
	var msg ClaimMsg
	if err := claimable.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Claim(ctx, db, msg.Claimant); err != nil {
		return nil, err
	}
	return &claimable.DeliverResult{}, nil
}

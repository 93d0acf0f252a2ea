package cash

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r claimable.Registry, auth x.Authenticator, control Controller) {
	r.Handle(SendMsg{}.Path(), NewSendHandler(auth, control))
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ claimable.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and authorized
func (h SendHandler) Check(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &claimable.CheckResult{}, nil
}

// Deliver moves the tokens from sender to receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx claimable.Context, db claimable.KVStore, tx claimable.Tx) (*claimable.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, msg.Src, msg.Dest, msg.Amount); err != nil {
		return nil, err
	}
	claimable.GetLogger(ctx).Info("coins sent",
		"src", msg.Src, "dest", msg.Dest, "amount", msg.Amount.String())
	return &claimable.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx claimable.Context, tx claimable.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := claimable.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// Make sure we have permission from the source
	if !h.auth.HasAddress(ctx, msg.Src) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return &msg, nil
}

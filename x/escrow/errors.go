package escrow

import (
	"github.com/iov-one/claimable/errors"
)

// escrow takes 1010-1020
var (
	ErrTooManyClaimants     = errors.Register(1010, "too many claimants")
	ErrAlreadyInitialized   = errors.Register(1011, "escrow already initialized")
	ErrAuthorizationFailure = errors.Register(1012, "authorization failure")
	ErrTransferFailure      = errors.Register(1013, "asset transfer failure")
	ErrNoActiveEscrow       = errors.Register(1014, "no active escrow")
	ErrTimeConditionUnmet   = errors.Register(1015, "time predicate is not fulfilled")
	ErrClaimantNotAllowed   = errors.Register(1016, "claimant is not allowed to claim this balance")
)

// errorNames labels the escrow errors in metrics.
var errorNames = []struct {
	err  *errors.Error
	name string
}{
	{ErrTooManyClaimants, "too_many_claimants"},
	{ErrAlreadyInitialized, "already_initialized"},
	{ErrAuthorizationFailure, "authorization_failure"},
	{ErrTransferFailure, "transfer_failure"},
	{ErrNoActiveEscrow, "no_active_escrow"},
	{ErrTimeConditionUnmet, "time_condition_unmet"},
	{ErrClaimantNotAllowed, "claimant_not_allowed"},
}

// resultLabel returns "ok" for a successful call and the name of the
// escrow error otherwise.
func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	for _, e := range errorNames {
		if e.err.Is(err) {
			return e.name
		}
	}
	return "other"
}

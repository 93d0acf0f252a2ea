package weavetest

import (
	"context"

	"github.com/iov-one/claimable"
)

// Auth is an x.Authenticator that always reports the same signers,
// regardless of the context.
type Auth struct {
	signers []claimable.Condition
}

// SignedBy returns an authenticator of given signers. Nil conditions are
// skipped, so SignedBy(nil) authenticates nobody.
func SignedBy(signers ...claimable.Condition) *Auth {
	var a Auth
	for _, s := range signers {
		if s != nil {
			a.signers = append(a.signers, s)
		}
	}
	return &a
}

func (a *Auth) GetConditions(claimable.Context) []claimable.Condition {
	return a.signers
}

func (a *Auth) HasAddress(ctx claimable.Context, addr claimable.Address) bool {
	return hasAddress(a.signers, addr)
}

// ContextAuth is an x.Authenticator reading signers stored in the context
// under its own name. Authenticators with different names do not see each
// other's signers.
type ContextAuth struct {
	name string
}

type signersKey string

func NewContextAuth(name string) *ContextAuth {
	return &ContextAuth{name: name}
}

// WithSigners returns a context authenticated by given signers.
func (a *ContextAuth) WithSigners(ctx claimable.Context, signers ...claimable.Condition) claimable.Context {
	return context.WithValue(ctx, signersKey(a.name), signers)
}

func (a *ContextAuth) GetConditions(ctx claimable.Context) []claimable.Condition {
	conds, _ := ctx.Value(signersKey(a.name)).([]claimable.Condition)
	return conds
}

func (a *ContextAuth) HasAddress(ctx claimable.Context, addr claimable.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []claimable.Condition, addr claimable.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

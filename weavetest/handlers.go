package weavetest

import "github.com/iov-one/claimable"

// Calls counts Check and Deliver invocations of a mock.
type Calls struct {
	checks   int
	delivers int
}

func (c *Calls) Checks() int   { return c.checks }
func (c *Calls) Delivers() int { return c.delivers }
func (c *Calls) Total() int    { return c.checks + c.delivers }

// Handler is a mock claimable.Handler. It returns CheckErr or DeliverErr
// when set and an empty result otherwise. Every call is counted, failed
// ones included.
type Handler struct {
	Calls
	CheckErr   error
	DeliverErr error
}

var _ claimable.Handler = (*Handler)(nil)

func (h *Handler) Check(claimable.Context, claimable.KVStore, claimable.Tx) (*claimable.CheckResult, error) {
	h.checks++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	return &claimable.CheckResult{}, nil
}

func (h *Handler) Deliver(claimable.Context, claimable.KVStore, claimable.Tx) (*claimable.DeliverResult, error) {
	h.delivers++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	return &claimable.DeliverResult{}, nil
}

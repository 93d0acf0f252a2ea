package main

import (
	"strings"

	"github.com/iov-one/claimable"
)

// addressesFlag collects an address each time the flag is given.
type addressesFlag []claimable.Address

func (a *addressesFlag) String() string {
	if a == nil {
		return ""
	}
	s := make([]string, len(*a))
	for i, addr := range *a {
		s[i] = addr.String()
	}
	return strings.Join(s, ",")
}

func (a *addressesFlag) Set(raw string) error {
	var addr claimable.Address
	if err := addr.Set(raw); err != nil {
		return err
	}
	*a = append(*a, addr)
	return nil
}

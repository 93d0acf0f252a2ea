/*
Package escrow implements a one-shot, time-locked, multi-claimant escrow.

A depositor locks a fixed amount of a single asset, naming up to ten
claimants and a time condition. Exactly one of the claimants may withdraw
the whole amount while the time condition holds. After that the escrow is
consumed and can never be funded again.

	Uninitialized --deposit--> Escrowed --claim--> Consumed

Every escrow is bound to an instance identifier. State of different
instances is kept apart and each instance holds the funds on its own
custody address.
*/
package escrow

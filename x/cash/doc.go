/*
Package cash defines a simple implementation of a multi-asset fungible
ledger.

There is no logic in the assets, except that the balance of any asset may
not go below zero and never exceeds the 128-bit range. Thus, this
implementation is referred to as cash. Simple and safe.
*/
package cash

/*

Package claimable defines interfaces used throughout the escrow application,
such as: storage, transactions, handlers etc.
It also contains helpers to work with conditions, addresses, time and context.
Extensions live under x/ and are wired together by the app package.

*/

package claimable

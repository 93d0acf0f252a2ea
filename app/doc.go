/*
Package app glues extensions into an application.

Router dispatches a transaction to the handler registered for the path of
its message. ChainDecorators wraps that handler with middleware such as
signature verification. Runner executes a single call against a store
inside a cache wrap: the changes are written when the call succeeds and
dropped when it fails or panics.
*/
package app

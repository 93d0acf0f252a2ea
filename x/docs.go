/*
Package x contains the glue shared by extensions.

Extensions implement a piece of functionality (a Handler, a Decorator, a
controller) and receive their collaborators through interfaces declared
here, so that one provider can be replaced by another. The sub-packages
provide the signature based authentication (sigs), the asset ledger (cash)
and the escrow itself (escrow).
*/
package x

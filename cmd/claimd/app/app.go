/*
Package app links together all the various components
to construct the claimd application.
*/
package app

import (
	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/app"
	"github.com/iov-one/claimable/x"
	"github.com/iov-one/claimable/x/cash"
	"github.com/iov-one/claimable/x/escrow"
	"github.com/iov-one/claimable/x/sigs"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		app.NewLogging(),
		app.NewRecovery(),
		// Handlers decide what a call without a valid signature may do.
		// The escrow reports it as an authorization failure.
		sigs.NewDecorator().AllowMissingSigs().IgnoreInvalidSigs(),
	)
}

// Application bundles the transaction runner with the controllers it
// dispatches to.
type Application struct {
	*app.Runner
	Escrow *escrow.Controller
	Cash   cash.BaseController
}

// Stack builds the application for given escrow instance on top of store.
// Metrics and logger are optional.
func Stack(
	store claimable.CacheableKVStore,
	chainID string,
	instance []byte,
	metrics *escrow.Metrics,
	logger log.Logger,
) *Application {
	auth := Authenticator()
	bank := cash.NewController(cash.NewBucket())
	ctrl := escrow.NewController(instance, auth, bank, metrics)

	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, bank)
	escrow.RegisterRoutes(r, ctrl)

	handler := Chain().WithHandler(r)
	return &Application{
		Runner: app.NewRunner(store, handler, chainID, logger),
		Escrow: ctrl,
		Cash:   bank,
	}
}

// Initializers returns all the extensions configured from the genesis
// file.
func Initializers() claimable.Initializer {
	return app.ChainInitializers(
		&cash.Initializer{},
	)
}

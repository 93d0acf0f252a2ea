package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/coin"
)

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the balance of an address.
`)
		fl.PrintDefaults()
	}
	var addr claimable.Address
	fl.Var(&addr, "address", "Address to print the balance of.")
	var (
		homeFl  = fl.String("home", defaultHome(), "Directory to store files under. You can use CLAIMD_HOME environment variable to set it.")
		assetFl = fl.String("asset", "", "Asset identifier.")
	)
	fl.Parse(args)

	if err := addr.Validate(); err != nil {
		return fmt.Errorf("invalid address: %s", err)
	}
	asset := coin.AssetID(*assetFl)
	if err := asset.Validate(); err != nil {
		return fmt.Errorf("invalid asset: %s", err)
	}

	n, err := openNode(*homeFl, nil)
	if err != nil {
		return err
	}
	defer n.close()

	amount, err := n.Cash.Balance(n.store, addr, asset)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output, "%s %s\n", amount, asset)
	return err
}

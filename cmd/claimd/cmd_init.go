package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iov-one/claimable/app"
	claimd "github.com/iov-one/claimable/cmd/claimd/app"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new home directory and apply the genesis state.

The configuration file is written to the home directory. The chain ID is
taken from the genesis file.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl     = fl.String("home", defaultHome(), "Directory to store files under. You can use CLAIMD_HOME environment variable to set it.")
		genesisFl  = fl.String("genesis", "genesis.json", "Path to the genesis file.")
		instanceFl = fl.String("instance", "default", "Identifier of the escrow instance.")
		logLevelFl = fl.String("log-level", "info", "Log level: debug, info, error or none.")
	)
	fl.Parse(args)

	gen, err := app.LoadGenesis(*genesisFl)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(*homeFl, dataDir), 0700); err != nil {
		return fmt.Errorf("cannot create home directory: %s", err)
	}
	conf := &Config{
		ChainID:  gen.ChainID,
		Instance: *instanceFl,
		LogLevel: *logLevelFl,
	}
	if err := writeConfig(*homeFl, conf); err != nil {
		return err
	}

	db, err := openStore(*homeFl)
	if err != nil {
		return err
	}
	if err := app.InitChain(db, gen, claimd.Initializers()); err != nil {
		db.Close()
		return err
	}
	if _, err := db.Commit(); err != nil {
		db.Close()
		return fmt.Errorf("cannot commit: %s", err)
	}
	return db.Close()
}

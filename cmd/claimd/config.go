package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/iov-one/claimable/cmd/claimd/app"
	"github.com/iov-one/claimable/store/iavl"
	"github.com/iov-one/claimable/x/escrow"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	configFile = "config.toml"
	dataDir    = "data"
	dbName     = "claimd"
)

// Config is stored in the home directory of the application.
type Config struct {
	ChainID  string `toml:"chain_id"`
	Instance string `toml:"instance"`
	LogLevel string `toml:"log_level"`
}

func defaultHome() string {
	return env("CLAIMD_HOME", filepath.Join(os.Getenv("HOME"), ".claimd"))
}

func loadConfig(home string) (*Config, error) {
	var conf Config
	if _, err := toml.DecodeFile(filepath.Join(home, configFile), &conf); err != nil {
		return nil, fmt.Errorf("cannot read configuration: %s", err)
	}
	if conf.ChainID == "" {
		return nil, fmt.Errorf("configuration without chain_id")
	}
	if conf.Instance == "" {
		return nil, fmt.Errorf("configuration without instance")
	}
	if conf.LogLevel == "" {
		conf.LogLevel = "info"
	}
	return &conf, nil
}

func writeConfig(home string, conf *Config) error {
	path := filepath.Join(home, configFile)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return fmt.Errorf("configuration file %q already exists", path)
	}
	fd, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("cannot create configuration file: %s", err)
	}
	defer fd.Close()
	if err := toml.NewEncoder(fd).Encode(conf); err != nil {
		return fmt.Errorf("cannot write configuration: %s", err)
	}
	return fd.Close()
}

func newLogger(level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", err)
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr)).With("module", "claimd")
	return log.NewFilter(logger, opt), nil
}

// node is an opened application together with its durable store.
type node struct {
	*app.Application
	conf  *Config
	store *iavl.CommitStore
}

// openNode loads the configuration and the latest committed state found
// in home.
func openNode(home string, metrics *escrow.Metrics) (*node, error) {
	conf, err := loadConfig(home)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(conf.LogLevel)
	if err != nil {
		return nil, err
	}
	db, err := openStore(home)
	if err != nil {
		return nil, err
	}
	return &node{
		Application: app.Stack(db, conf.ChainID, []byte(conf.Instance), metrics, logger),
		conf:        conf,
		store:       db,
	}, nil
}

func openStore(home string) (*iavl.CommitStore, error) {
	db, err := iavl.NewCommitStore(filepath.Join(home, dataDir), dbName)
	if err != nil {
		return nil, err
	}
	if err := db.LoadLatestVersion(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot load state: %s", err)
	}
	return db, nil
}

// commit persists all delivered changes and releases the store.
func (n *node) commit() error {
	if _, err := n.store.Commit(); err != nil {
		n.store.Close()
		return fmt.Errorf("cannot commit: %s", err)
	}
	return n.store.Close()
}

func (n *node) close() error {
	return n.store.Close()
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/claimable"
	"github.com/iov-one/claimable/coin"
	"github.com/iov-one/claimable/crypto"
	"github.com/iov-one/claimable/errors"
	claimd "github.com/iov-one/claimable/cmd/claimd/app"
	"github.com/iov-one/claimable/x/escrow"
	"github.com/iov-one/claimable/x/sigs"
)

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Lock funds in the escrow.

The transaction is signed with the private key and the address of that key
is the depositor. Use -claimant multiple times to allow many addresses to
claim. Exactly one of -before and -after must be given.
`)
		fl.PrintDefaults()
	}
	var claimants addressesFlag
	fl.Var(&claimants, "claimant", "Address that may claim the escrow. Can be repeated.")
	var (
		homeFl    = fl.String("home", defaultHome(), "Directory to store files under. You can use CLAIMD_HOME environment variable to set it.")
		keyFl     = fl.String("key", defaultKeyPath(), "Path to the private key file. You can use CLAIMD_PRIV_KEY environment variable to set it.")
		assetFl   = fl.String("asset", "", "Asset identifier.")
		amountFl  = fl.String("amount", "", "Amount to lock, as a decimal integer.")
		beforeFl  = fl.Int64("before", -1, "Allow claims until this UNIX time (inclusive).")
		afterFl   = fl.Int64("after", -1, "Allow claims from this UNIX time on (inclusive).")
		timeFl    = fl.Int64("time", time.Now().Unix(), "Current UNIX time the call is executed at.")
		metricsFl = fl.Bool("metrics", false, "Print escrow metrics in the Prometheus text format after the call.")
	)
	fl.Parse(args)

	amount, err := coin.ParseAmount(*amountFl)
	if err != nil {
		return fmt.Errorf("invalid amount: %s", err)
	}
	var tb escrow.TimeBound
	switch {
	case *beforeFl >= 0 && *afterFl < 0:
		tb = escrow.TimeBound{Kind: escrow.Before, Timestamp: uint64(*beforeFl)}
	case *afterFl >= 0 && *beforeFl < 0:
		tb = escrow.TimeBound{Kind: escrow.After, Timestamp: uint64(*afterFl)}
	default:
		return fmt.Errorf("exactly one of -before and -after must be provided")
	}

	key, err := loadKey(*keyFl)
	if err != nil {
		return err
	}
	msg := &escrow.DepositMsg{
		Depositor: key.PublicKey().Address(),
		Asset:     coin.AssetID(*assetFl),
		Amount:    amount,
		Claimants: claimants,
		TimeBound: tb,
	}
	metrics, err := newMetricsDump(*metricsFl)
	if err != nil {
		return err
	}
	err = execute(*homeFl, key, msg, *timeFl, metrics.escrowMetrics())
	if err == nil {
		fmt.Fprintf(output, "deposited %s %s\n", amount, *assetFl)
	}
	if werr := metrics.write(output); werr != nil && err == nil {
		err = werr
	}
	return err
}

func cmdClaim(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Withdraw the whole escrow to the address of the private key.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = fl.String("home", defaultHome(), "Directory to store files under. You can use CLAIMD_HOME environment variable to set it.")
		keyFl     = fl.String("key", defaultKeyPath(), "Path to the private key file. You can use CLAIMD_PRIV_KEY environment variable to set it.")
		timeFl    = fl.Int64("time", time.Now().Unix(), "Current UNIX time the call is executed at.")
		metricsFl = fl.Bool("metrics", false, "Print escrow metrics in the Prometheus text format after the call.")
	)
	fl.Parse(args)

	key, err := loadKey(*keyFl)
	if err != nil {
		return err
	}
	msg := &escrow.ClaimMsg{Claimant: key.PublicKey().Address()}
	metrics, err := newMetricsDump(*metricsFl)
	if err != nil {
		return err
	}
	err = execute(*homeFl, key, msg, *timeFl, metrics.escrowMetrics())
	if err == nil {
		fmt.Fprintf(output, "claimed by %s\n", msg.Claimant)
	}
	if werr := metrics.write(output); werr != nil && err == nil {
		err = werr
	}
	return err
}

// execute signs a transaction with given message and delivers it. State is
// committed only when the delivery succeeds. Metrics are optional.
func execute(home string, key *crypto.PrivateKey, msg claimable.Msg, unix int64, metrics *escrow.Metrics) error {
	n, err := openNode(home, metrics)
	if err != nil {
		return err
	}

	tx := new(claimd.Tx)
	if err := tx.SetMsg(msg); err != nil {
		n.close()
		return err
	}
	seq, err := sigs.NextSequence(n.store, key.PublicKey())
	if err != nil {
		n.close()
		return err
	}
	sig, err := sigs.SignTx(key, tx, n.ChainID(), seq)
	if err != nil {
		n.close()
		return fmt.Errorf("cannot sign: %s", err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	if _, err := n.Deliver(time.Unix(unix, 0), tx); err != nil {
		n.close()
		return errors.Wrap(err, msg.Path())
	}
	return n.commit()
}

// escrowView is the JSON representation of the escrow state.
type escrowView struct {
	Instance string            `json:"instance"`
	State    string            `json:"state"`
	Custody  claimable.Address `json:"custody"`
	Escrow   *escrow.Escrow    `json:"escrow,omitempty"`
}

func cmdShow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the state of the escrow as JSON.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", defaultHome(), "Directory to store files under. You can use CLAIMD_HOME environment variable to set it.")
	)
	fl.Parse(args)

	n, err := openNode(*homeFl, nil)
	if err != nil {
		return err
	}
	defer n.close()

	state, err := n.Escrow.State(n.store)
	if err != nil {
		return err
	}
	view := escrowView{
		Instance: n.conf.Instance,
		State:    state.String(),
		Custody:  n.Escrow.Custody(),
	}
	if state == escrow.Escrowed {
		if view.Escrow, err = n.Escrow.Current(n.store); err != nil {
			return err
		}
	}
	raw, err := json.MarshalIndent(view, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize: %s", err)
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}

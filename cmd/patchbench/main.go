// patchbench drives a small in-memory scenario through PatchDB: build a
// stable baseline, fork two sibling patches off it, spend coins in one and
// create coins in the other, merge them back together, purge against the
// baseline, validate against it, and report the result. It exists to exercise the patch package end to end
// without wiring up a real storage or networking layer.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/btcsuite/btcutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/nexachain/patchdb/patch"
	"github.com/nexachain/patchdb/patch/externalapi"
)

type options struct {
	Dump    bool   `short:"d" long:"dump" description:"spew-dump the merged patch's internal structure"`
	GroupID uint64 `short:"g" long:"group" default:"1" description:"witness group id to bind the left patch to"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "patchbench: %+v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	baseTxHash := newDemoHash()
	baseline := buildBaseline(baseTxHash)

	stableView := patch.NewMemoryStableView([]*externalapi.UTXO{snapshotUTXO(baseline, baseTxHash)})
	stable, err := patch.LoadStableBaseline(stableView)
	if err != nil {
		return err
	}

	spenderHash := newDemoHash()

	left := patch.New(nil)
	if err := left.SpendCoins(snapshotUTXO(baseline, baseTxHash), 0, spenderHash); err != nil {
		return err
	}
	if err := left.SetGroupID(opts.GroupID); err != nil {
		return err
	}

	right := patch.New(nil)
	creatorHash := newDemoHash()
	if err := right.CreateCoins(creatorHash, 0, externalapi.NewCoins(5_000, []byte("demo-lock-script"))); err != nil {
		return err
	}

	merged, err := left.Merge(right)
	if err != nil {
		return err
	}

	fmt.Printf("merged patch before purge: %s\n", merged)
	fmt.Printf("commitment: %s\n", merged.Commitment())
	fmt.Printf("complexity: %d\n", merged.Complexity())

	merged.Purge(stable)
	fmt.Printf("merged patch after purge:  %s\n", merged)

	if err := merged.ValidateAgainstStable(stable); err != nil {
		return err
	}
	fmt.Println("validated against stable baseline: ok")

	if opts.Dump {
		spew.Dump(merged)
	}

	return nil
}

// buildBaseline constructs a one-off patch standing in for a durably
// committed block: a single transaction with one spendable output.
func buildBaseline(txHash externalapi.Hash256) *patch.Patch {
	baseline := patch.New(nil)
	_ = baseline.CreateCoins(txHash, 0, externalapi.NewCoins(btcutil.Amount(10_000), []byte("base-lock-script")))
	return baseline
}

func snapshotUTXO(p *patch.Patch, txHash externalapi.Hash256) *externalapi.UTXO {
	utxo, _ := p.GetUTXO(txHash)
	return utxo
}

// newDemoHash synthesizes a distinct Hash256 for this run from a fresh
// UUID, since patchbench has no real transaction hashes to draw from.
func newDemoHash() externalapi.Hash256 {
	id := uuid.New()
	b := make([]byte, externalapi.HashSize)
	copy(b, id[:])
	hash, _ := externalapi.NewHash256FromBytes(b)
	return hash
}

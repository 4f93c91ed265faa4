package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the inventory file in canonical form" }
func (*fmtCmd) Usage() string {
	return `inv fmt

  Reads the inventory file and writes it back indented, items in their
  original order. Useful after editing the file by hand.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := stockroom.NewLedger(logger)
	if !ledger.Load(*inventoryFile) {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory file %q.\n", *inventoryFile)
		return subcommands.ExitFailure
	}
	if status := saveInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Formatted %s\n", *inventoryFile)
	return subcommands.ExitSuccess
}

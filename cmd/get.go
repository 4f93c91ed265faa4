package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type getCmd struct{}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "print the current quantity of an item" }
func (*getCmd) Usage() string {
	return `inv get <item>

  Prints the quantity of an item currently in the inventory, or 0 when
  the item is not stocked.
`
}

func (*getCmd) SetFlags(f *flag.FlagSet) {}

func (p *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an item name.")
		return subcommands.ExitUsageError
	}

	ledger, ok := loadInventory()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory file %q.\n", *inventoryFile)
		return subcommands.ExitFailure
	}
	fmt.Println(ledger.Quantity(f.Arg(0)))
	return subcommands.ExitSuccess
}

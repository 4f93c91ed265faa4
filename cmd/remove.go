package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a quantity of an item from the inventory" }
func (*removeCmd) Usage() string {
	return `inv remove <item> <qty>

  Removes the given quantity of an item from the inventory file.
  Removing more than the current stock depletes the item: it disappears
  from the inventory entirely.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (p *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item, qty, ok := itemQtyArgs(f)
	if !ok {
		return subcommands.ExitUsageError
	}

	ledger, ok := loadInventory()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory file %q.\n", *inventoryFile)
		return subcommands.ExitFailure
	}
	if !ledger.Remove(item, qty) {
		fmt.Fprintf(os.Stderr, "Error: could not remove %d of %s.\n", qty, item)
		return subcommands.ExitFailure
	}
	if status := saveInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}

	if ledger.Has(item) {
		fmt.Printf("Removed %d of %s (%d left)\n", qty, item, ledger.Quantity(item))
	} else {
		fmt.Printf("Removed %s (depleted)\n", item)
	}
	return subcommands.ExitSuccess
}

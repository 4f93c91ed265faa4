package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a quantity of an item to the inventory" }
func (*addCmd) Usage() string {
	return `inv add <item> <qty>

  Adds the given quantity of an item to the inventory file, creating the
  item if it does not exist yet. The quantity must be a non-negative
  integer.
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item, qty, ok := itemQtyArgs(f)
	if !ok {
		return subcommands.ExitUsageError
	}

	if item == "" || qty < 0 {
		fmt.Fprintln(os.Stderr, "Error: the item name must be non-empty and the quantity non-negative.")
		return subcommands.ExitUsageError
	}

	ledger, ok := loadInventory()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory file %q.\n", *inventoryFile)
		return subcommands.ExitFailure
	}
	ledger.Add(item, qty, nil)
	if status := saveInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Added %d of %s (now %d)\n", qty, item, ledger.Quantity(item))
	return subcommands.ExitSuccess
}

// itemQtyArgs reads the two positional arguments shared by add and
// remove: an item name and an integer quantity.
func itemQtyArgs(f *flag.FlagSet) (item string, qty int, ok bool) {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an item name and a quantity.")
		return "", 0, false
	}
	item = f.Arg(0)
	qty, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: must be an integer.\n", f.Arg(1))
		return "", 0, false
	}
	return item, qty, true
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import item quantities from a supplier feed" }
func (*importCmd) Usage() string {
	return `inv import [-path <jsonpath>] <feed.json>

  Reads a supplier feed document and merges the selected item quantities
  into the inventory file. The -path expression must select a JSON
  object mapping item names to integer quantities.

Usage Examples:
# Import the "stock" object of an acme feed.
$ inv import -path '$.stock' acme.json

`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.path, "path", "$", "jsonpath expression selecting the item quantities object in the feed.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a feed file.")
		return subcommands.ExitUsageError
	}

	feed, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening feed file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer feed.Close()

	ledger, ok := loadInventory()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory file %q.\n", *inventoryFile)
		return subcommands.ExitFailure
	}
	count, err := ledger.ImportFeed(feed, p.path, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing feed %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if status := saveInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Imported %d items from %s\n", count, f.Arg(0))
	return subcommands.ExitSuccess
}

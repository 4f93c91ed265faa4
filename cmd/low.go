package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type lowCmd struct {
	threshold int
}

func (*lowCmd) Name() string     { return "low" }
func (*lowCmd) Synopsis() string { return "list the items running low on stock" }
func (*lowCmd) Usage() string {
	return `inv low [-t <threshold>]

  Lists the items whose quantity is strictly below the threshold.
`
}

func (p *lowCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.threshold, "t", 5, "Quantity threshold below which an item is considered low.")
}

func (p *lowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, ok := loadInventory()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory file %q.\n", *inventoryFile)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LowStock(ledger, p.threshold))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	markdown bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print the inventory report" }
func (*reportCmd) Usage() string {
	return `inv report [-md]

  Prints the fixed-width inventory report to standard output. With -md
  the report is rendered as a markdown table instead.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.markdown, "md", false, "Render the report as markdown on the terminal.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, ok := loadInventory()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory file %q.\n", *inventoryFile)
		return subcommands.ExitFailure
	}
	if p.markdown {
		printMarkdown(renderer.Inventory(ledger))
	} else {
		ledger.PrintReport()
	}
	return subcommands.ExitSuccess
}

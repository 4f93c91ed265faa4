// Package cmd implements the CLI application to manage an inventory file.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var inventoryFile = flag.String("file", stockroom.DefaultFile, "Path to the inventory file (a JSON object of item quantities)")

var logger = newLogger()

// newLogger builds the console logger carrying the app diagnostics to
// stderr.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadInventory opens the app inventory file into a fresh ledger. A
// missing file is not fatal: commands simply start from an empty
// ledger. It reports ok=false only when the file exists but could not
// be loaded, so mutating commands do not overwrite a corrupt file with
// a partial ledger.
func loadInventory() (ledger *stockroom.Ledger, ok bool) {
	ledger = stockroom.NewLedger(logger)
	if ledger.Load(*inventoryFile) {
		return ledger, true
	}
	_, err := os.Stat(*inventoryFile)
	return ledger, os.IsNotExist(err)
}

// saveInventory persists the ledger back to the app inventory file.
func saveInventory(ledger *stockroom.Ledger) subcommands.ExitStatus {
	if !ledger.Save(*inventoryFile) {
		fmt.Fprintf(os.Stderr, "Error saving inventory file %q\n", *inventoryFile)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown on the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// Package renderer turns ledger data into markdown for the CLI to
// render on the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockroom"
)

// Inventory renders all ledger items as a markdown table, in ledger
// order.
func Inventory(ledger *stockroom.Ledger) string {
	var b strings.Builder
	b.WriteString("# Inventory\n\n")
	if ledger.Len() == 0 {
		b.WriteString("No items in inventory.\n")
		return b.String()
	}

	b.WriteString("| Item | Quantity |\n")
	b.WriteString("|------|---------:|\n")
	for name, qty := range ledger.Items() {
		fmt.Fprintf(&b, "| %s | %d |\n", name, qty)
	}
	return b.String()
}

// LowStock renders the items whose quantity is strictly below threshold
// as a markdown table, in ledger order.
func LowStock(ledger *stockroom.Ledger, threshold int) string {
	var b strings.Builder
	b.WriteString("# Low Stock\n\n")
	fmt.Fprintf(&b, "Items with fewer than %d units.\n\n", threshold)

	low := ledger.LowItems(threshold)
	if len(low) == 0 {
		b.WriteString("No item is below the threshold.\n")
		return b.String()
	}

	b.WriteString("| Item | Quantity |\n")
	b.WriteString("|------|---------:|\n")
	for _, name := range low {
		fmt.Fprintf(&b, "| %s | %d |\n", name, ledger.Quantity(name))
	}
	return b.String()
}

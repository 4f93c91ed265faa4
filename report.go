package stockroom

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var reportBanner = strings.Repeat("=", 40)

// WriteReport writes the inventory report to w: a banner, one
// fixed-width line per item in ledger order, and a closing banner. The
// column widths (item left-justified on 20, quantity right-justified
// on 5) are part of the report contract.
func (l *Ledger) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", reportBanner)
	fmt.Fprintln(w, "INVENTORY REPORT")
	fmt.Fprintln(w, reportBanner)
	if l.Len() == 0 {
		fmt.Fprintln(w, "No items in inventory")
	} else {
		for name, qty := range l.Items() {
			fmt.Fprintf(w, "%-20s -> %5d\n", name, qty)
		}
	}
	fmt.Fprintf(w, "%s\n\n", reportBanner)
}

// PrintReport writes the inventory report to standard output.
func (l *Ledger) PrintReport() {
	l.WriteReport(os.Stdout)
}

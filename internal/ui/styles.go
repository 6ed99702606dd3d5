package ui

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

var (
	l1Style = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	l2Style = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)

// PrintL1Title prints a highlighted banner, used above a single record.
func PrintL1Title(format string, a ...any) {
	l1Style.Println(" " + fmt.Sprintf(format, a...) + "   ")
}

// PrintL2Title prints a sub-heading.
func PrintL2Title(format string, a ...any) {
	l2Style.Println("# " + fmt.Sprintf(format, a...))
}

// ColorBalance greys out empty balances and highlights funded ones.
func ColorBalance(balance decimal.Decimal, text string) string {
	if balance.IsZero() {
		return pterm.Gray(text)
	}
	return pterm.Green(text)
}

// ColorDirection marks money leaving an account red and arriving green.
func ColorDirection(outgoing bool, text string) string {
	if outgoing {
		return pterm.Red(text)
	}
	return pterm.Green(text)
}

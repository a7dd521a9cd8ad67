package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with English thousand separators.
//
//nolint:gochecknoglobals // read-only after init
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatLarge formats large numbers with abbreviated notation.
// Example: FormatLarge(1500000000) returns "~1.5 billion".
func FormatLarge(n float64) string {
	switch {
	case n >= ScientificThreshold:
		return fmt.Sprintf("~%.1e", n)
	case n >= TrillionThreshold:
		return fmt.Sprintf("~%.1f trillion", n/TrillionThreshold)
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}

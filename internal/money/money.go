// Package money carries amounts as integer minor units (the shop trades in
// Vietnamese dong, which has no fractional unit). The grouped display form
// ("130,000") exists only at the presentation and wire boundary.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders n with thousands separators, e.g. 130000 -> "130,000".
func Format(n int64) string {
	return printer.Sprintf("%d", n)
}

// Parse is the exact inverse of Format: it strips grouping separators and
// parses the remainder as a base-10 integer.
func Parse(s string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("money: empty amount")
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: bad amount %q: %w", s, err)
	}
	return n, nil
}

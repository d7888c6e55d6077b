package receipt

import (
	"regexp"
	"strings"
)

var (
	currencyReplacer = strings.NewReplacer("₹", "", "$", "", ",", "")
	whitespaceRE     = regexp.MustCompile(`\s+`)
)

// NormalizeText strips currency symbols and thousands separators so that
// amount patterns treat "₹1,234.50" and "1234.50" identically. Line
// structure is preserved.
func NormalizeText(text string) string {
	return currencyReplacer.Replace(text)
}

// cleanLine collapses interior whitespace runs to single spaces and trims
// the ends.
func cleanLine(line string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(line, " "))
}

package receipt

import (
	"regexp"
	"strconv"
	"strings"
)

// totalKeywordREs anchor an amount to an explicit total label, most specific
// label first. A label hit is trusted over the fallback maximum.
var totalKeywordREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)grand\s*total[^0-9]*([0-9]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?i)total\s*due[^0-9]*([0-9]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?i)amount\s*payable[^0-9]*([0-9]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?i)net\s*amount[^0-9]*([0-9]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?i)total[^0-9]*([0-9]+(?:\.[0-9]{2})?)`),
}

// amountTokenRE matches amount-shaped numbers with exactly two decimals.
var amountTokenRE = regexp.MustCompile(`\b[0-9]+\.[0-9]{2}\b`)

// ExtractPrice finds the receipt total. A label-anchored amount of at least 1
// wins outright; otherwise every line is scanned for amount-shaped tokens and
// the maximum is returned, on the rationale that items and subtotals are
// smaller than the grand total. Lines carrying tax-code artifacts ("cg"),
// "change", or "cash" without "total" are excluded to avoid tendered-cash
// and change amounts.
func ExtractPrice(text string) *float64 {
	cleaned := NormalizeText(text)

	for _, re := range totalKeywordREs {
		m := re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		if val, err := strconv.ParseFloat(m[1], 64); err == nil && val >= 1 {
			return &val
		}
	}

	var amounts []float64
	for _, line := range strings.Split(cleaned, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "cg") || strings.Contains(lower, "change") {
			continue
		}
		if strings.Contains(lower, "cash") && !strings.Contains(lower, "total") {
			continue
		}
		for _, tok := range amountTokenRE.FindAllString(line, -1) {
			if val, err := strconv.ParseFloat(tok, 64); err == nil {
				amounts = append(amounts, val)
			}
		}
	}
	if len(amounts) == 0 {
		return nil
	}
	max := amounts[0]
	for _, a := range amounts[1:] {
		if a > max {
			max = a
		}
	}
	return &max
}

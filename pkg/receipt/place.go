package receipt

import (
	"regexp"
	"strings"
)

// Receipt boilerplate that disqualifies a line from being the merchant name.
var placeStopWords = []string{
	"tel", "phone", "gst", "invoice", "receipt", "reg", "manager",
	"cashier", "order", "table", "tax", "total", "amount", "change",
	"mc", "#", "no.",
}

var (
	placeSymbolRE  = regexp.MustCompile(`[^A-Za-z0-9 &'-]`)
	placeLeadingRE = regexp.MustCompile(`^[^A-Za-z]+`)
)

// ExtractPlace picks the merchant name from the recognized text. The name is
// conventionally near the top, so only the first ten non-trivial lines are
// considered; boilerplate lines and digit-heavy lines (addresses, phone
// numbers, ids) are discarded, and the longest surviving candidate wins,
// first occurrence breaking ties.
func ExtractPlace(text string) *string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if c := cleanLine(l); len(c) > 2 {
			lines = append(lines, c)
		}
	}
	if len(lines) > 10 {
		lines = lines[:10]
	}

	var candidates []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		if containsAnyWord(lower, placeStopWords) {
			continue
		}
		digits := 0
		for _, r := range line {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 3 {
			continue
		}
		cleaned := strings.TrimSpace(placeSymbolRE.ReplaceAllString(line, ""))
		cleaned = strings.TrimSpace(placeLeadingRE.ReplaceAllString(cleaned, ""))
		if len(cleaned) >= 4 {
			candidates = append(candidates, cleaned)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) > len(best) {
			best = c
		}
	}
	titled := titleCase(best)
	return &titled
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest. Candidates are ASCII-only after cleaning.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

package receipt

import (
	"regexp"
	"time"
)

// dateOCRFixRE repairs the common misread of digit 0 as letter O, but only
// when the letter directly precedes a date separator and a digit. The narrow
// context keeps ordinary words intact.
var dateOCRFixRE = regexp.MustCompile(`[Oo](\s*[/-]\s*[0-9])`)

// datePatterns are tried in priority order; the first one that matches
// anywhere in the text wins and later patterns are not consulted.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([0-9]{2}[/-][0-9]{2}[/-][0-9]{4})\b`),
	regexp.MustCompile(`\b([0-9]{4}[/-][0-9]{2}[/-][0-9]{2})\b`),
	regexp.MustCompile(`\b([0-9][/-][0-9]{2}[/-][0-9]{4})\b`),
	regexp.MustCompile(`\b([0-9]{2}[/-][0-9]{2}[/-][0-9]{2})\b`),
}

// dateLayouts are attempted in order against the matched substring. Day-first
// layouts precede month-first, so a genuinely ambiguous date resolves
// day-first; for the rest, calendar validity of the parse disambiguates.
var dateLayouts = []string{
	"2/1/2006", "2-1-2006",
	"1/2/2006", "1-2-2006",
	"2006-1-2", "2006/1/2",
	"2/1/06", "2-1-06",
	"1/2/06", "1-2-06",
}

// ExtractDate finds the transaction date and renders it as YYYY-MM-DD.
func ExtractDate(text string) *string {
	repaired := dateOCRFixRE.ReplaceAllString(text, "0${1}")
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(repaired)
		if m == nil {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, m[1]); err == nil {
				iso := t.Format("2006-01-02")
				return &iso
			}
		}
		return nil
	}
	return nil
}

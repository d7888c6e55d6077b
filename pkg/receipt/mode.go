package receipt

import "strings"

// ExtractMode detects the payment mode by substring priority. Electronic
// wallet payment is the implicit common case for these receipts, so UPI is
// the fallback rather than a detection failure.
func ExtractMode(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "cash"):
		return ModeCash
	case strings.Contains(t, "upi"):
		return ModeUPI
	case strings.Contains(t, "card"), strings.Contains(t, "visa"), strings.Contains(t, "mastercard"):
		return ModeCard
	}
	return ModeUPI
}

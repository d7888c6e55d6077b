package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPriceKeywordPrecedence(t *testing.T) {
	text := "Subtotal 45.00\nGrand Total 52.00"
	got := ExtractPrice(text)
	require.NotNil(t, got)
	assert.Equal(t, 52.00, *got)
}

func TestExtractPriceKeywordWithCurrencyNoise(t *testing.T) {
	got := ExtractPrice("TOTAL: ₹1,234.50")
	require.NotNil(t, got)
	assert.Equal(t, 1234.50, *got)
}

func TestExtractPriceKeywordWithoutDecimals(t *testing.T) {
	got := ExtractPrice("Amount Payable 250")
	require.NotNil(t, got)
	assert.Equal(t, 250.0, *got)
}

func TestExtractPriceTinyKeywordValueFallsBack(t *testing.T) {
	// A labeled value under 1 is untrusted; the fallback max takes over.
	got := ExtractPrice("Total 0.50\nEspresso 12.99")
	require.NotNil(t, got)
	assert.Equal(t, 12.99, *got)
}

func TestExtractPriceFallbackMax(t *testing.T) {
	got := ExtractPrice("Burger 5.00\nFries 2.50\nShake 6.75")
	require.NotNil(t, got)
	assert.Equal(t, 6.75, *got)
}

func TestExtractPriceFallbackExcludesCashAndChange(t *testing.T) {
	got := ExtractPrice("Burger 5.00\nCash 100.00\nChange 95.00")
	require.NotNil(t, got)
	assert.Equal(t, 5.00, *got)
}

func TestExtractPriceFallbackExcludesTaxCodeLines(t *testing.T) {
	got := ExtractPrice("Sandwich 8.40\nCGST 9% 0.76\nSGST 9% 0.76")
	require.NotNil(t, got)
	assert.Equal(t, 8.40, *got)
}

func TestExtractPriceNonNegative(t *testing.T) {
	inputs := []string{
		"Grand Total 52.00",
		"Burger 5.00\nFries 2.50",
		"Total 7",
	}
	for _, in := range inputs {
		if got := ExtractPrice(in); got != nil {
			assert.GreaterOrEqual(t, *got, 0.0)
		}
	}
}

func TestExtractPriceNoneFound(t *testing.T) {
	assert.Nil(t, ExtractPrice("thank you, come again"))
	assert.Nil(t, ExtractPrice(""))
}

func TestExtractPriceIdempotent(t *testing.T) {
	text := "Subtotal 45.00\nGrand Total 52.00"
	first := ExtractPrice(text)
	second := ExtractPrice(text)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

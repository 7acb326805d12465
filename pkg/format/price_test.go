package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFormat(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		format   PriceFormat
		expected string
	}{
		{"default", 20.35, DefaultPriceFormat, "$20.35"},
		{"rounds up", 123456.7890, DefaultPriceFormat, "$123,456.79"},
		{"three decimals", 123456.7890, PriceFormat{3, ".", ","}, "$123,456.789"},
		{"custom separators", 123456.7890, PriceFormat{4, "_", "*"}, "$123*456_7890"},
		{"dollar separator", 123456789.7890, PriceFormat{3, "!", "$"}, "$123$456$789!789"},
		{"no decimals", 1234.5, PriceFormat{0, ".", ","}, "$1,235"},
		{"negative decimals", 99.4, PriceFormat{-2, ".", ","}, "$99"},
		{"half away from zero", 1.005, DefaultPriceFormat, "$1.01"},
		{"small value", 0.001, DefaultPriceFormat, "$0.00"},
		{"zero", 0, DefaultPriceFormat, "$0.00"},
		{"negative", -1234.5, DefaultPriceFormat, "$-1,234.50"},
		{"negative rounds to zero", -0.001, DefaultPriceFormat, "$0.00"},
		{"empty thousands separator", 1234567, PriceFormat{2, ",", ""}, "$1234567,00"},
		{"millions", 1000000, DefaultPriceFormat, "$1,000,000.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.format.Format(tc.value))
		})
	}
}

func TestPriceDefault(t *testing.T) {
	assert.Equal(t, "$123,456.79", Price(123456.7890))
}

func TestPriceNonFinite(t *testing.T) {
	assert.Equal(t, "$NaN", Price(math.NaN()))
	assert.Equal(t, "$Inf", Price(math.Inf(1)))
	assert.Equal(t, "$-Inf", Price(math.Inf(-1)))
}

func TestPriceFormatString(t *testing.T) {
	out, err := DefaultPriceFormat.FormatString("20.35")
	require.NoError(t, err)
	assert.Equal(t, "$20.35", out)

	out, err = DefaultPriceFormat.FormatString(" 1e3 ")
	require.NoError(t, err)
	assert.Equal(t, "$1,000.00", out)

	_, err = DefaultPriceFormat.FormatString("twelve")
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.Contains(t, err.Error(), "twelve")

	for _, input := range []string{"Inf", "-Inf", "+inf", "NaN", "infinity"} {
		_, err = DefaultPriceFormat.FormatString(input)
		assert.ErrorIs(t, err, ErrInvalidNumber, input)
	}
}

package format

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrInvalidNumber is returned when a price string cannot be parsed
var ErrInvalidNumber = errors.New("invalid number")

// maxDecimals bounds the scale factor so it stays a finite float64
const maxDecimals = 20

// PriceFormat controls how a monetary value is rendered
type PriceFormat struct {
	Decimals           int
	DecimalSeparator   string
	ThousandsSeparator string
}

// DefaultPriceFormat renders 123456.789 as $123,456.79
var DefaultPriceFormat = PriceFormat{
	Decimals:           2,
	DecimalSeparator:   ".",
	ThousandsSeparator: ",",
}

// Price formats v with the default price format
func Price(v float64) string {
	return DefaultPriceFormat.Format(v)
}

// FormatString parses s as a float and formats it.
func (f PriceFormat) FormatString(s string) (string, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return f.Format(v), nil
}

// Format rounds v half away from zero to f.Decimals places, groups the
// integer digits in threes and prefixes the result with a dollar sign.
func (f PriceFormat) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "$NaN"
	case math.IsInf(v, 1):
		return "$Inf"
	case math.IsInf(v, -1):
		return "$-Inf"
	}

	decimals := f.Decimals
	if decimals < 0 {
		decimals = 0
	}
	if decimals > maxDecimals {
		decimals = maxDecimals
	}

	scaled := roundScaled(math.Abs(v), decimals)
	digits := scaled.String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	intDigits := digits[:len(digits)-decimals]
	intPart, _ := new(big.Int).SetString(intDigits, 10)
	grouped := strings.ReplaceAll(humanize.BigComma(intPart), ",", f.ThousandsSeparator)

	var b strings.Builder
	b.WriteByte('$')
	if v < 0 && scaled.Sign() != 0 {
		b.WriteByte('-')
	}
	b.WriteString(grouped)
	if decimals > 0 {
		b.WriteString(f.DecimalSeparator)
		b.WriteString(digits[len(digits)-decimals:])
	}

	return b.String()
}

// roundScaled returns round(v * 10^decimals) as an integer. v must be
// finite and non-negative.
func roundScaled(v float64, decimals int) *big.Int {
	scaled := v * math.Pow10(decimals)
	if math.IsInf(scaled, 0) {
		scaled = math.MaxFloat64
	}

	// Pre-round to 15 significant digits so 1.005 rounds like the decimal it was written as.
	if pre, err := strconv.ParseFloat(strconv.FormatFloat(scaled, 'g', 15, 64), 64); err == nil {
		scaled = pre
	}

	n, _ := big.NewFloat(math.Round(scaled)).Int(nil)
	return n
}

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneDefaultFormat(t *testing.T) {
	inputs := []string{
		"1234567890",
		"123.456.7890",
		"11234567890",
		"(123)4567890",
		"(123) 456-7890",
		"(123)456-7890",
		"1-123-456-7890",
		"1 (123)-456-7890",
		"+1234567890",
		"(123)  456 ,.7890",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, "(123) 456-7890", Phone(input, DefaultPhoneFormat))
		})
	}
}

func TestPhoneCustomFormat(t *testing.T) {
	testCases := []struct {
		name     string
		phone    string
		template string
		expected string
	}{
		{"10 digits parens", "1234567890", "($2) $3-$4", "(123) 456-7890"},
		{"10 digits dashes", "1234567890", "$2-$3-$4", "123-456-7890"},
		{"10 digits dots", "1234567890", "$2.$3.$4", "123.456.7890"},
		{"10 digits reordered", "1234567890", "$3::$4:..:$2", "456::7890:..:123"},
		{"10 digits empty country", "1234567890", "$1-($2) $3-$4", "-(123) 456-7890"},
		{"11 digits parens", "11234567890", "$1 ($2) $3-$4", "1 (123) 456-7890"},
		{"11 digits dashes", "11234567890", "$1-$2-$3-$4", "1-123-456-7890"},
		{"11 digits dots", "11234567890", "$1.$2.$3.$4", "1.123.456.7890"},
		{"11 digits reordered", "11234567890", "$3::$4:..:$2???$1", "456::7890:..:123???1"},
		{"other country digit", "21234567890", "$1-($2) $3-$4", "2-(123) 456-7890"},
		{"braced references", "11234567890", "${1}${2}x${3}", "1123x456"},
		{"whole number", "(123) 456-7890", "tel:$0", "tel:1234567890"},
		{"literal dollar", "1234567890", "$$2 $9 $", "$123 $9 $"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Phone(tc.phone, tc.template))
		})
	}
}

func TestPhoneInvalidPassthrough(t *testing.T) {
	inputs := []string{
		"xxx",
		"123-456-789",
		"456-7890",
		"1 (123) 456-78901",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, Phone(input, DefaultPhoneFormat))
		})
	}
}

package format

import "strings"

// DefaultPhoneFormat renders a 10 digit number as (800) 234-5678
const DefaultPhoneFormat = "($2) $3-$4"

// Phone reformats a phone number using a template of positional sections.
//
// For 1-800-234-5678 the sections are $1 = 1, $2 = 800, $3 = 234, $4 = 5678.
// $0 expands to every digit. Numbers that do not have 10 or 11 digits are
// returned exactly as given.
func Phone(raw, template string) string {
	digits := stripNonDigits(raw)
	if len(digits) < 10 || len(digits) > 11 {
		return raw
	}

	n := len(digits)
	sections := [5]string{
		digits,
		digits[:n-10],
		digits[n-10 : n-7],
		digits[n-7 : n-4],
		digits[n-4:],
	}

	return expandSections(template, sections)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// expandSections replaces $N and ${N} references (N in 0..4) in template.
func expandSections(template string, sections [5]string) string {
	var b strings.Builder
	b.Grow(len(template) + 16)

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}

		next := template[i+1]
		if isSection(next) {
			b.WriteString(sections[next-'0'])
			i++
			continue
		}

		if next == '{' && i+3 < len(template) && isSection(template[i+2]) && template[i+3] == '}' {
			b.WriteString(sections[template[i+2]-'0'])
			i += 3
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

func isSection(c byte) bool {
	return c >= '0' && c <= '4'
}

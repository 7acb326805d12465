package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrInvalidDate is returned when a date string cannot be understood
var ErrInvalidDate = errors.New("invalid date")

type relativeOffset struct {
	years, months, days int
	duration            time.Duration
}

func (o *relativeOffset) negate() {
	o.years, o.months, o.days = -o.years, -o.months, -o.days
	o.duration = -o.duration
}

func (o relativeOffset) applyTo(t time.Time) time.Time {
	return t.AddDate(o.years, o.months, o.days).Add(o.duration)
}

// ParseInstant parses s relative to now. Besides absolute dates it accepts
// "now", "today", "midnight", "yesterday", "tomorrow" and relative phrases
// such as "-2 weeks", "-1 day 6 hours", "+7 days" or "3 hours ago".
func ParseInstant(s string, now time.Time) (time.Time, error) {
	text := strings.ToLower(strings.TrimSpace(s))

	switch text {
	case "", "now":
		return now, nil
	case "today", "midnight":
		return startOfDay(now), nil
	case "yesterday":
		return startOfDay(now).AddDate(0, 0, -1), nil
	case "tomorrow":
		return startOfDay(now).AddDate(0, 0, 1), nil
	}

	if offset, ok := parseRelative(text); ok {
		return offset.applyTo(now), nil
	}

	t, err := dateparse.ParseIn(strings.TrimSpace(s), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// parseRelative reads a sequence of "[+-]N unit" terms. Each term keeps its
// own sign and a trailing "ago" negates the whole offset.
func parseRelative(text string) (relativeOffset, bool) {
	var offset relativeOffset

	fields := strings.Fields(text)
	ago := len(fields) > 0 && fields[len(fields)-1] == "ago"
	if ago {
		fields = fields[:len(fields)-1]
	}
	if len(fields) == 0 {
		return offset, false
	}

	tokens := splitTerms(fields)
	if len(tokens)%2 != 0 {
		return relativeOffset{}, false
	}

	for i := 0; i < len(tokens); i += 2 {
		n, err := strconv.Atoi(tokens[i])
		if err != nil {
			return relativeOffset{}, false
		}
		if !offset.add(n, tokens[i+1]) {
			return relativeOffset{}, false
		}
	}

	if ago {
		offset.negate()
	}
	return offset, true
}

// splitTerms separates glued terms such as "+2days" into number and unit.
func splitTerms(fields []string) []string {
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		cut := strings.IndexFunc(f, func(r rune) bool {
			return r != '+' && r != '-' && (r < '0' || r > '9')
		})
		if cut > 0 {
			tokens = append(tokens, f[:cut], f[cut:])
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func (o *relativeOffset) add(n int, unit string) bool {
	switch strings.TrimSuffix(unit, "s") {
	case "sec", "second":
		o.duration += time.Duration(n) * time.Second
	case "min", "minute":
		o.duration += time.Duration(n) * time.Minute
	case "hour":
		o.duration += time.Duration(n) * time.Hour
	case "day":
		o.days += n
	case "week":
		o.days += 7 * n
	case "fortnight":
		o.days += 14 * n
	case "month":
		o.months += n
	case "year":
		o.years += n
	default:
		return false
	}
	return true
}

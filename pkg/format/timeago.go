package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Defaults for TimeAgo
const (
	DefaultGranularity = 1
	DefaultSuffix      = "ago"
	MaxGranularity     = 6
)

type unit struct {
	name  string
	value func(Interval) int
}

var units = []unit{
	{"year", func(iv Interval) int { return iv.Years }},
	{"month", func(iv Interval) int { return iv.Months }},
	{"day", func(iv Interval) int { return iv.Days }},
	{"hour", func(iv Interval) int { return iv.Hours }},
	{"minute", func(iv Interval) int { return iv.Minutes }},
	{"second", func(iv Interval) int { return iv.Seconds }},
}

// Granularity converts v to a granularity between 1 and MaxGranularity.
// Fractions are truncated. Anything that is not a number in that range
// becomes 1.
func Granularity(v any) int {
	g, err := cast.ToIntE(v)
	if err != nil {
		f, ferr := cast.ToFloat64E(v)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return DefaultGranularity
		}
		f = math.Trunc(f)
		if f < 1 || f > MaxGranularity {
			return DefaultGranularity
		}
		g = int(f)
	}
	if g < 1 || g > MaxGranularity {
		return DefaultGranularity
	}
	return g
}

// TimeAgo describes how long before reference the instant happened, such as
// "2 days 6 hours ago". At most granularity units are included, largest
// first. ok is false when instant is after reference.
func TimeAgo(instant, reference time.Time, granularity int, suffix string) (phrase string, ok bool) {
	if granularity < 1 || granularity > MaxGranularity {
		granularity = DefaultGranularity
	}

	if instant.After(reference) {
		return "", false
	}

	iv := Between(instant, reference)
	if instant.Equal(reference) || iv.IsZero() {
		return strings.TrimSpace("0 seconds " + suffix), true
	}

	var b strings.Builder
	emitted := 0
	for _, u := range units {
		n := u.value(iv)
		if n >= 1 {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(n))
			b.WriteByte(' ')
			b.WriteString(u.name)
			if n != 1 {
				b.WriteByte('s')
			}
			emitted++
		}

		if emitted == granularity {
			break
		}
	}

	if suffix != "" {
		b.WriteByte(' ')
		b.WriteString(suffix)
	}

	return strings.TrimSpace(b.String()), true
}

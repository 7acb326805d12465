package format

import "time"

// Interval is a calendar difference between two instants. Each field holds
// the remainder after the larger units are taken out, so 54 hours is
// 2 days and 6 hours.
type Interval struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every component is zero
func (iv Interval) IsZero() bool {
	return iv == Interval{}
}

// Between returns the calendar difference from earlier to later, measured on
// the wall clock of later's location. Spans shorter than a day are measured
// in elapsed time, so a DST change inside them counts as the hour that really
// passed. The arguments are swapped if needed.
func Between(earlier, later time.Time) Interval {
	if earlier.After(later) {
		earlier, later = later, earlier
	}
	earlier = earlier.In(later.Location())

	if elapsed := later.Sub(earlier); elapsed < 24*time.Hour {
		return Interval{
			Hours:   int(elapsed / time.Hour),
			Minutes: int(elapsed % time.Hour / time.Minute),
			Seconds: int(elapsed % time.Minute / time.Second),
		}
	}

	y1, mo1, d1 := earlier.Date()
	h1, mi1, s1 := earlier.Clock()
	y2, mo2, d2 := later.Date()
	h2, mi2, s2 := later.Clock()

	iv := Interval{
		Years:   y2 - y1,
		Months:  int(mo2) - int(mo1),
		Days:    d2 - d1,
		Hours:   h2 - h1,
		Minutes: mi2 - mi1,
		Seconds: s2 - s1,
	}

	// A nanosecond remainder lowers the whole second difference.
	if later.Nanosecond() < earlier.Nanosecond() {
		iv.Seconds--
	}

	borrow(&iv.Seconds, &iv.Minutes, 60)
	borrow(&iv.Minutes, &iv.Hours, 60)
	borrow(&iv.Hours, &iv.Days, 24)

	// Days borrow whole months starting from the month earlier falls in.
	year, month := y1, mo1
	for iv.Days < 0 {
		iv.Days += daysIn(year, month)
		iv.Months--
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}

	borrow(&iv.Months, &iv.Years, 12)

	return iv
}

func borrow(v, next *int, size int) {
	for *v < 0 {
		*v += size
		*next--
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

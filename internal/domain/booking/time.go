package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04:05"

	secondsPerHour = 3600
)

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)$`)

// TimeOfDay is a naive wall-clock time stored as seconds since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrBadTimeFormat
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	return NewTimeOfDay(h, mi, sec), nil
}

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*secondsPerHour + minute*60 + second)
}

func (t TimeOfDay) Hour() int    { return int(t) / secondsPerHour }
func (t TimeOfDay) Minute() int  { return int(t) % secondsPerHour / 60 }
func (t TimeOfDay) Second() int  { return int(t) % 60 }
func (t TimeOfDay) Seconds() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Date is a calendar date with no time zone attached.
type Date struct {
	year  int
	month time.Month
	day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) IsZero() bool { return d.year == 0 && d.month == 0 && d.day == 0 }

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// At combines the date with a wall-clock time in loc. A nil loc means UTC.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), t.Second(), 0, loc)
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// IntervalsOverlap reports whether [aStart, aEnd) and [bStart, bEnd) share an instant.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

func DurationHours(start, end TimeOfDay) (float64, error) {
	if end <= start {
		return 0, ErrNonPositiveDuration
	}
	return float64(end-start) / secondsPerHour, nil
}

type TimeSlot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(start, end TimeOfDay) (TimeSlot, error) {
	if start >= end {
		return TimeSlot{}, ErrEndBeforeStart
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() TimeOfDay { return ts.start }
func (ts TimeSlot) End() TimeOfDay   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return time.Duration(ts.end-ts.start) * time.Second
}

func (ts TimeSlot) Hours() float64 {
	return float64(ts.end-ts.start) / secondsPerHour
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return IntervalsOverlap(ts.start, ts.end, other.start, other.end)
}

// Package timeofday models wall-clock minutes within a single day and
// half-open ranges over them. Reservations never span midnight, so all
// interval arithmetic happens on minute offsets from 00:00.
package timeofday

import (
	"errors"
	"fmt"
	"slotbook/shared/constant"
	"time"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var (
	ErrInvalidFormat = errors.New("time of day must be formatted as HH:MM")
	ErrEmptyRange    = errors.New("start must be before end")
)

// TimeOfDay is a minute offset from midnight.
type TimeOfDay int

func Parse(value string) (TimeOfDay, error) {
	t, err := time.Parse(constant.TimeOfDayLayout, value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}

	return TimeOfDay(t.Hour()*MinutesPerHour + t.Minute()), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(value string) TimeOfDay {
	t, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/MinutesPerHour, int(t)%MinutesPerHour)
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewRange(start, end TimeOfDay) (Range, error) {
	r := Range{Start: start, End: end}
	if !r.Valid() {
		return Range{}, fmt.Errorf("%w: %s", ErrEmptyRange, r)
	}

	return r, nil
}

// ParseRange parses both bounds and rejects empty or inverted ranges.
func ParseRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}

	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}

	return NewRange(s, e)
}

func (r Range) Valid() bool {
	return r.Start >= 0 && r.End <= MinutesPerDay && r.Start < r.End
}

func (r Range) Minutes() int {
	return int(r.End - r.Start)
}

// Hours is the fractional length of the range, e.g. 90 minutes is 1.5.
func (r Range) Hours() float64 {
	return float64(r.Minutes()) / MinutesPerHour
}

// Overlaps reports whether two half-open ranges share at least one minute.
// Ranges that merely touch (one ends when the other begins) do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && r.End > other.Start
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

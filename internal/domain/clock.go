package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// OperatingHours describes when and how guests may be seated. Open and Close
// are offsets from local midnight; Close is the last start time offered.
type OperatingHours struct {
	Location *time.Location
	Open     time.Duration
	Close    time.Duration
	Step     time.Duration
	Duration time.Duration
	MinGap   time.Duration
}

// Validate checks the values every other method relies on: a location, a
// positive grid step and slot length, and a window that does not run
// backwards. The zero value is not valid.
func (h OperatingHours) Validate() error {
	switch {
	case h.Location == nil:
		return fmt.Errorf("%w: operating hours need a location", ErrValidation)
	case h.Step <= 0:
		return fmt.Errorf("%w: slot step must be positive, got %s", ErrValidation, h.Step)
	case h.Duration <= 0:
		return fmt.Errorf("%w: reservation duration must be positive, got %s", ErrValidation, h.Duration)
	case h.MinGap < 0:
		return fmt.Errorf("%w: minimum gap must not be negative, got %s", ErrValidation, h.MinGap)
	case h.Close < h.Open:
		return fmt.Errorf("%w: close %s is before open %s", ErrValidation, FormatTimeOfDay(h.Close), FormatTimeOfDay(h.Open))
	}
	return nil
}

// ParseTimeOfDay converts "HH:MM" into an offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q must be HH:MM", ErrValidation, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// FormatTimeOfDay is the inverse of ParseTimeOfDay.
func FormatTimeOfDay(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// Combine turns a local date and time of day into a UTC instant.
func (h OperatingHours) Combine(date, timeOfDay string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, h.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrValidation, date)
	}
	offset, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return h.at(day, offset), nil
}

// Local converts an instant into venue local time.
func (h OperatingHours) Local(t time.Time) time.Time {
	return t.In(h.Location)
}

func (h OperatingHours) LocalDate(t time.Time) string {
	return h.Local(t).Format(DateLayout)
}

func (h OperatingHours) LocalTimeOfDay(t time.Time) string {
	return h.Local(t).Format(TimeLayout)
}

// ValidateStart checks that t is a bookable start: inside the operating
// window and on the slot grid.
func (h OperatingHours) ValidateStart(t time.Time) error {
	offset := h.offset(t)
	if offset < h.Open || offset > h.Close {
		return fmt.Errorf("%w: %s is outside %s-%s", ErrInvalidSlot,
			h.LocalTimeOfDay(t), FormatTimeOfDay(h.Open), FormatTimeOfDay(h.Close))
	}
	if (offset-h.Open)%h.Step != 0 {
		return fmt.Errorf("%w: %s is not on the %s grid", ErrInvalidSlot, h.LocalTimeOfDay(t), h.Step)
	}
	return nil
}

// LastStart returns the latest start offered on the local day of t.
func (h OperatingHours) LastStart(t time.Time) time.Time {
	return h.at(h.midnight(t), h.Close)
}

// CeilToGrid rounds t up to the next slot boundary on its local day. Times
// before opening round up to opening.
func (h OperatingHours) CeilToGrid(t time.Time) time.Time {
	offset := h.offset(t)
	if offset <= h.Open {
		return h.at(h.midnight(t), h.Open)
	}
	steps := (offset - h.Open + h.Step - 1) / h.Step
	return h.at(h.midnight(t), h.Open+steps*h.Step)
}

// Slots lists the start times of day the venue offers. It is empty unless
// Step is positive.
func (h OperatingHours) Slots() []string {
	if h.Step <= 0 {
		return nil
	}
	var out []string
	for off := h.Open; off <= h.Close; off += h.Step {
		out = append(out, FormatTimeOfDay(off))
	}
	return out
}

// SameLocalDay reports whether a and b fall on the same venue calendar date.
func (h OperatingHours) SameLocalDay(a, b time.Time) bool {
	return h.LocalDate(a) == h.LocalDate(b)
}

func (h OperatingHours) midnight(t time.Time) time.Time {
	l := h.Local(t)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, h.Location)
}

func (h OperatingHours) offset(t time.Time) time.Duration {
	l := h.Local(t)
	return time.Duration(l.Hour())*time.Hour + time.Duration(l.Minute())*time.Minute +
		time.Duration(l.Second())*time.Second + time.Duration(l.Nanosecond())
}

func (h OperatingHours) at(midnight time.Time, offset time.Duration) time.Time {
	hh := int(offset / time.Hour)
	mm := int(offset % time.Hour / time.Minute)
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), hh, mm, 0, 0, h.Location).UTC()
}

// Overlaps is the half-open interval test: [aStart,aEnd) and [bStart,bEnd)
// share an instant. Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

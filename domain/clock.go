package domain

import "time"

// Clock supplies the current time to accounts and histories.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. A nil Location keeps time.Local.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	now := time.Now()
	if c.Location != nil {
		return now.In(c.Location)
	}
	return now
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// sameDay reports whether t falls on the calendar day of ref, in ref's location.
func sameDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	return ty == ry && tm == rm && td == rd
}

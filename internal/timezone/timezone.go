package timezone

import "time"

const DefaultTimezone = "America/Bogota"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.Local
}

// Clock is the time source used wherever "today" matters.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func SystemClock(tz string) Clock {
	return systemClock{loc: Location(tz)}
}

// Fixed always returns t. Used by tests and replays.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Package booking holds the appointment creation workflow: slot generation,
// the draft, submission and cancellation.
package booking

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DayCount  = 14
	DayLayout = "2006-01-02"

	openHour   = 9
	closeHour  = 19
	slotMinute = 30
)

// es-ES abbreviations, as the mobile app renders them.
var (
	weekdayShort = [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
	monthShort   = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}
)

type DateOption struct {
	Key    string
	Top    string
	Bottom string
}

// Dates lists DayCount days starting with the day of now.
func Dates(now time.Time) []DateOption {
	upper := cases.Upper(language.Spanish)
	out := make([]DateOption, 0, DayCount)
	for i := 0; i < DayCount; i++ {
		d := now.AddDate(0, 0, i)
		out = append(out, DateOption{
			Key:    d.Format(DayLayout),
			Top:    upper.String(weekdayShort[d.Weekday()]),
			Bottom: fmt.Sprintf("%02d %s", d.Day(), monthShort[d.Month()-1]),
		})
	}
	return out
}

// Times returns the half-hour slots from 09:00 to 19:00 inclusive. They are
// fixed business hours; the barbershop's opening and closing times are not
// consulted and the server decides collisions.
func Times() []string {
	var out []string
	for m := openHour * 60; m <= closeHour*60; m += slotMinute {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}

func isSlot(hhmm string) bool {
	for _, t := range Times() {
		if t == hhmm {
			return true
		}
	}
	return false
}

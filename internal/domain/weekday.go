package domain

import "time"

// Weekday is a Monday-first day-of-week index (1 = Monday ... 7 = Sunday)
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// IsValid returns true for values 1..7
func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// Name returns the English weekday name, or "Unknown" for out-of-range values
func (d Weekday) Name() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return weekdayNames[d]
}

// FromTimeWeekday converts time.Weekday (Sunday-first) to the Monday-first index
func FromTimeWeekday(w time.Weekday) Weekday {
	if w == time.Sunday {
		return Sunday
	}
	return Weekday(w)
}

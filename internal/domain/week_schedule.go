package domain

import (
	"fmt"
)

// WeeklySchedule is the full seven-day configuration for one hall:
// exactly one DaySchedule per weekday, Monday through Sunday.
type WeeklySchedule struct {
	HallID int64
	Days   [DaysPerWeek]DaySchedule // index 0 = Monday
}

// Violation describes one active day whose bounds break the
// start-before-end invariant
type Violation struct {
	Day     Weekday
	Message string
}

func (v Violation) Error() string {
	return v.Message
}

// NewDefaultWeeklySchedule returns the standard template: all seven days
// active with the default operating hours 07:00-23:30
func NewDefaultWeeklySchedule(hallID int64) *WeeklySchedule {
	w := &WeeklySchedule{HallID: hallID}
	for i := range w.Days {
		w.Days[i] = DaySchedule{
			HallID:    hallID,
			DayOfWeek: Weekday(i + 1),
			StartTime: DefaultOpenTime,
			EndTime:   DefaultCloseTime,
			IsActive:  true,
		}
	}
	return w
}

// FromRecords assembles a weekly schedule from an unordered set of day
// records, requiring exactly one record per weekday 1..7
func FromRecords(hallID int64, records []DaySchedule) (*WeeklySchedule, error) {
	if len(records) != DaysPerWeek {
		return nil, fmt.Errorf("weekly schedule requires %d day entries, got %d", DaysPerWeek, len(records))
	}

	w := &WeeklySchedule{HallID: hallID}
	seen := [DaysPerWeek + 1]bool{}

	for _, rec := range records {
		if !rec.DayOfWeek.IsValid() {
			return nil, fmt.Errorf("invalid day of week %d", rec.DayOfWeek)
		}
		if seen[rec.DayOfWeek] {
			return nil, fmt.Errorf("duplicate entry for %s", rec.DayOfWeek.Name())
		}
		seen[rec.DayOfWeek] = true
		rec.HallID = hallID
		w.Days[rec.DayOfWeek-1] = rec
	}

	return w, nil
}

// Day returns the entry for the given weekday
func (w *WeeklySchedule) Day(d Weekday) DaySchedule {
	return w.Days[d-1]
}

// ReplaceDay returns a copy of the schedule with the patch merged into one
// day. All other days are unchanged; there are no cross-day invariants.
func (w *WeeklySchedule) ReplaceDay(d Weekday, patch DayPatch) *WeeklySchedule {
	updated := *w
	day := updated.Days[d-1]
	patch.Apply(&day)
	updated.Days[d-1] = day
	return &updated
}

// Validate checks the active-day invariant for every day and returns one
// violation per offending day, naming the weekday. Inactive days are never
// violations.
func (w *WeeklySchedule) Validate() []Violation {
	var violations []Violation
	for i := range w.Days {
		day := &w.Days[i]
		if !day.IsActive {
			continue
		}
		if !day.HasValidBounds() {
			violations = append(violations, Violation{
				Day:     day.DayOfWeek,
				Message: fmt.Sprintf("%s: start time must be before end time", day.DayOfWeek.Name()),
			})
		}
	}
	return violations
}

// TotalSlots returns the sum of bookable units over all active days
func (w *WeeklySchedule) TotalSlots() int {
	total := 0
	for i := range w.Days {
		total += w.Days[i].Slots()
	}
	return total
}

// ActiveDayCount returns the number of days the hall is open
func (w *WeeklySchedule) ActiveDayCount() int {
	count := 0
	for i := range w.Days {
		if w.Days[i].IsActive {
			count++
		}
	}
	return count
}

// Records returns the days as a slice ordered Monday..Sunday
func (w *WeeklySchedule) Records() []DaySchedule {
	records := make([]DaySchedule, DaysPerWeek)
	copy(records, w.Days[:])
	return records
}

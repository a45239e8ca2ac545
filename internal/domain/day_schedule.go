package domain

import (
	"time"

	"github.com/hallhub/SHB-ScheduleService/pkg/types"
)

// DaySchedule represents one weekday's operating hours for a hall.
// When IsActive is false the hall is closed that day; start and end times
// are kept for display but excluded from slot derivation.
type DaySchedule struct {
	ID        int64
	HallID    int64
	DayOfWeek Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidBounds returns true if StartTime is strictly before EndTime.
// Only meaningful for active days; checked lazily at save time so the user
// may move through transient invalid states while editing.
func (d *DaySchedule) HasValidBounds() bool {
	return d.StartTime.IsBefore(d.EndTime)
}

// Slots returns the number of bookable units the day's bounds yield.
// Inactive days yield 0 regardless of bounds.
func (d *DaySchedule) Slots() int {
	if !d.IsActive {
		return 0
	}
	return CalculateSlots(d.StartTime, d.EndTime)
}

// DayPatch is a partial update of one day's fields.
// Only non-nil fields are applied.
type DayPatch struct {
	StartTime *types.TimeString
	EndTime   *types.TimeString
	IsActive  *bool
}

// Apply merges the patch into the day
func (p DayPatch) Apply(day *DaySchedule) {
	if p.StartTime != nil {
		day.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		day.EndTime = *p.EndTime
	}
	if p.IsActive != nil {
		day.IsActive = *p.IsActive
	}
}

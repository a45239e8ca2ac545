package domain

import "github.com/hallhub/SHB-ScheduleService/pkg/types"

// Slot configuration
const (
	// SlotDurationMinutes is the fixed length of one bookable unit
	SlotDurationMinutes = 90

	// DaysPerWeek number of day entries in a weekly schedule
	DaysPerWeek = 7
)

// Selectable time grid bounds
const (
	// GridStartMinutes is the first selectable time of day (07:00)
	GridStartMinutes = 7 * 60

	// GridEndMinutes is the inclusive upper bound of the grid (24:00)
	GridEndMinutes = 24 * 60
)

// Default operating hours applied by the standard template
const (
	DefaultOpenTime  = types.TimeString("07:00")
	DefaultCloseTime = types.TimeString("23:30")
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

package domain

import "github.com/hallhub/SHB-ScheduleService/pkg/types"

// CalculateSlots derives the number of bookable units between two times of
// day: floor((end - start) / 90min).
//
// Missing or unparseable inputs and non-positive durations all yield 0
// rather than an error. This silent degrade-to-zero is the documented
// behaviour of the editor and is relied on for display while the user is
// mid-edit.
func CalculateSlots(start, end types.TimeString) int {
	s, err := start.Minutes()
	if err != nil {
		return 0
	}
	e, err := end.Minutes()
	if err != nil {
		return 0
	}
	if e <= s {
		return 0
	}
	return (e - s) / SlotDurationMinutes
}

// GenerateTimeSlots returns the fixed lattice of selectable start/end times:
// 07:00 through 24:00 inclusive, stepped by 90 minutes. Stepping from 07:00
// never lands on 24:00 exactly, so the sequence ends at 23:30 — 12 values.
func GenerateTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, 12)
	for m := GridStartMinutes; m <= GridEndMinutes; m += SlotDurationMinutes {
		slots = append(slots, types.FromMinutes(m))
	}
	return slots
}

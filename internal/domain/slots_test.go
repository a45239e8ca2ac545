package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallhub/SHB-ScheduleService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots()

	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("07:00"), slots[0])
	assert.Equal(t, types.TimeString("23:30"), slots[len(slots)-1])

	expected := []types.TimeString{
		"07:00", "08:30", "10:00", "11:30", "13:00", "14:30",
		"16:00", "17:30", "19:00", "20:30", "22:00", "23:30",
	}
	assert.Equal(t, expected, slots)

	// Строго возрастает с шагом ровно 90 минут
	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, SlotDurationMinutes, cur-prev)
	}
}

func TestCalculateSlots(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  int
	}{
		{"full default day", "07:00", "23:30", 11},
		{"single slot", "10:00", "11:30", 1},
		{"floor of partial slot", "10:00", "12:00", 1},
		{"two slots", "10:00", "13:00", 2},
		{"equal bounds", "10:00", "10:00", 0},
		{"reversed bounds", "12:00", "10:00", 0},
		{"empty start", "", "12:00", 0},
		{"empty end", "10:00", "", 0},
		{"malformed start", "ten", "12:00", 0},
		{"malformed end", "10:00", "noon", 0},
		{"duration below one slot", "10:00", "11:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateSlots(tt.start, tt.end))
		})
	}
}

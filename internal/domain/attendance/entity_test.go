package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 3, hour, min, 0, 0, time.UTC)
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want Status
	}{
		{"midnight", at(0, 0), StatusAttended},
		{"early morning", at(7, 59), StatusAttended},
		{"on the dot", at(8, 15), StatusAttended},
		{"one minute over", at(8, 16), StatusLate},
		{"before nine", at(8, 59), StatusLate},
		{"nine sharp", at(9, 0), StatusLate},
		{"late morning", at(11, 30), StatusLate},
		{"end of day", at(23, 59), StatusLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DeriveStatus(c.in))
		})
	}
}

// Check-in never yields Absent or OnLeave regardless of the minute of day.
func TestDeriveStatusNeverAbsentOrOnLeave(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			got := DeriveStatus(at(h, m))
			assert.NotEqual(t, StatusAbsent, got)
			assert.NotEqual(t, StatusOnLeave, got)
		}
	}
}

func TestFormatCheckIn(t *testing.T) {
	assert.Equal(t, "08:07 AM", FormatCheckIn(at(8, 7)))
	assert.Equal(t, "02:30 PM", FormatCheckIn(at(14, 30)))
	assert.Equal(t, "12:00 AM", FormatCheckIn(at(0, 0)))
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2024, 6, 3, 17, 45, 12, 99, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), d)
}

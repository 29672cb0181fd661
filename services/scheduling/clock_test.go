package scheduling

import (
	"testing"

	"koobings/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:00": 540,
		"12:30": 750,
		"23:59": 1439,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{"", "9:00", "09:0", "24:00", "09:60", "09-00", "ab:cd", "09:00:00"} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrMalformedSchedule, "input %q", in)
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, min := range []int{0, 540, 750, 1439} {
		got, err := ParseClock(FormatClock(min))
		require.NoError(t, err)
		assert.Equal(t, min, got)
	}
}

func TestWorkingIntervals_NonWorkingDay(t *testing.T) {
	got, err := WorkingIntervals(models.DaySchedule{IsWorking: false})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWorkingIntervals_BreakExcised(t *testing.T) {
	day := models.DaySchedule{
		IsWorking: true,
		Intervals: []models.ClockInterval{{Start: "09:00", End: "17:00"}},
		Break:     &models.ClockInterval{Start: "12:00", End: "13:00"},
	}
	got, err := WorkingIntervals(day)
	require.NoError(t, err)
	assert.Equal(t, []models.Interval{{Start: 540, End: 720}, {Start: 780, End: 1020}}, got)
}

func TestWorkingIntervals_SortsIntervals(t *testing.T) {
	day := models.DaySchedule{
		IsWorking: true,
		Intervals: []models.ClockInterval{
			{Start: "14:00", End: "18:00"},
			{Start: "09:00", End: "12:00"},
		},
	}
	got, err := WorkingIntervals(day)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 540, got[0].Start)
	assert.Equal(t, 840, got[1].Start)
}

func TestWorkingIntervals_Malformed(t *testing.T) {
	day := models.DaySchedule{
		IsWorking: true,
		Intervals: []models.ClockInterval{{Start: "17:00", End: "09:00"}},
	}
	_, err := WorkingIntervals(day)
	assert.ErrorIs(t, err, ErrMalformedSchedule)

	day.Intervals = []models.ClockInterval{{Start: "9am", End: "5pm"}}
	_, err = WorkingIntervals(day)
	assert.ErrorIs(t, err, ErrMalformedSchedule)
}

func TestValidateSchedule(t *testing.T) {
	ok := map[string]models.DaySchedule{
		"monday": {IsWorking: true, Intervals: []models.ClockInterval{{Start: "09:00", End: "17:00"}}},
		"sunday": {IsWorking: false},
	}
	assert.NoError(t, ValidateSchedule(ok))

	bad := map[string]models.DaySchedule{
		"funday": {IsWorking: false},
	}
	assert.ErrorIs(t, ValidateSchedule(bad), ErrMalformedSchedule)

	badTimes := map[string]models.DaySchedule{
		"monday": {IsWorking: true, Intervals: []models.ClockInterval{{Start: "09:00", End: "25:00"}}},
	}
	assert.ErrorIs(t, ValidateSchedule(badTimes), ErrMalformedSchedule)
}

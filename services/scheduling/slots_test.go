package scheduling

import (
	"testing"

	"koobings/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(start, end int) models.Interval { return models.Interval{Start: start, End: end} }

func TestGenerateSlots_CountFormula(t *testing.T) {
	// For [s,e) and d <= e-s the generator must produce exactly
	// floor((e-s-d)/step)+1 candidates.
	cases := []struct {
		name     string
		interval models.Interval
		duration int
		step     int
	}{
		{"nine to five, hour service", iv(540, 1020), 60, 30},
		{"short window", iv(540, 600), 30, 30},
		{"exact fit", iv(540, 600), 60, 30},
		{"uneven step", iv(540, 1020), 45, 30},
		{"step bigger than duration", iv(600, 900), 15, 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GenerateSlots([]models.Interval{tc.interval}, tc.duration, tc.step)
			span := tc.interval.End - tc.interval.Start
			want := (span-tc.duration)/tc.step + 1
			assert.Len(t, got, want)
		})
	}
}

func TestGenerateSlots_DurationExceedsWindow(t *testing.T) {
	got := GenerateSlots([]models.Interval{iv(540, 600)}, 90, 30)
	assert.Empty(t, got)
}

func TestGenerateSlots_NoCandidateExceedsBounds(t *testing.T) {
	interval := iv(555, 1010)
	for _, start := range GenerateSlots([]models.Interval{interval}, 45, 30) {
		assert.GreaterOrEqual(t, start, interval.Start)
		assert.LessOrEqual(t, start+45, interval.End)
	}
}

func TestGenerateSlots_BoundaryslotIncluded(t *testing.T) {
	// Working hours end exactly on a duration boundary: the last slot whose
	// end equals the boundary is included.
	got := GenerateSlots([]models.Interval{iv(540, 660)}, 60, 30)
	require.Equal(t, []int{540, 570, 600}, got)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	intervals := []models.Interval{iv(540, 720), iv(780, 1020)}
	first := GenerateSlots(intervals, 60, 30)
	second := GenerateSlots(intervals, 60, 30)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	assert.Nil(t, GenerateSlots([]models.Interval{iv(540, 720)}, 0, 30))
	assert.Nil(t, GenerateSlots([]models.Interval{iv(540, 720)}, -30, 30))
	assert.Nil(t, GenerateSlots([]models.Interval{iv(540, 720)}, 30, 0))
}

func TestSplitBreak_LunchInsideHours(t *testing.T) {
	// Hours 09:00-17:00, lunch 12:00-13:00 -> exactly [09:00,12:00) and [13:00,17:00).
	brk := iv(720, 780)
	got := SplitBreak(iv(540, 1020), &brk)
	require.Equal(t, []models.Interval{iv(540, 720), iv(780, 1020)}, got)
}

func TestSplitBreak_NoBreak(t *testing.T) {
	got := SplitBreak(iv(540, 1020), nil)
	require.Equal(t, []models.Interval{iv(540, 1020)}, got)
}

func TestSplitBreak_Degenerate(t *testing.T) {
	work := iv(540, 1020)

	t.Run("break covers hours entirely", func(t *testing.T) {
		brk := iv(480, 1080)
		assert.Empty(t, SplitBreak(work, &brk))
	})
	t.Run("break equals hours", func(t *testing.T) {
		brk := work
		assert.Empty(t, SplitBreak(work, &brk))
	})
	t.Run("break before hours", func(t *testing.T) {
		brk := iv(300, 360)
		assert.Equal(t, []models.Interval{work}, SplitBreak(work, &brk))
	})
	t.Run("break after hours", func(t *testing.T) {
		brk := iv(1080, 1140)
		assert.Equal(t, []models.Interval{work}, SplitBreak(work, &brk))
	})
	t.Run("break overlaps start", func(t *testing.T) {
		brk := iv(480, 600)
		assert.Equal(t, []models.Interval{iv(600, 1020)}, SplitBreak(work, &brk))
	})
	t.Run("break overlaps end", func(t *testing.T) {
		brk := iv(960, 1080)
		assert.Equal(t, []models.Interval{iv(540, 960)}, SplitBreak(work, &brk))
	})
}

func TestOverlaps_HalfOpen(t *testing.T) {
	// [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2. Touching
	// intervals do not overlap.
	assert.True(t, iv(600, 660).Overlaps(iv(630, 690)))
	assert.True(t, iv(630, 690).Overlaps(iv(600, 660)))
	assert.True(t, iv(600, 720).Overlaps(iv(630, 660))) // containment
	assert.False(t, iv(600, 660).Overlaps(iv(660, 720)))
	assert.False(t, iv(660, 720).Overlaps(iv(600, 660)))
}

func TestAnnotateConflicts_ExcludesOverlapping(t *testing.T) {
	// Existing appointment 10:00-10:30; candidates step 30 from 09:00 to
	// 12:00 with 30-minute duration. 10:00 must be excluded; 09:30 and
	// 10:30 must remain.
	candidates := GenerateSlots([]models.Interval{iv(540, 720)}, 30, 30)
	busy := []models.Interval{iv(600, 630)}

	slots := AnnotateConflicts(candidates, 30, busy, -1)
	statuses := map[string]bool{}
	for _, s := range slots {
		statuses[s.Time] = s.Available
	}

	assert.False(t, statuses["10:00"])
	assert.True(t, statuses["09:30"])
	assert.True(t, statuses["10:30"])
}

func TestAnnotateConflicts_TodayFilter(t *testing.T) {
	candidates := GenerateSlots([]models.Interval{iv(540, 720)}, 30, 30)

	// now == 10:00: candidates at or before 10:00 are excluded.
	slots := AnnotateConflicts(candidates, 30, nil, 600)
	for _, s := range slots {
		start, err := ParseClock(s.Time)
		require.NoError(t, err)
		assert.Equal(t, start > 600, s.Available, "slot %s", s.Time)
	}

	// Other dates (nowMin < 0): the filter is a no-op.
	slots = AnnotateConflicts(candidates, 30, nil, -1)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestAvailableTimes_ReducesAnnotated(t *testing.T) {
	slots := []models.SlotStatus{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false},
		{Time: "10:00", Available: true},
	}
	assert.Equal(t, []string{"09:00", "10:00"}, AvailableTimes(slots))
}

func TestSlotPipeline_EndToEnd(t *testing.T) {
	// Staff works 09:00-17:00 with lunch 12:00-13:00, service duration 60,
	// hourly step, one CONFIRMED appointment 14:00-15:00.
	brk := iv(720, 780)
	intervals := SplitBreak(iv(540, 1020), &brk)
	candidates := GenerateSlots(intervals, 60, 60)
	slots := AnnotateConflicts(candidates, 60, []models.Interval{iv(840, 900)}, -1)

	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "13:00", "15:00", "16:00"},
		AvailableTimes(slots))
}

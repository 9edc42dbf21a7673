package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(t *testing.T, day time.Time, from, to string) TimeInterval {
	t.Helper()
	start, err := time.Parse("15:04", from)
	require.NoError(t, err)
	end, err := time.Parse("15:04", to)
	require.NoError(t, err)
	return TimeInterval{
		Start: day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute),
		End:   day.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute),
	}
}

func TestTimeInterval_Overlaps(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{name: "partial overlap", a: iv(t, day, "10:00", "11:00"), b: iv(t, day, "10:30", "11:30"), want: true},
		{name: "contained", a: iv(t, day, "10:00", "12:00"), b: iv(t, day, "10:30", "11:00"), want: true},
		{name: "identical", a: iv(t, day, "10:00", "11:00"), b: iv(t, day, "10:00", "11:00"), want: true},
		{name: "back to back is not overlap", a: iv(t, day, "10:00", "11:00"), b: iv(t, day, "11:00", "12:00"), want: false},
		{name: "disjoint", a: iv(t, day, "10:00", "11:00"), b: iv(t, day, "12:00", "13:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeInterval_Contains(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	window := iv(t, day, "09:00", "18:00")

	assert.True(t, window.Contains(iv(t, day, "09:00", "18:00")))
	assert.True(t, window.Contains(iv(t, day, "17:00", "18:00")))
	assert.True(t, window.Contains(iv(t, day, "09:00", "10:00")))
	assert.False(t, window.Contains(iv(t, day, "08:30", "09:30")))
	assert.False(t, window.Contains(iv(t, day, "17:30", "18:30")))
}

func TestMergeIntervals(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	t.Run("merges overlapping and adjacent", func(t *testing.T) {
		merged := MergeIntervals([]TimeInterval{
			iv(t, day, "13:00", "14:00"),
			iv(t, day, "10:00", "11:00"),
			iv(t, day, "11:00", "12:00"),
			iv(t, day, "10:30", "11:30"),
		})

		require.Len(t, merged, 2)
		assert.Equal(t, iv(t, day, "10:00", "12:00"), merged[0])
		assert.Equal(t, iv(t, day, "13:00", "14:00"), merged[1])
	})

	t.Run("drops invalid intervals", func(t *testing.T) {
		merged := MergeIntervals([]TimeInterval{
			iv(t, day, "12:00", "11:00"),
			iv(t, day, "09:00", "10:00"),
		})

		require.Len(t, merged, 1)
		assert.Equal(t, iv(t, day, "09:00", "10:00"), merged[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MergeIntervals(nil))
	})
}

func TestSubtractIntervals(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	open := []TimeInterval{iv(t, day, "09:00", "18:00")}

	t.Run("busy in the middle splits the window", func(t *testing.T) {
		free := SubtractIntervals(open, []TimeInterval{iv(t, day, "12:00", "13:00")})

		require.Len(t, free, 2)
		assert.Equal(t, iv(t, day, "09:00", "12:00"), free[0])
		assert.Equal(t, iv(t, day, "13:00", "18:00"), free[1])
	})

	t.Run("busy at window edges", func(t *testing.T) {
		free := SubtractIntervals(open, []TimeInterval{
			iv(t, day, "09:00", "10:00"),
			iv(t, day, "17:00", "18:00"),
		})

		require.Len(t, free, 1)
		assert.Equal(t, iv(t, day, "10:00", "17:00"), free[0])
	})

	t.Run("busy covering the whole window", func(t *testing.T) {
		free := SubtractIntervals(open, []TimeInterval{iv(t, day, "08:00", "19:00")})
		assert.Empty(t, free)
	})

	t.Run("no busy returns the window as is", func(t *testing.T) {
		free := SubtractIntervals(open, nil)

		require.Len(t, free, 1)
		assert.Equal(t, open[0], free[0])
	})

	t.Run("busy outside the window is ignored", func(t *testing.T) {
		free := SubtractIntervals(open, []TimeInterval{iv(t, day, "19:00", "20:00")})

		require.Len(t, free, 1)
		assert.Equal(t, open[0], free[0])
	})
}

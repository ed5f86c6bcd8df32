package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func TestStatusOf(t *testing.T) {
	out := t0.Add(8 * time.Hour)
	pause := t0.Add(2 * time.Hour)

	tests := []struct {
		name     string
		punch    Punch
		expected Status
	}{
		{
			name:     "open punch is active",
			punch:    Punch{PunchIn: t0},
			expected: StatusActive,
		},
		{
			name:     "open pause means paused",
			punch:    Punch{PunchIn: t0, PauseStartedAt: &pause},
			expected: StatusPaused,
		},
		{
			name:     "punch-out wins over everything",
			punch:    Punch{PunchIn: t0, PunchOut: &out, PauseStartedAt: &pause},
			expected: StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.punch))
		})
	}
}

func TestNetWorked(t *testing.T) {
	pause := t0.Add(10 * time.Minute)

	tests := []struct {
		name     string
		punch    Punch
		now      time.Time
		expected time.Duration
	}{
		{
			name:     "no pauses",
			punch:    Punch{PunchIn: t0},
			now:      t0.Add(90 * time.Minute),
			expected: 90 * time.Minute,
		},
		{
			name:     "completed pauses subtract",
			punch:    Punch{PunchIn: t0, PausedSeconds: 30 * 60},
			now:      t0.Add(70 * time.Minute),
			expected: 40 * time.Minute,
		},
		{
			name:     "open pause subtracts up to now",
			punch:    Punch{PunchIn: t0, PauseStartedAt: &pause},
			now:      t0.Add(40 * time.Minute),
			expected: 10 * time.Minute,
		},
		{
			name:     "floored at zero",
			punch:    Punch{PunchIn: t0, PausedSeconds: 2 * 60 * 60},
			now:      t0.Add(time.Hour),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NetWorked(tt.punch, tt.now))
		})
	}
}

func TestPauseResume(t *testing.T) {
	p := Punch{PunchIn: t0}

	require.NoError(t, Pause(&p, t0.Add(10*time.Minute)))
	assert.Equal(t, StatusPaused, StatusOf(p))

	// Double pause is rejected.
	assert.ErrorIs(t, Pause(&p, t0.Add(11*time.Minute)), ErrAlreadyPaused)

	require.NoError(t, Resume(&p, t0.Add(40*time.Minute)))
	assert.Equal(t, 30*60, p.PausedSeconds)
	assert.Nil(t, p.PauseStartedAt)

	// Resume without an open pause is rejected.
	assert.ErrorIs(t, Resume(&p, t0.Add(41*time.Minute)), ErrNotPaused)

	// 70 minutes elapsed minus the 30-minute pause.
	worked := NetWorked(p, t0.Add(70*time.Minute))
	assert.Equal(t, 40*time.Minute, worked)
}

func TestPauseResumeNoTimePassage(t *testing.T) {
	now := t0.Add(15 * time.Minute)

	p := Punch{PunchIn: t0}
	before := NetWorked(p, now)

	require.NoError(t, Pause(&p, now))
	require.NoError(t, Resume(&p, now))

	assert.Equal(t, 0, p.PausedSeconds)
	assert.Equal(t, before, NetWorked(p, now))
}

func TestPauseOnCompletedPunch(t *testing.T) {
	out := t0.Add(time.Hour)
	p := Punch{PunchIn: t0, PunchOut: &out}

	assert.ErrorIs(t, Pause(&p, out.Add(time.Minute)), ErrNotActive)
	assert.ErrorIs(t, Resume(&p, out.Add(time.Minute)), ErrNotActive)
}

func TestOverrideTimes(t *testing.T) {
	t.Run("completing folds and clears the open pause", func(t *testing.T) {
		pauseStart := t0.Add(30 * time.Minute)
		p := Punch{PunchIn: t0, PausedSeconds: 10 * 60, PauseStartedAt: &pauseStart}

		out := t0.Add(time.Hour)
		worked, err := OverrideTimes(&p, t0, &out)
		require.NoError(t, err)

		assert.Equal(t, StatusCompleted, StatusOf(p))
		assert.Nil(t, p.PauseStartedAt)
		assert.Equal(t, 40*60, p.PausedSeconds)
		assert.Equal(t, 20*time.Minute, worked)
	})

	t.Run("re-opening a completed punch", func(t *testing.T) {
		out := t0.Add(time.Hour)
		p := Punch{PunchIn: t0, PunchOut: &out}

		worked, err := OverrideTimes(&p, t0, nil)
		require.NoError(t, err)

		assert.Equal(t, StatusActive, StatusOf(p))
		assert.Nil(t, p.PunchOut)
		assert.Equal(t, time.Duration(0), worked)
	})

	t.Run("punch-out before punch-in is rejected", func(t *testing.T) {
		p := Punch{PunchIn: t0}

		out := t0.Add(-time.Minute)
		_, err := OverrideTimes(&p, t0, &out)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestClockOut(t *testing.T) {
	t.Run("simple shift", func(t *testing.T) {
		p := Punch{PunchIn: t0}
		worked, err := ClockOut(&p, t0.Add(91*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 91*time.Minute, worked)
		assert.Equal(t, StatusCompleted, StatusOf(p))
		assert.InDelta(t, 91.0/60.0, Hours(worked), 1e-9)
	})

	t.Run("clocking out twice", func(t *testing.T) {
		p := Punch{PunchIn: t0}
		_, err := ClockOut(&p, t0.Add(time.Hour))
		require.NoError(t, err)
		_, err = ClockOut(&p, t0.Add(2*time.Hour))
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
	})

	t.Run("open pause is folded in", func(t *testing.T) {
		p := Punch{PunchIn: t0}
		require.NoError(t, Pause(&p, t0.Add(10*time.Minute)))

		worked, err := ClockOut(&p, t0.Add(70*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 10*time.Minute, worked)
		assert.Equal(t, 60*60, p.PausedSeconds)
		assert.Nil(t, p.PauseStartedAt)
	})
}

func TestHours(t *testing.T) {
	assert.InDelta(t, 1.5, Hours(90*time.Minute), 1e-9)
	assert.InDelta(t, 0.0, Hours(0), 1e-9)
	// Millisecond precision; sub-millisecond rests are dropped.
	assert.InDelta(t, 0.001/3600, Hours(time.Millisecond+100*time.Microsecond), 1e-12)
}

func TestValidateDistribution(t *testing.T) {
	worked := 30 * time.Minute

	tests := []struct {
		name    string
		entries []DistributionEntry
		wantErr error
	}{
		{
			name:    "exactly the worked time is accepted",
			entries: []DistributionEntry{{VehicleID: 7, Minutes: 30}},
		},
		{
			name:    "one minute over is rejected",
			entries: []DistributionEntry{{VehicleID: 7, Minutes: 31}},
			wantErr: ErrDistributionExceedsWorked,
		},
		{
			name: "sum across vehicles is checked",
			entries: []DistributionEntry{
				{VehicleID: 7, Minutes: 20},
				{VehicleID: 9, Minutes: 15},
			},
			wantErr: ErrDistributionExceedsWorked,
		},
		{
			name:    "negative entries are rejected",
			entries: []DistributionEntry{{VehicleID: 7, Hours: 1, Minutes: -75}},
			wantErr: ErrNegativeHours,
		},
		{
			name:    "empty distribution is fine",
			entries: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDistribution(tt.entries, worked)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNonZeroEntries(t *testing.T) {
	entries := []DistributionEntry{
		{VehicleID: 1, Hours: 1},
		{VehicleID: 2},
		{VehicleID: 3, Minutes: 45},
	}

	out := NonZeroEntries(entries)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].VehicleID)
	assert.Equal(t, 3, out[1].VehicleID)
}

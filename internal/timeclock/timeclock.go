// Package timeclock implements the punch and work-session state machine:
// status derivation, pause bookkeeping and the net worked duration a
// clock-out hour distribution is checked against. It is pure so the
// repositories can run it inside their transactions and the invariants can
// be tested without a database. All arithmetic uses server timestamps only;
// client clock offsets are a display concern.
package timeclock

import (
	"time"

	"github.com/pkg/errors"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

var (
	ErrAlreadyActive             = errors.New("mechanic already has an active punch")
	ErrAlreadyCompleted          = errors.New("punch is already completed")
	ErrAlreadyPaused             = errors.New("punch is already paused")
	ErrNotPaused                 = errors.New("punch is not paused")
	ErrNotActive                 = errors.New("punch is not active")
	ErrOpenSessionExists         = errors.New("an open work session exists, end it before clocking out")
	ErrNoOpenPunch               = errors.New("mechanic has no open punch")
	ErrSessionAlreadyOpen        = errors.New("mechanic is already working on another vehicle")
	ErrSessionAlreadyClosed      = errors.New("work session is already closed")
	ErrDistributionExceedsWorked = errors.New("distributed hours exceed the worked duration")
	ErrInvalidRange              = errors.New("clock-out must be after clock-in")
	ErrNegativeHours             = errors.New("total hours must not be negative")
)

// Punch is the value view of a shift the state machine operates on.
type Punch struct {
	PunchIn        time.Time
	PunchOut       *time.Time
	PausedSeconds  int
	PauseStartedAt *time.Time
}

// StatusOf derives the shift status once, at the state-machine boundary.
// A punch is completed iff it has a punch-out, paused iff a pause is open.
func StatusOf(p Punch) Status {
	switch {
	case p.PunchOut != nil:
		return StatusCompleted
	case p.PauseStartedAt != nil:
		return StatusPaused
	default:
		return StatusActive
	}
}

// NetWorked is the worked duration of the shift as of now: elapsed time
// minus completed pauses minus the still-open pause, floored at zero.
func NetWorked(p Punch, now time.Time) time.Duration {
	end := now
	if p.PunchOut != nil {
		end = *p.PunchOut
	}

	worked := end.Sub(p.PunchIn)
	worked -= time.Duration(p.PausedSeconds) * time.Second
	if p.PunchOut == nil && p.PauseStartedAt != nil {
		worked -= now.Sub(*p.PauseStartedAt)
	}

	if worked < 0 {
		worked = 0
	}
	return worked
}

// Pause opens a pause on an active punch.
func Pause(p *Punch, now time.Time) error {
	if p.PunchOut != nil {
		return ErrNotActive
	}
	if p.PauseStartedAt != nil {
		return ErrAlreadyPaused
	}

	p.PauseStartedAt = &now
	return nil
}

// Resume closes the open pause, folding it into the accumulated pause
// seconds.
func Resume(p *Punch, now time.Time) error {
	if p.PunchOut != nil {
		return ErrNotActive
	}
	if p.PauseStartedAt == nil {
		return ErrNotPaused
	}

	paused := now.Sub(*p.PauseStartedAt)
	if paused > 0 {
		p.PausedSeconds += int(paused / time.Second)
	}
	p.PauseStartedAt = nil
	return nil
}

// ClockOut completes the punch, closing any still-open pause first, and
// returns the net worked duration of the finished shift.
func ClockOut(p *Punch, now time.Time) (time.Duration, error) {
	if p.PunchOut != nil {
		return 0, ErrAlreadyCompleted
	}

	if p.PauseStartedAt != nil {
		if err := Resume(p, now); err != nil {
			return 0, err
		}
	}

	p.PunchOut = &now
	return NetWorked(*p, now), nil
}

// OverrideTimes replaces the punch interval wholesale. Unlike ClockOut it
// accepts completed punches, an admin correction may re-set either end. A
// still-open pause is folded up to the new punch-out so a completed punch
// never keeps pause state. Returns the recomputed net worked duration, zero
// when the punch stays open.
func OverrideTimes(p *Punch, in time.Time, out *time.Time) (time.Duration, error) {
	if out != nil && !out.After(in) {
		return 0, ErrInvalidRange
	}

	p.PunchIn = in
	p.PunchOut = out

	if out != nil && p.PauseStartedAt != nil {
		paused := out.Sub(*p.PauseStartedAt)
		if paused > 0 {
			p.PausedSeconds += int(paused / time.Second)
		}
		p.PauseStartedAt = nil
	}

	if out == nil {
		return 0, nil
	}
	return NetWorked(*p, *out), nil
}

// Hours converts a duration to decimal hours at millisecond precision,
// which is what both punches and work sessions persist.
func Hours(d time.Duration) float64 {
	return float64(d.Milliseconds()) / float64(time.Hour.Milliseconds())
}

// DistributionEntry allocates part of a finished shift to one vehicle.
type DistributionEntry struct {
	VehicleID int `json:"vehicle_id" form:"vehicle_id"`
	Hours     int `json:"hours" form:"hours"`
	Minutes   int `json:"minutes" form:"minutes"`
}

// Duration is the allocated time of a single entry.
func (e DistributionEntry) Duration() time.Duration {
	return time.Duration(e.Hours)*time.Hour + time.Duration(e.Minutes)*time.Minute
}

// ValidateDistribution checks a clock-out hour distribution against the
// worked duration. Zero entries are ignored, negative entries rejected, and
// the sum must not exceed the worked time.
func ValidateDistribution(entries []DistributionEntry, worked time.Duration) error {
	var total time.Duration
	for _, entry := range entries {
		if entry.Hours < 0 || entry.Minutes < 0 {
			return ErrNegativeHours
		}
		total += entry.Duration()
	}

	if total > worked {
		return ErrDistributionExceedsWorked
	}
	return nil
}

// NonZeroEntries filters a distribution down to the entries that actually
// allocate time; one closed work session is created per remaining entry.
func NonZeroEntries(entries []DistributionEntry) []DistributionEntry {
	var out []DistributionEntry
	for _, entry := range entries {
		if entry.Duration() > 0 {
			out = append(out, entry)
		}
	}
	return out
}

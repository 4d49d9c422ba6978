package domain

import (
	"fmt"
	"time"
)

// tickThreshold is the smallest delta a tick commits to elapsed time.
const tickThreshold = time.Second

// Tracker measures active time for one task.
//
// A tracker is either idle or running. While running, elapsed time only
// grows when Tick or Stop commits the delta since the last commit, so a
// host must call Tick before it reads ElapsedHMS for display.
type Tracker struct {
	elapsed      time.Duration
	runningSince time.Time
}

// NewTracker returns an idle tracker holding the given elapsed time.
func NewTracker(elapsed time.Duration) Tracker {
	if elapsed < 0 {
		elapsed = 0
	}
	return Tracker{elapsed: elapsed}
}

// Start begins tracking now.
func (t *Tracker) Start() {
	t.StartAt(time.Now())
}

// StartAt begins tracking at the given instant. No-op while running.
func (t *Tracker) StartAt(now time.Time) {
	if t.IsTracking() {
		return
	}
	t.runningSince = now
}

// Stop commits pending time and stops tracking.
func (t *Tracker) Stop() {
	t.StopAt(time.Now())
}

// StopAt ticks once at now and returns to idle. No-op while idle.
// A remainder shorter than a second is dropped.
func (t *Tracker) StopAt(now time.Time) {
	if !t.IsTracking() {
		return
	}
	t.TickAt(now)
	t.runningSince = time.Time{}
}

// Tick commits the time elapsed since the last commit.
func (t *Tracker) Tick() {
	t.TickAt(time.Now())
}

// TickAt commits now - runningSince to elapsed when at least one second
// has passed. Shorter deltas are left for the next call.
func (t *Tracker) TickAt(now time.Time) {
	if !t.IsTracking() {
		return
	}
	delta := now.Sub(t.runningSince)
	if delta < tickThreshold {
		return
	}
	t.elapsed += delta
	t.runningSince = now
}

// IsTracking returns true while the tracker is running.
func (t *Tracker) IsTracking() bool {
	return !t.runningSince.IsZero()
}

// Elapsed returns the committed elapsed time.
func (t *Tracker) Elapsed() time.Duration {
	return t.elapsed
}

// RunningSince returns the instant of the last commit and whether the
// tracker is running.
func (t *Tracker) RunningSince() (time.Time, bool) {
	return t.runningSince, t.IsTracking()
}

// Pending returns the time not yet committed at now.
func (t *Tracker) Pending(now time.Time) time.Duration {
	if !t.IsTracking() || now.Before(t.runningSince) {
		return 0
	}
	return now.Sub(t.runningSince)
}

// ElapsedHMS formats the committed elapsed time as HH:MM:SS.
// Hours are not wrapped at 24.
func (t *Tracker) ElapsedHMS() string {
	return FormatHMS(t.elapsed)
}

// FormatHMS formats d as zero-padded HH:MM:SS, truncating to whole seconds.
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	hours := secs / 3600
	mins := (secs % 3600) / 60
	secs %= 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}

package domain

import (
	"fmt"
	"time"
)

// TimeCommitment is a per-weekday time budget.
// Weekdays are numbered from Sunday: 1 = Sunday .. 7 = Saturday.
type TimeCommitment struct {
	days [7]time.Duration
}

// NewTimeCommitment creates a commitment from durations ordered Sunday first.
func NewTimeCommitment(days [7]time.Duration) TimeCommitment {
	return TimeCommitment{days: days}
}

func validWeekday(weekday int) error {
	if weekday < 1 || weekday > 7 {
		return fmt.Errorf("%w: %d (want 1 = Sunday .. 7 = Saturday)", ErrInvalidWeekday, weekday)
	}
	return nil
}

// ForDay returns the commitment for a weekday numbered from Sunday.
func (c TimeCommitment) ForDay(weekday int) (time.Duration, error) {
	if err := validWeekday(weekday); err != nil {
		return 0, err
	}
	return c.days[weekday-1], nil
}

// ForWeekday returns the commitment for a time.Weekday.
func (c TimeCommitment) ForWeekday(day time.Weekday) time.Duration {
	return c.days[int(day)%7]
}

// ForDate returns the commitment for the weekday of t in t's location.
func (c TimeCommitment) ForDate(t time.Time) time.Duration {
	return c.ForWeekday(t.Weekday())
}

// ForToday returns the commitment for the local current day.
func (c TimeCommitment) ForToday() time.Duration {
	return c.ForDate(time.Now())
}

// Set replaces the commitment for a weekday numbered from Sunday.
func (c *TimeCommitment) Set(weekday int, d time.Duration) error {
	if err := validWeekday(weekday); err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, d)
	}
	c.days[weekday-1] = d
	return nil
}

// Days returns the durations ordered Sunday first.
func (c TimeCommitment) Days() [7]time.Duration {
	return c.days
}

// IsZero reports whether no day has a commitment.
func (c TimeCommitment) IsZero() bool {
	return c.days == [7]time.Duration{}
}

// WeekdayNumber converts a time.Weekday to the 1 = Sunday numbering.
func WeekdayNumber(day time.Weekday) int {
	return int(day) + 1
}

package game

import "fmt"

// DayStartHour is the hour every simulated day begins at.
const DayStartHour = 15

// Lectures start at 18:40. Arriving any later than that is late.
const (
	lectureHour   = 18
	lectureMinute = 40
)

// Clock tracks elapsed time within the current simulated day.
// It is not calendar time; a new day resets it to 15:00.
type Clock struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// NewClock returns a clock set to the start of a day (15:00).
func NewClock() Clock {
	return Clock{Hours: DayStartHour}
}

// Add applies a minute delta (negative for time refunds) and normalizes so
// that Minutes ends up in [0,59], carrying overflow into Hours.
func (c Clock) Add(minutes int) Clock {
	total := c.Hours*60 + c.Minutes + minutes
	h, m := total/60, total%60
	if m < 0 {
		m += 60
		h--
	}
	return Clock{Hours: h, Minutes: m}
}

// Late reports whether the lecture has already started.
func (c Clock) Late() bool {
	return c.Hours > lectureHour || (c.Hours == lectureHour && c.Minutes > lectureMinute)
}

// String renders the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hours, c.Minutes)
}

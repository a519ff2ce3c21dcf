package clock

import "time"

// Clock reads the wall clock.
type Clock struct {
	UTC bool
}

// Now returns the current time.
func (c Clock) Now() time.Time {
	if c.UTC {
		return time.Now().UTC()
	}
	return time.Now()
}

// NowUnix returns current unix seconds.
func (c Clock) NowUnix() int64 {
	return c.Now().Unix()
}

package session

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, whose monotonic reading makes Sub immune to
// wall-clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

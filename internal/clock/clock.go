package clock

import "time"

// Clock supplies the current time so due dates and fine arithmetic stay
// testable without sleeping.
type Clock func() time.Time

func System() time.Time {
	return time.Now()
}

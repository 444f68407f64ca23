package animator

import "time"

// Clock provides time-related operations.
// Now must carry a monotonic reading; the scramble budget is measured with it.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

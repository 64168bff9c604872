package clock

import "time"

// SystemClock returns the current wall-clock time in UTC.
// All persisted timestamps and date comparisons run in UTC.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }

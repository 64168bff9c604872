package clock

import "time"

// Clock provides time to the application.
// Using an interface enables deterministic tests via a controllable
// implementation; expiry rules ("end date in the future", "end date before
// today") all read time through it.
type Clock interface {
	Now() time.Time
}

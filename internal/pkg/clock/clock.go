package clock

import "time"

// Func is an injectable time source. Services take a Func instead of calling
// time.Now directly so session expiry can be tested deterministically.
type Func func() time.Time

// System returns the real wall clock.
func System() Func {
	return time.Now
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Func {
	return func() time.Time { return t }
}

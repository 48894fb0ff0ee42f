// Package clock provides the injectable time source used by the tracker so
// analytics stay deterministic under test.
package clock

import "time"

// Clock reports the current instant in UTC.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns a Clock backed by the wall clock.
func System() Clock { return systemClock{} }

// Fixed returns a Clock that always reports t. Used for deterministic tests.
func Fixed(t time.Time) Clock { return fixedClock{t.UTC()} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

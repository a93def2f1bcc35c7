package deduction

import "time"

// Timer is a cancellable pending settle.
type Timer interface {
	Stop() bool
}

// Clock schedules settle callbacks. The ledger takes it as a dependency so
// tests can fire settles without waiting on real timers.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewRealClock returns a Clock backed by time.AfterFunc.
func NewRealClock() Clock {
	return realClock{}
}

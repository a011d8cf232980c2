package services

import "time"

// Clock abstracts wall-clock time so date validation and the release job can
// be controlled in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

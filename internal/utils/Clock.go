package utils

import "time"

// Clock abstracts time.Now so services that stamp or anchor records by the
// current time can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, backed by the system time.
type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed, settable time for tests.
type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

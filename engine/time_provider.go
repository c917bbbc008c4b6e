package engine

import "time"

// TimeProvider supplies wall-clock readings to frame drivers
// Simulation code never reads it directly; drivers convert readings into
// monotonic durations before calling Advance
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads time.Now, which carries a monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time to be %v, got %v", start, now)
	}

	later := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(later)
	if now := mock.Now(); !now.Equal(later) {
		t.Errorf("Expected time to be %v after SetTime, got %v", later, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := later.Add(45 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestPausableClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	mock.Advance(time.Second)
	if got := pc.Elapsed(); got != time.Second {
		t.Errorf("Expected 1s elapsed, got %v", got)
	}

	if !pc.Toggle() {
		t.Fatal("Expected Toggle to pause")
	}
	mock.Advance(5 * time.Second)
	if got := pc.Elapsed(); got != time.Second {
		t.Errorf("Expected elapsed frozen at 1s while paused, got %v", got)
	}
	if got := pc.TotalPaused(); got != 5*time.Second {
		t.Errorf("Expected 5s paused so far, got %v", got)
	}

	// Double pause is a no-op
	pc.Pause()

	if pc.Toggle() {
		t.Fatal("Expected Toggle to resume")
	}
	mock.Advance(500 * time.Millisecond)
	if got := pc.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed after resume, got %v", got)
	}
	if pc.IsPaused() {
		t.Error("Expected clock to be running")
	}
}

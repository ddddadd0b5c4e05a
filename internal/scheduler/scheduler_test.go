package scheduler

import "testing"

func TestNewRejectsBadCadence(t *testing.T) {
	for _, bad := range []int{0, -5, 60, 120} {
		if _, err := New(bad, nil, func() {}); err == nil {
			t.Errorf("New(%d) accepted, want error", bad)
		}
	}
}

func TestNewAcceptsValidCadence(t *testing.T) {
	for _, ok := range []int{1, 20, 59} {
		if _, err := New(ok, nil, func() {}); err != nil {
			t.Errorf("New(%d) failed: %v", ok, err)
		}
	}
}

func TestBeatSkipsWhilePaused(t *testing.T) {
	fired := 0
	pausedNow := true
	s, err := New(20, func() bool { return pausedNow }, func() { fired++ })
	if err != nil {
		t.Fatal(err)
	}

	s.beat()
	if fired != 0 {
		t.Fatal("beat fired while paused")
	}

	pausedNow = false
	s.beat()
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestHaltIsPermanent(t *testing.T) {
	fired := 0
	s, err := New(20, nil, func() { fired++ })
	if err != nil {
		t.Fatal(err)
	}

	s.beat()
	s.Halt()
	s.beat()
	if fired != 1 {
		t.Fatalf("fired = %d after halt, want 1", fired)
	}
}

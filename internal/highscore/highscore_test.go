package highscore

import "testing"

// Tests run against the in-memory degraded mode; the gdata-backed path
// shares all logic except the final write.

func TestStoreStartsAtZero(t *testing.T) {
	s := NewStore(nil)
	if s.Best() != 0 {
		t.Fatalf("fresh store best = %d, want 0", s.Best())
	}
}

func TestSubmitRecordsImprovement(t *testing.T) {
	s := NewStore(nil)

	improved, err := s.Submit(100)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !improved {
		t.Fatal("first score should improve on zero")
	}
	if s.Best() != 100 {
		t.Fatalf("best = %d, want 100", s.Best())
	}
}

func TestSubmitIgnoresWorseScores(t *testing.T) {
	s := NewStore(nil)
	if _, err := s.Submit(300); err != nil {
		t.Fatalf("submit: %v", err)
	}

	improved, err := s.Submit(200)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if improved {
		t.Fatal("a worse score must not count as an improvement")
	}
	if s.Best() != 300 {
		t.Fatalf("best = %d, want 300", s.Best())
	}

	// Equal scores do not re-persist either.
	improved, _ = s.Submit(300)
	if improved {
		t.Fatal("an equal score must not count as an improvement")
	}
}

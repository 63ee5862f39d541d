package physics

import "testing"

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 0, 3, 4, 0); d != 5 {
		t.Fatalf("Distance(0,0,0 -> 3,4,0) = %f, want 5", d)
	}
	if d := Distance(1, 2, 3, 1, 2, 3); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
	if d := Distance(0, 0, 0, 2, 3, 6); d != 7 {
		t.Fatalf("Distance(0,0,0 -> 2,3,6) = %f, want 7", d)
	}
}

func TestWithinRange(t *testing.T) {
	if !WithinRange(0, 0, 0, 1, 1, 1, 2) {
		t.Fatal("points sqrt(3) apart should be within range 2")
	}
	if WithinRange(0, 0, 0, 0, 0, 2, 2) {
		t.Fatal("range check must be strict: distance 2 is not within range 2")
	}
	if WithinRange(0, 0, 0, 10, 0, 0, 2) {
		t.Fatal("points 10 apart should not be within range 2")
	}
}

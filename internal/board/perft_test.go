package board

import "testing"

// TestPerftStartingPosition checks the generator's leaf counts at shallow
// depth from the starting position against well-known perft values.
func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			pos := NewPosition()
			got := Perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftDoesNotMutateRoot verifies Perft explores child positions over
// value copies, leaving the root position untouched.
func TestPerftDoesNotMutateRoot(t *testing.T) {
	pos := NewPosition()
	before := *pos
	Perft(pos, 3)
	if *pos != before {
		t.Fatal("Perft mutated the root position")
	}
}

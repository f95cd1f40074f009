package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		dx, dy int
	}{
		{"North", North, 0, -1},
		{"Northeast", Northeast, 1, -1},
		{"East", East, 1, 0},
		{"Southeast", Southeast, 1, 1},
		{"South", South, 0, 1},
		{"Southwest", Southwest, -1, 1},
		{"West", West, -1, 0},
		{"Northwest", Northwest, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Expected delta (%d,%d), got (%d,%d)", tt.dx, tt.dy, dx, dy)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{North, "N"},
		{Northeast, "NE"},
		{East, "E"},
		{Southeast, "SE"},
		{South, "S"},
		{Southwest, "SW"},
		{West, "W"},
		{Northwest, "NW"},
		{DirectionCount, "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionCount(t *testing.T) {
	if DirectionCount != 8 {
		t.Errorf("Expected 8 directions, got %d", DirectionCount)
	}
}

package sim

import (
	"errors"
	"testing"

	"github.com/lixenwraith/randomwalk/core"
)

func TestNewPopulationPreconditions(t *testing.T) {
	tests := []struct {
		name                 string
		count, width, height uint8
		wantErr              error
	}{
		{"Zero count", 0, 10, 10, ErrInvalidCount},
		{"Zero width", 5, 0, 10, ErrInvalidDimension},
		{"Zero height", 5, 10, 0, ErrInvalidDimension},
		{"Valid", 5, 10, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pop, err := NewPopulation(tt.count, tt.width, tt.height, NewSource(1))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				if pop != nil {
					t.Error("Failed construction must not return a population")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if pop.Len() != int(tt.count) {
				t.Errorf("Expected %d particles, got %d", tt.count, pop.Len())
			}
		})
	}
}

// taggedPopulation builds a population whose particles are identifiable by
// their red channel (0..n-1).
func taggedPopulation(t *testing.T, n int) *Population {
	t.Helper()
	pop, err := NewPopulation(uint8(n), 10, 10, NewSource(1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := range pop.particles {
		pop.particles[i].Color = core.RGB{R: uint8(i)}
	}
	return pop
}

func TestPruneKeepsSurvivorOrder(t *testing.T) {
	tests := []struct {
		name   string
		dead   []int
		want   []uint8 // surviving tags in order
		status Status
	}{
		{"No deaths", nil, []uint8{0, 1, 2, 3, 4}, Remaining},
		{"Head death", []int{0}, []uint8{1, 2, 3, 4}, Remaining},
		{"Interior deaths", []int{1, 3}, []uint8{0, 2, 4}, Remaining},
		{"Tail death", []int{4}, []uint8{0, 1, 2, 3}, Remaining},
		{"All dead", []int{0, 1, 2, 3, 4}, nil, Exhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pop := taggedPopulation(t, 5)
			for _, i := range tt.dead {
				pop.particles[i].alive = false
			}
			status := pop.Prune()
			if status != tt.status {
				t.Errorf("Expected status %v, got %v", tt.status, status)
			}
			if pop.Len() != len(tt.want) {
				t.Fatalf("Expected %d survivors, got %d", len(tt.want), pop.Len())
			}
			var got []uint8
			pop.ForEachLive(func(_ core.Coordinate, c core.RGB) {
				got = append(got, c.R)
			})
			for i, tag := range tt.want {
				if got[i] != tag {
					t.Errorf("Survivor %d: expected tag %d, got %d", i, tag, got[i])
				}
			}
		})
	}
}

func TestPruneIsIdempotentOnSurvivors(t *testing.T) {
	pop := taggedPopulation(t, 3)
	pop.particles[1].alive = false
	if status := pop.Prune(); status != Remaining {
		t.Fatalf("Expected Remaining, got %v", status)
	}
	if status := pop.Prune(); status != Remaining || pop.Len() != 2 {
		t.Errorf("Second prune changed the population: status %v, len %d", status, pop.Len())
	}
}

func TestAdvanceAllKeepsLiveParticlesInBounds(t *testing.T) {
	const width, height = 6, 4
	src := NewSource(99)
	pop, err := NewPopulation(20, width, height, src)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for frame := 0; frame < 500; frame++ {
		pop.SteerAll(0, src)
		pop.AdvanceAll()
		if pop.Prune() == Exhausted {
			return
		}
		pop.ForEachLive(func(c core.Coordinate, _ core.RGB) {
			if c.X >= width || c.Y >= height {
				t.Fatalf("Frame %d: live particle at (%d,%d) outside %dx%d", frame, c.X, c.Y, width, height)
			}
		})
	}
	t.Fatal("Walk did not exhaust within 500 frames on a 6x4 plane")
}

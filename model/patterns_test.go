package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestPatternUnknown(t *testing.T) {
	if _, err := Pattern("spaceship-9000", 0, 0); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Pattern error = %v, want ErrUnknownPattern", err)
	}
}

func TestPatternTranslation(t *testing.T) {
	g, err := Pattern("block", 3, -2)
	if err != nil {
		t.Fatal(err)
	}
	want := MustFromCells(Cell{3, -2}, Cell{4, -2}, Cell{3, -1}, Cell{4, -1})
	if !g.Equal(want) {
		t.Fatalf("translated block = %v", g)
	}
}

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	if len(names) != len(patterns) {
		t.Fatalf("got %d names for %d patterns", len(names), len(patterns))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestRandomize(t *testing.T) {
	if g := Randomize(10, 0, 1); !g.IsEmpty() {
		t.Fatalf("density 0 gave %d cells", g.Len())
	}
	if g := Randomize(10, 1, 1); g.Len() != 100 {
		t.Fatalf("density 1 gave %d cells, want 100", g.Len())
	}

	a, b := Randomize(12, 0.3, 99), Randomize(12, 0.3, 99)
	if !a.Equal(b) {
		t.Fatal("same seed should give the same generation")
	}
	lo, hi, ok := a.Bounds()
	if ok && (lo.X < -6 || lo.Y < -6 || hi.X > 5 || hi.Y > 5) {
		t.Fatalf("random cells outside the window: %v..%v", lo, hi)
	}
}

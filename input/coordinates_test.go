package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		line    string
		want    model.Cell
		wantErr bool
	}{
		{"1 2", model.Cell{X: 1, Y: 2}, false},
		{"  -3\t4 ", model.Cell{X: -3, Y: 4}, false},
		{"1", model.Cell{}, true},
		{"1 2 3", model.Cell{}, true},
		{"a 2", model.Cell{}, true},
		{"1 b", model.Cell{}, true},
		{"", model.Cell{}, true},
	}
	for _, tt := range tests {
		got, err := ParseCoordinate(tt.line)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("ParseCoordinate(%q) error = %v, want ErrMalformed", tt.line, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCoordinate(%q) = %v, %v; want %v", tt.line, got, err, tt.want)
		}
	}
}

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator(10)
	if err := acc.Add(model.Cell{X: 10, Y: -10}); err != nil {
		t.Fatalf("cell on the bound rejected: %v", err)
	}
	if err := acc.Add(model.Cell{X: 11, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("x=11 error = %v, want ErrOutOfBounds", err)
	}
	if err := acc.Add(model.Cell{X: 0, Y: -11}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("y=-11 error = %v, want ErrOutOfBounds", err)
	}
	if err := acc.Add(model.Cell{X: 10, Y: -10}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate error = %v, want ErrDuplicate", err)
	}
	if acc.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", acc.Len())
	}
}

func TestReadCoordinates(t *testing.T) {
	src := "# blinker\n-1 0\n\n0 0\n  1 0  \n"
	g, err := ReadCoordinates(strings.NewReader(src), 5)
	if err != nil {
		t.Fatalf("ReadCoordinates: %v", err)
	}
	want := model.MustFromCells(model.Cell{X: -1, Y: 0}, model.Cell{X: 0, Y: 0}, model.Cell{X: 1, Y: 0})
	if !g.Equal(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
}

func TestReadCoordinatesErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		line string
	}{
		{"malformed", "0 0\nzero one\n", ErrMalformed, "line 2"},
		{"out of bounds", "0 0\n# c\n6 0\n", ErrOutOfBounds, "line 3"},
		{"duplicate", "1 1\n1 1\n", ErrDuplicate, "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCoordinates(strings.NewReader(tt.src), 5)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Fatalf("error %q does not name %s", err, tt.line)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.txt")
	if err := os.WriteFile(path, []byte("0 0\n1 0\n0 1\n1 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadFile(path, 10)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if g.Len() != 4 {
		t.Fatalf("loaded %d cells, want 4", g.Len())
	}

	if _, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"), 10); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
}

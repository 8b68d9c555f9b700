// Package input collects the starting generation from a user or a file.
package input

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

var (
	ErrMalformed   = errors.New("coordinates must be two integers")
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	ErrDuplicate   = errors.New("coordinate already used")
)

const commentPrefix = "#"

// ParseCoordinate parses an "x y" pair
func ParseCoordinate(line string) (model.Cell, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return model.Cell{}, errors.Wrapf(ErrMalformed, "[ParseCoordinate] %q", line)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Cell{}, errors.Wrapf(ErrMalformed, "[ParseCoordinate] %q", line)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Cell{}, errors.Wrapf(ErrMalformed, "[ParseCoordinate] %q", line)
	}
	return model.Cell{X: x, Y: y}, nil
}

// CheckBounds rejects cells with a component larger than bound in magnitude
func CheckBounds(c model.Cell, bound int) error {
	if abs(c.X) > bound || abs(c.Y) > bound {
		return errors.Wrapf(ErrOutOfBounds, "[CheckBounds] %s exceeds %d", c, bound)
	}
	return nil
}

// Accumulator gathers unique, in-bounds cells
type Accumulator struct {
	bound int
	seen  map[model.Cell]struct{}
	cells []model.Cell
}

func NewAccumulator(bound int) *Accumulator {
	return &Accumulator{bound: bound, seen: make(map[model.Cell]struct{})}
}

// Add validates c and records it
func (a *Accumulator) Add(c model.Cell) error {
	if err := CheckBounds(c, a.bound); err != nil {
		return err
	}
	if _, ok := a.seen[c]; ok {
		return errors.Wrapf(ErrDuplicate, "[Add] %s", c)
	}
	a.seen[c] = struct{}{}
	a.cells = append(a.cells, c)
	return nil
}

// Len returns the number of accepted cells
func (a *Accumulator) Len() int { return len(a.cells) }

// Generation builds the generation of accepted cells
func (a *Accumulator) Generation() (*model.Generation, error) {
	return model.FromCells(a.cells)
}

// ReadCoordinates reads one "x y" pair per line. Blank lines and lines
// starting with # are skipped. Errors carry the 1-based line number.
func ReadCoordinates(r io.Reader, bound int) (*model.Generation, error) {
	var (
		acc     = NewAccumulator(bound)
		scanner = bufio.NewScanner(r)
		lineNo  = 0
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		c, err := ParseCoordinate(line)
		if err == nil {
			err = acc.Add(c)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "[ReadCoordinates] line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ReadCoordinates] failed to read input")
	}
	return acc.Generation()
}

// LoadFile reads starting coordinates from the named file
func LoadFile(filename string, bound int) (*model.Generation, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	g, err := ReadCoordinates(f, bound)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] %s", filename)
	}
	return g, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

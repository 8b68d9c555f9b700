package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

const fileChoice = "f"

// Prompter asks for input on out and reads answers line by line from in.
// Invalid answers are reported and asked again.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	bound int

	// InputFile, when set, is used instead of asking for a path after 'f'
	InputFile string
}

func NewPrompter(in io.Reader, out io.Writer, bound int) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, bound: bound}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "[readLine] failed to read input")
		}
		return "", errors.Wrap(io.ErrUnexpectedEOF, "[readLine] input closed")
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Collect asks for the starting generation, either typed in coordinate by
// coordinate or loaded from a file
func (p *Prompter) Collect() (*model.Generation, error) {
	for {
		fmt.Fprintln(p.out, "Input the number of starting coordinates or 'f' to use input file:")
		answer, err := p.readLine()
		if err != nil {
			return nil, err
		}

		switch {
		case isCount(answer):
			count, err := strconv.Atoi(answer)
			if err != nil {
				fmt.Fprintf(p.out, "\nERROR: %v\n\n", err)
				continue
			}
			return p.collectCells(count)
		case answer == fileChoice:
			g, err := p.collectFile()
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, err
			}
			if err != nil {
				fmt.Fprintf(p.out, "\nERROR: %v\n\n", err)
				continue
			}
			return g, nil
		default:
			fmt.Fprintln(p.out, "\nERROR: Please give a valid input.")
			fmt.Fprintln(p.out)
		}
	}
}

func (p *Prompter) collectCells(count int) (*model.Generation, error) {
	acc := NewAccumulator(p.bound)
	for acc.Len() < count {
		fmt.Fprintf(p.out, "Input integer coordinates for grid point number %d (in the format x y):\n", acc.Len()+1)
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		c, err := ParseCoordinate(line)
		if err == nil {
			err = acc.Add(c)
		}
		switch {
		case errors.Is(err, ErrDuplicate):
			fmt.Fprintln(p.out, "ERROR: Coordinate already used, please input new unique value.")
		case err != nil:
			fmt.Fprintf(p.out, "ERROR: Enter valid input. Coordinates must be integers between %d and %d.\n", -p.bound, p.bound)
		}
	}
	return acc.Generation()
}

func (p *Prompter) collectFile() (*model.Generation, error) {
	filename := p.InputFile
	if filename == "" {
		fmt.Fprintln(p.out, "Input the path of the coordinate file:")
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		filename = line
	}
	return LoadFile(filename, p.bound)
}

// ConfirmStart asks whether to start the game until the answer is 'y'
func (p *Prompter) ConfirmStart() error {
	for {
		fmt.Fprintln(p.out, "\nAll data has been input, with the above initial grid. Would you like to start the game? (y/n)")
		answer, err := p.readLine()
		if err != nil {
			return err
		}
		switch answer {
		case "y":
			return nil
		case "n":
			fmt.Fprintln(p.out, "\nThe game will wait to start.")
		default:
			fmt.Fprintln(p.out, "ERROR: Please give valid input (y/n).")
		}
	}
}

// Pause waits for the user to press Enter
func (p *Prompter) Pause() error {
	fmt.Fprintln(p.out, "Press Enter to continue...")
	_, err := p.readLine()
	return err
}

func isCount(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

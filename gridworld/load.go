package gridworld

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML schema of a grid problem. Start and Goal are [x, y].
type File struct {
	Grid         [][]int `yaml:"grid"`
	Start        [2]int  `yaml:"start"`
	Goal         [2]int  `yaml:"goal"`
	Connectivity int     `yaml:"connectivity,omitempty"`
	Heuristic    string  `yaml:"heuristic,omitempty"`
}

// Load decodes a YAML grid problem from r. Unknown keys are rejected.
func Load(r io.Reader) (*Problem, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFile)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	return f.Build()
}

// LoadFile reads and decodes the YAML grid problem at path.
func LoadFile(path string) (*Problem, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridworld: open %s: %w", path, err)
	}
	defer fh.Close()

	p, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Build constructs the Grid described by f and binds its Problem.
func (f File) Build() (*Problem, error) {
	var opts []Option
	switch f.Connectivity {
	case 0, 4:
	case 8:
		opts = append(opts, WithConnectivity(Conn8))
	default:
		return nil, fmt.Errorf("%w: connectivity %d (want 4 or 8)", ErrInvalidFile, f.Connectivity)
	}
	h, err := ParseHeuristic(f.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	opts = append(opts, WithHeuristic(h))

	g, err := New(f.Grid, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	p, err := g.Problem(Cell{X: f.Start[0], Y: f.Start[1]}, Cell{X: f.Goal[0], Y: f.Goal[1]})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return p, nil
}

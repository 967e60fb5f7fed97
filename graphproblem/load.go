package graphproblem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML schema of a graph problem.
type File struct {
	Start     string             `yaml:"start"`
	Goals     []string           `yaml:"goals"`
	Directed  *bool              `yaml:"directed,omitempty"`
	Vertices  []string           `yaml:"vertices,omitempty"`
	Edges     []EdgeSpec         `yaml:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic,omitempty"`
}

// EdgeSpec is one edge entry of a File.
type EdgeSpec struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// Load decodes a YAML problem from r. Unknown keys are rejected.
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

// LoadFile reads and decodes the YAML problem at path.
func LoadFile(path string) (*Problem, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphproblem: open %s: %w", path, err)
	}
	defer fh.Close()

	p, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Build constructs the Graph described by f and binds its Problem.
func (f File) Build() (*Problem, error) {
	if f.Start == "" {
		return nil, fmt.Errorf("%w: start is required", ErrInvalidFile)
	}

	var opts []GraphOption
	if f.Directed != nil && !*f.Directed {
		opts = append(opts, WithUndirected())
	}
	g := New(opts...)

	for _, id := range f.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: vertex: %w", ErrInvalidFile, err)
		}
	}
	for i, e := range f.Edges {
		if err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidFile, i, err)
		}
	}
	for id, h := range f.Heuristic {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: heuristic: %w: %q", ErrInvalidFile, ErrVertexNotFound, id)
		}
		if err := g.SetHeuristic(id, h); err != nil {
			return nil, fmt.Errorf("%w: heuristic: %w", ErrInvalidFile, err)
		}
	}

	p, err := g.Problem(f.Start, f.Goals...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return p, nil
}

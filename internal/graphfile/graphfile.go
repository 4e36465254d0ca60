// SPDX-License-Identifier: MIT
// Package graphfile reads and writes the YAML graph document used by wgraph:
//
//	vertices: [a, b, c]
//	edges:
//	  - {src: a, des: b, weight: 3}
//
// Documents are decoded strictly (unknown keys fail), validated with struct
// tags, then replayed into a core.Graph through AddVertex/AddEdge so every
// graph invariant is enforced by core itself.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/luluwu516/DataStructures/core"
)

// ErrInvalidDocument wraps every decode or validation failure.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

// Document is the on-disk graph form.
type Document struct {
	Vertices []string `yaml:"vertices" validate:"required,min=1,unique,dive,required,label"`
	Edges    []Edge   `yaml:"edges,omitempty" validate:"dive"`
}

// Edge is one undirected weighted edge of a Document.
type Edge struct {
	Src    string `yaml:"src" validate:"required,label"`
	Des    string `yaml:"des" validate:"required,label,nefield=Src"`
	Weight int64  `yaml:"weight" validate:"gt=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("label", validateLabel)
}

// validateLabel rejects labels containing whitespace; the shell tokenizes
// commands on whitespace.
func validateLabel(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

// Validate checks struct tags and reports each failing field.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// Decode parses and validates a document.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load reads, validates and builds the graph stored at path.
func Load(path string, capacity int, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return Build(d, capacity, opts...)
}

// Build replays d into a new graph. capacity is raised to len(d.Vertices)
// when smaller. Endpoint and duplicate-edge checks come from core.
func Build(d *Document, capacity int, opts ...core.GraphOption) (*core.Graph, error) {
	if capacity < len(d.Vertices) {
		capacity = len(d.Vertices)
	}
	g := core.NewGraph(capacity, opts...)
	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphfile: vertex %q: %w", v, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.Src, e.Des, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d] %s-%s: %w", i, e.Src, e.Des, err)
		}
	}

	return g, nil
}

// FromGraph captures g's labels and edge list in order.
func FromGraph(g *core.Graph) *Document {
	d := &Document{Vertices: g.Labels()}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, Edge{Src: e.Src, Des: e.Des, Weight: e.Weight})
	}

	return d
}

// Encode writes d as YAML with two-space indentation.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// Save writes g to path, replacing any existing file. A graph that Load
// would reject (no vertices) is refused before anything is written.
func Save(path string, g *core.Graph) error {
	d := FromGraph(g)
	if err := d.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}

	return nil
}

package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cmmoran/dx12gen/pkg/model"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ExportValue is a ValueInfo together with the encoder it is written with.
type ExportValue struct {
	model.ValueInfo `yaml:",inline"`
	Encoder         string `yaml:"encoder" json:"encoder"`
}

type ExportSignature struct {
	ReturnType string        `yaml:"return_type" json:"return_type"`
	Values     []ExportValue `yaml:"values" json:"values"`
}

// Document is the template-facing form of a generation run.
type Document struct {
	Structs  map[string][]ExportValue   `yaml:"structs" json:"structs"`
	Commands map[string]ExportSignature `yaml:"commands" json:"commands"`
	Methods  map[string]ExportSignature `yaml:"methods" json:"methods"`
	Handles  []string                   `yaml:"handles" json:"handles"`
}

// Document builds the export document from the collected descriptors.
func (g *Generator) Document() *Document {
	doc := &Document{
		Structs:  make(map[string][]ExportValue, len(g.StructMembers)),
		Commands: make(map[string]ExportSignature, len(g.CmdParams)),
		Methods:  make(map[string]ExportSignature, len(g.MethodParams)),
		Handles:  slices.Clone(g.HandleNames),
	}
	for name, values := range g.StructMembers {
		doc.Structs[name] = g.exportValues(values)
	}
	for name, sig := range g.CmdParams {
		doc.Commands[name] = ExportSignature{ReturnType: sig.ReturnType, Values: g.exportValues(sig.Values)}
	}
	for name, sig := range g.MethodParams {
		doc.Methods[name] = ExportSignature{ReturnType: sig.ReturnType, Values: g.exportValues(sig.Values)}
	}
	return doc
}

func (g *Generator) exportValues(values []model.ValueInfo) []ExportValue {
	out := make([]ExportValue, 0, len(values))
	for _, v := range values {
		out = append(out, ExportValue{ValueInfo: v, Encoder: g.norm.InvocationTypeName(v.BaseType)})
	}
	return out
}

// Write renders the collected descriptors in the configured format.
func (g *Generator) Write(w io.Writer) error {
	switch g.Opts.Format {
	case FormatGo:
		if err := g.GenerateFile().Render(w); err != nil {
			return fmt.Errorf("render go: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g.Document()); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case FormatJSON:
		data, err := json.MarshalIndent(g.Document(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		data = append(data, '\n')
		if _, err = w.Write(data); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, g.Opts.Format)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

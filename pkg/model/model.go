package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Size is a compile-time array size. Header parsers emit either a number
// or a constant name, so both JSON forms decode into the same text.
type Size string

func (s *Size) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Size(str)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	*s = Size(data)
	return nil
}

// ParentName is the owning struct, class or function of a declaration.
// Header parsers emit it either flat ("parent: ID3D12Device") or as the
// owner's record ("parent: {name: ID3D12Device}"); both decode to the name.
type ParentName string

type parentRecord struct {
	Name string `yaml:"name" json:"name"`
}

func (p *ParentName) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*p = ""
			return nil
		}
		*p = ParentName(value.Value)
		return nil
	case yaml.MappingNode:
		var rec parentRecord
		if err := value.Decode(&rec); err != nil {
			return err
		}
		*p = ParentName(rec.Name)
		return nil
	default:
		return fmt.Errorf("parent: line %d: expected a name or a mapping", value.Line)
	}
}

func (p *ParentName) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
		return nil
	case len(data) > 0 && data[0] == '{':
		var rec parentRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		*p = ParentName(rec.Name)
		return nil
	default:
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("parent: expected a name or an object: %w", err)
		}
		*p = ParentName(str)
		return nil
	}
}

// RawParam is a function parameter or struct member as handed over by the
// header parser, before any normalization.
type RawParam struct {
	Name string `yaml:"name" json:"name"`
	// Type is the raw declaration text, e.g. "const D3D12_RECT *".
	Type string `yaml:"type" json:"type"`
	// Parent is the owning struct or function name.
	Parent ParentName `yaml:"parent,omitempty" json:"parent,omitempty"`
	// ArraySize is the fixed compile-time size, "" when not an array.
	ArraySize Size `yaml:"array_size,omitempty" json:"array_size,omitempty"`
	// MultiDimensionalArray is 1 for a flattened multi-dimensional array.
	MultiDimensionalArray int `yaml:"multi_dimensional_array,omitempty" json:"multi_dimensional_array,omitempty"`
}

// UnionMember is one (name, type) pair of an anonymous union.
type UnionMember struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Union is an anonymous union known to the catalog.
type Union struct {
	Name    string        `yaml:"name,omitempty" json:"name,omitempty"`
	Members []UnionMember `yaml:"members" json:"members"`
}

// ValueInfo is the canonical description of a parameter or member.
type ValueInfo struct {
	Name           string        `yaml:"name" json:"name"`
	BaseType       string        `yaml:"base_type" json:"base_type"`
	FullType       string        `yaml:"full_type" json:"full_type"`
	PointerCount   int           `yaml:"pointer_count" json:"pointer_count"` // 0 value, 1 *, 2 ** ...
	IsConst        bool          `yaml:"is_const" json:"is_const"`
	ArrayLength    string        `yaml:"array_length,omitempty" json:"array_length,omitempty"` // "" when unknown
	ArrayCapacity  string        `yaml:"array_capacity,omitempty" json:"array_capacity,omitempty"`
	ArrayDimension int           `yaml:"array_dimension" json:"array_dimension"`
	BitfieldWidth  string        `yaml:"bitfield_width,omitempty" json:"bitfield_width,omitempty"` // e.g. ":24"
	UnionMembers   []UnionMember `yaml:"union_members,omitempty" json:"union_members,omitempty"`
	IsComOutptr    bool          `yaml:"is_com_outptr" json:"is_com_outptr"`
}

// IsPointer reports whether the value has at least one level of indirection.
func (v ValueInfo) IsPointer() bool {
	return v.PointerCount > 0
}

// IsArray reports whether the value refers to a known number of elements.
func (v ValueInfo) IsArray() bool {
	return v.ArrayLength != ""
}

// Signature is the normalized shape of a free function or class method.
type Signature struct {
	ReturnType string      `yaml:"return_type" json:"return_type"`
	Proto      string      `yaml:"proto,omitempty" json:"proto,omitempty"` // always empty for header dictionaries
	Values     []ValueInfo `yaml:"values" json:"values"`
}

// Package normalize turns raw header declarations into model.ValueInfo
// records and answers the classification questions the generator asks
// while choosing how to encode a value.
package normalize

import (
	"strings"

	"github.com/cmmoran/dx12gen/internal/tables"
	"github.com/cmmoran/dx12gen/pkg/model"
)

const (
	anonUnionPrefix = "<anon-union-"
	comOutptrToken  = "COM_Outptr"

	// LARGE_INTEGER is a union from winnt.h; the integer lives in QuadPart.
	largeIntegerType     = "LARGE_INTEGER"
	largeIntegerAccessor = ".QuadPart"
)

// Normalizer builds value descriptors. It holds no mutable state: the same
// input always produces the same descriptor.
type Normalizer struct {
	tables  *tables.Tables
	catalog model.Catalog
}

// New returns a Normalizer consulting t and catalog. A nil t selects
// tables.Default().
func New(t *tables.Tables, catalog model.Catalog) *Normalizer {
	if t == nil {
		t = tables.Default()
	}
	return &Normalizer{tables: t, catalog: catalog}
}

// resolveType cleans raw, splits off qualifiers and applies at most one
// alias entry. A canonical name is not looked up again.
func (n *Normalizer) resolveType(raw string) (base string, pointers int, isConst bool) {
	base, pointers, isConst = splitQualifiers(CleanType(raw))
	if a, ok := n.tables.Alias(base); ok {
		base = a.To
		pointers += a.ExtraPointers
		if a.ForceConst {
			isConst = true
		}
	}
	return base, pointers, isConst
}

// ReturnValueInfo describes a return value or other bare type.
func (n *Normalizer) ReturnValueInfo(name, rawType string) model.ValueInfo {
	base, pointers, isConst := n.resolveType(rawType)
	return model.ValueInfo{
		Name:         name,
		BaseType:     base,
		FullType:     rawType,
		PointerCount: pointers,
		IsConst:      isConst,
	}
}

// ValueInfo describes a function parameter or struct member.
func (n *Normalizer) ValueInfo(p model.RawParam) model.ValueInfo {
	base, pointers, isConst := n.resolveType(p.Type)

	name := p.Name
	if base == largeIntegerType && pointers == 0 {
		name += largeIntegerAccessor
	}

	parent := string(p.Parent)
	v := model.ValueInfo{
		Name:          name,
		BaseType:      base,
		FullType:      p.Type,
		PointerCount:  pointers,
		IsConst:       isConst,
		BitfieldWidth: n.tables.BitFieldWidth(parent, name),
		IsComOutptr:   n.IsComOutptr(parent, name, p.Type),
	}

	if u, ok := n.Union(base); ok {
		v.UnionMembers = append([]model.UnionMember(nil), u.Members...)
	}

	if p.ArraySize != "" {
		v.ArrayCapacity = string(p.ArraySize)
		v.ArrayLength = v.ArrayCapacity
		v.ArrayDimension = p.MultiDimensionalArray
	}

	if pointers > 0 {
		if length, ok := n.tables.ArrayLength(parent, name); ok {
			v.ArrayLength = length
		}
		if v.ArrayLength == "" {
			v.ArrayLength = inferArrayLength(p.Type, base)
		}
	}

	return v
}

// ValueInfos describes every parameter in params, in order.
func (n *Normalizer) ValueInfos(params []model.RawParam) []model.ValueInfo {
	values := make([]model.ValueInfo, 0, len(params))
	for _, p := range params {
		values = append(values, n.ValueInfo(p))
	}
	return values
}

// Union returns the anonymous union named by baseType, if any.
func (n *Normalizer) Union(baseType string) (model.Union, bool) {
	if !strings.HasPrefix(baseType, anonUnionPrefix) || n.catalog == nil {
		return model.Union{}, false
	}
	return n.catalog.Union(baseType)
}

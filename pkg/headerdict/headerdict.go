// Package headerdict holds the header dictionary produced by the external
// C++ header parser and loads it from YAML or JSON.
package headerdict

import (
	"maps"
	"slices"

	"github.com/cmmoran/dx12gen/pkg/model"
)

// Access-grouped lists as emitted by the header parser.
type Properties struct {
	Public []model.RawParam `yaml:"public" json:"public"`
}

type Methods struct {
	Public []Method `yaml:"public" json:"public"`
}

type Method struct {
	Name       string           `yaml:"name" json:"name"`
	RtnType    string           `yaml:"rtnType" json:"rtnType"`
	Parameters []model.RawParam `yaml:"parameters" json:"parameters"`
}

// Class is a class, struct or interface declaration. DeclarationMethod is
// "class" or "struct".
type Class struct {
	Name              string     `yaml:"name" json:"name"`
	DeclarationMethod string     `yaml:"declaration_method" json:"declaration_method"`
	Properties        Properties `yaml:"properties" json:"properties"`
	Methods           Methods    `yaml:"methods" json:"methods"`
}

// Function is a free function; Parent is set for functions declared inside
// a class or namespace.
type Function struct {
	Name       string           `yaml:"name" json:"name"`
	Parent     model.ParentName `yaml:"parent,omitempty" json:"parent,omitempty"`
	RtnType    string           `yaml:"rtnType" json:"rtnType"`
	Parameters []model.RawParam `yaml:"parameters" json:"parameters"`
}

type Header struct {
	Classes   map[string]Class `yaml:"classes" json:"classes"`
	Functions []Function       `yaml:"functions" json:"functions"`
}

// Dictionary is the parsed view of every header. It implements
// model.Catalog.
type Dictionary struct {
	Headers    map[string]Header      `yaml:"header_dict" json:"header_dict"`
	StructList []string               `yaml:"struct_list" json:"struct_list"`
	ClassList  []string               `yaml:"class_list" json:"class_list"`
	EnumSet    []string               `yaml:"enum_set" json:"enum_set"`
	UnionDict  map[string]model.Union `yaml:"union_dict" json:"union_dict"`

	structs map[string]bool
	classes map[string]bool
	enums   map[string]bool
}

var _ model.Catalog = (*Dictionary)(nil)

// Index builds the lookup sets and fills in missing parent names: class
// members belong to their class, function and method parameters to their
// function or method. Load calls it; callers building a Dictionary by hand
// must call it before use.
func (d *Dictionary) Index() {
	d.structs = toSet(d.StructList)
	d.classes = toSet(d.ClassList)
	d.enums = toSet(d.EnumSet)

	for hname, h := range d.Headers {
		for cname, c := range h.Classes {
			if c.Name == "" {
				c.Name = cname
			}
			setParent(c.Properties.Public, cname)
			for _, m := range c.Methods.Public {
				setParent(m.Parameters, m.Name)
			}
			h.Classes[cname] = c
		}
		for _, f := range h.Functions {
			setParent(f.Parameters, f.Name)
		}
		d.Headers[hname] = h
	}
}

// HeaderNames returns header names in sorted order.
func (d *Dictionary) HeaderNames() []string {
	return slices.Sorted(maps.Keys(d.Headers))
}

func (d *Dictionary) IsStruct(name string) bool { return d.structs[name] }
func (d *Dictionary) IsClass(name string) bool  { return d.classes[name] }
func (d *Dictionary) IsEnum(name string) bool   { return d.enums[name] }

func (d *Dictionary) Union(name string) (model.Union, bool) {
	u, ok := d.UnionDict[name]
	if ok && u.Name == "" {
		u.Name = name
	}
	return u, ok
}

// ClassNames returns the class names declared in header, sorted.
func (h Header) ClassNames() []string {
	return slices.Sorted(maps.Keys(h.Classes))
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func setParent(params []model.RawParam, parent string) {
	for i := range params {
		if params[i].Parent == "" {
			params[i].Parent = model.ParentName(parent)
		}
	}
}

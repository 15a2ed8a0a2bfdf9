package model

// Catalog answers type-kind questions about the parsed headers. The
// normalizer and the generator depend on it instead of a concrete parser
// output so tests can supply a small fixture.
type Catalog interface {
	IsStruct(name string) bool
	IsClass(name string) bool
	IsEnum(name string) bool
	// Union returns the anonymous union registered under name.
	Union(name string) (Union, bool)
}

// StaticCatalog is a Catalog backed by plain sets.
type StaticCatalog struct {
	Structs map[string]bool
	Classes map[string]bool
	Enums   map[string]bool
	Unions  map[string]Union
}

func (c *StaticCatalog) IsStruct(name string) bool { return c.Structs[name] }
func (c *StaticCatalog) IsClass(name string) bool  { return c.Classes[name] }
func (c *StaticCatalog) IsEnum(name string) bool   { return c.Enums[name] }

func (c *StaticCatalog) Union(name string) (Union, bool) {
	u, ok := c.Unions[name]
	return u, ok
}

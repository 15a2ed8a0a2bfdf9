package generator

import (
	"slices"
	"strings"

	"github.com/cmmoran/dx12gen/pkg/headerdict"
)

// Function name prefixes produced by macros rather than real API entry points.
var macroFunctionPrefixes = []string{"DEFINE_", "DECLARE_", "operator"}

var excludedFunctions = map[string]bool{
	"InlineIsEqualGUID": true,
	"IsEqualGUID":       true,
}

// IsRequiredStruct reports whether a struct declaration gets member
// descriptors: plain structs only, never v-tables or anonymous union
// members, and not blacklisted when blacklist checking is on.
func (g *Generator) IsRequiredStruct(structType string, c headerdict.Class) bool {
	if c.DeclarationMethod != "struct" {
		return false
	}
	if g.Opts.CheckBlacklist && g.isStructBlacklisted(c.Name) {
		return false
	}
	if strings.HasSuffix(structType, "Vtbl") {
		return false
	}
	return !strings.Contains(structType, "::<anon-union-")
}

// IsRequiredFunction accepts free functions that are not macro expansions or
// GUID comparison helpers.
func (g *Generator) IsRequiredFunction(f headerdict.Function) bool {
	if f.Parent != "" || excludedFunctions[f.Name] {
		return false
	}
	for _, prefix := range macroFunctionPrefixes {
		if strings.HasPrefix(f.Name, prefix) {
			return false
		}
	}
	return true
}

// IsRequiredClass accepts declarations made with the class keyword.
func (g *Generator) IsRequiredClass(c headerdict.Class) bool {
	return c.DeclarationMethod == "class"
}

func (g *Generator) isStructBlacklisted(name string) bool {
	return slices.Contains(g.Opts.StructBlacklist, name)
}

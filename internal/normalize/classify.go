package normalize

import (
	"strings"

	"github.com/cmmoran/dx12gen/pkg/model"
)

// HandleNames are the opaque Win32 handle types.
var HandleNames = []string{"HANDLE", "HMONITOR", "HWND", "HMODULE", "HDC"}

func (n *Normalizer) IsStruct(typeName string) bool {
	return n.catalog != nil && n.catalog.IsStruct(typeName)
}

func (n *Normalizer) IsEnum(typeName string) bool {
	return n.catalog != nil && n.catalog.IsEnum(typeName)
}

// IsClass takes the whole value because a void** COM out parameter is a
// class even though its base type is void.
func (n *Normalizer) IsClass(v model.ValueInfo) bool {
	if v.BaseType == "void" && v.PointerCount == 2 && v.IsComOutptr {
		return true
	}
	return n.catalog != nil && n.catalog.IsClass(v.BaseType)
}

// IsUnion reports whether typeName names a known anonymous union.
func (n *Normalizer) IsUnion(typeName string) bool {
	_, ok := n.Union(typeName)
	return ok
}

func (n *Normalizer) IsHandle(typeName string) bool {
	for _, h := range HandleNames {
		if h == typeName {
			return true
		}
	}
	return false
}

// IsComOutptr reports whether paramName of funcName receives a new COM
// object, either by annotation or through the override table.
func (n *Normalizer) IsComOutptr(funcName, paramName, fullType string) bool {
	if strings.Contains(fullType, comOutptrToken) {
		return true
	}
	return n.tables.IsComOutptrParam(funcName, paramName)
}

// InvocationTypeName returns the encoder suffix used to encode baseType.
// Types without a primitive encoder are returned unchanged, except
// anonymous unions which encode as "Union".
func (n *Normalizer) InvocationTypeName(baseType string) string {
	name := baseType
	if enc, ok := n.tables.Encoder(baseType); ok {
		name = enc
	}
	if name == "Function" {
		return "FunctionPtr"
	}
	if n.IsUnion(name) {
		return "Union"
	}
	return name
}

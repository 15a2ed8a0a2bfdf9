package tables

// ArraySizeHint names the sibling member holding the element count of a
// pointer member.
type ArraySizeHint struct {
	Struct string
	Member string
	Length string
}

// TypeAlias rewrites a set of source type names to a canonical name.
//
// ExtraPointers is added to the pointer depth (LPCSTR -> char*), ForceConst
// marks the result const (LPCSTR -> const char*).
type TypeAlias struct {
	From          []string
	To            string
	ExtraPointers int
	ForceConst    bool
}

// EncoderMapping maps primitive spellings to an encoding function suffix.
type EncoderMapping struct {
	From    []string
	Encoder string
}

// BitField records the declared width of a bit-field member.
type BitField struct {
	Struct string
	Member string
	Width  string
}

// Tables holds the fixed lookup tables consulted during normalization.
// A Tables value is never modified after construction.
type Tables struct {
	arraySizes []ArraySizeHint
	aliases    []TypeAlias
	encoders   []EncoderMapping
	bitFields  []BitField
	comOutptrs map[string][]string
}

// New builds Tables from the given entries. Slices are copied so callers
// cannot mutate the tables afterwards.
func New(
	arraySizes []ArraySizeHint,
	aliases []TypeAlias,
	encoders []EncoderMapping,
	bitFields []BitField,
	comOutptrs map[string][]string,
) *Tables {
	t := &Tables{
		arraySizes: append([]ArraySizeHint(nil), arraySizes...),
		aliases:    make([]TypeAlias, 0, len(aliases)),
		encoders:   make([]EncoderMapping, 0, len(encoders)),
		bitFields:  append([]BitField(nil), bitFields...),
		comOutptrs: make(map[string][]string, len(comOutptrs)),
	}
	for _, a := range aliases {
		a.From = append([]string(nil), a.From...)
		t.aliases = append(t.aliases, a)
	}
	for _, e := range encoders {
		e.From = append([]string(nil), e.From...)
		t.encoders = append(t.encoders, e)
	}
	for fn, params := range comOutptrs {
		t.comOutptrs[fn] = append([]string(nil), params...)
	}
	return t
}

// ArrayLength returns the count member registered for structName.member.
func (t *Tables) ArrayLength(structName, member string) (string, bool) {
	for _, h := range t.arraySizes {
		if h.Struct == structName && h.Member == member {
			return h.Length, true
		}
	}
	return "", false
}

// Alias returns the first alias entry listing baseType as a source name.
func (t *Tables) Alias(baseType string) (TypeAlias, bool) {
	for _, a := range t.aliases {
		for _, from := range a.From {
			if from == baseType {
				return a, true
			}
		}
	}
	return TypeAlias{}, false
}

// Encoder returns the encoding function suffix for a primitive spelling.
func (t *Tables) Encoder(baseType string) (string, bool) {
	for _, e := range t.encoders {
		for _, from := range e.From {
			if from == baseType {
				return e.Encoder, true
			}
		}
	}
	return "", false
}

// BitFieldWidth returns the width suffix of structName.member, or "".
func (t *Tables) BitFieldWidth(structName, member string) string {
	for _, b := range t.bitFields {
		if b.Struct == structName && b.Member == member {
			return b.Width
		}
	}
	return ""
}

// IsComOutptrParam reports whether param of function fn receives a new COM
// object even though the headers do not annotate it as such.
func (t *Tables) IsComOutptrParam(fn, param string) bool {
	for _, p := range t.comOutptrs[fn] {
		if p == param {
			return true
		}
	}
	return false
}

package normalize

import "strings"

// decorative tokens that carry no type information.
var decorativeTokens = map[string]bool{
	"STDMETHODCALLTYPE": true,
	"WINAPI":            true,
	"IN":                true,
	"OUT":               true,
}

// keptUnderscoreTokens are underscore-prefixed names that are real types.
var keptUnderscoreTokens = map[string]bool{
	"_SECURITY_ATTRIBUTES": true,
}

// CleanType strips calling conventions, SAL annotations and any
// parenthesized annotation arguments from a raw declaration, keeping the
// tokens that describe the type.
//
//	"_In_reads_ ( NumRects ) const D3D12_RECT *" -> "const D3D12_RECT *"
func CleanType(raw string) string {
	var (
		kept  []string
		depth int
	)
	for _, tok := range strings.Fields(raw) {
		switch {
		case tok[0] == '(':
			depth++
			continue
		case tok[0] == ')':
			depth--
			continue
		case depth > 0:
			continue
		}
		if keptUnderscoreTokens[tok] || (tok[0] != '_' && !decorativeTokens[tok]) {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

// splitQualifiers scans a cleaned type string into its base type name,
// pointer depth and const flag. Multi-word base types such as
// "unsigned int" keep their internal spaces.
func splitQualifiers(cleaned string) (base string, pointers int, isConst bool) {
	var words []string
	for _, tok := range strings.Fields(cleaned) {
		switch tok {
		case "const":
			isConst = true
		case "*":
			pointers++
		case "struct":
		default:
			words = append(words, tok)
		}
	}
	return strings.Join(words, " "), pointers, isConst
}

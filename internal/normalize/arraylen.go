package normalize

import "strings"

type scanState int

const (
	stateScanning scanState = iota
	stateInGroup
	stateDone
)

// firstGroup returns the text inside the first outermost balanced
// parenthesis group of s. It reports false when s has no '(' or the group
// is never closed.
func firstGroup(s string) (string, bool) {
	var (
		state      = stateScanning
		depth      int
		start, end int
	)
	for i := 0; i < len(s) && state != stateDone; i++ {
		switch state {
		case stateScanning:
			if s[i] == '(' {
				state = stateInGroup
				depth = 1
				start = i + 1
			}
		case stateInGroup:
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = i
					state = stateDone
				}
			}
		}
	}
	if state != stateDone {
		return "", false
	}
	return s[start:end], true
}

// firstArgument returns the first comma-separated argument of args,
// ignoring commas nested inside parentheses.
func firstArgument(args string) string {
	depth := 0
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(args[:i])
			}
		}
	}
	return strings.TrimSpace(args)
}

// inferArrayLength derives an element count expression from an annotated
// declaration such as "_In_reads_bytes_ ( DataSize ) const void *".
// Byte counts (arguments mentioning "Size") are divided by the element size
// unless the element type is void.
func inferArrayLength(fullType, baseType string) string {
	group, ok := firstGroup(fullType)
	if !ok {
		return ""
	}
	length := firstArgument(group)
	if length == "" || length[0] == '_' {
		return ""
	}
	if strings.Contains(length, "Size") && !strings.Contains(baseType, "void") {
		length += "/sizeof " + baseType
	}
	return length
}

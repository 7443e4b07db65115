package syntax

import "strings"

// TypeRef is a reference to a source type as written.
type TypeRef struct {
	Name      string // possibly dotted, e.g. System.String
	Args      []*TypeRef
	ArrayRank int  // number of [] suffixes
	Nullable  bool // T?
	Implicit  bool // var
	Raw       string
}

// SimpleName returns the last dotted component of Name.
func (t *TypeRef) SimpleName() string {
	if t == nil {
		return ""
	}
	if i := strings.LastIndexByte(t.Name, '.'); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// IsVoid reports whether the reference names void.
func (t *TypeRef) IsVoid() bool {
	return t != nil && t.Name == "void" && t.ArrayRank == 0 && len(t.Args) == 0
}

// String renders the reference back in source syntax.
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	if t.Implicit {
		return "var"
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	if len(t.Args) > 0 {
		sb.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte('>')
	}
	if t.Nullable {
		sb.WriteByte('?')
	}
	for range t.ArrayRank {
		sb.WriteString("[]")
	}
	return sb.String()
}

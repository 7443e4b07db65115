package syntax

type CompilationUnit struct {
	Base
	Usings  []*Using
	Members []Node // namespaces, type declarations, unknown top-level items
}

func (*CompilationUnit) Kind() Kind                { return KindCompilationUnit }
func (n *CompilationUnit) Accept(v Visitor) string { return v.VisitCompilationUnit(n) }

// Namespaces returns the namespace members of the unit in source order.
func (n *CompilationUnit) Namespaces() []*Namespace {
	var out []*Namespace
	for _, m := range n.Members {
		if ns, ok := m.(*Namespace); ok {
			out = append(out, ns)
		}
	}
	return out
}

type Using struct {
	Base
	Name   string // dotted namespace name
	Alias  string
	Static bool
}

func (*Using) Kind() Kind                { return KindUsing }
func (n *Using) Accept(v Visitor) string { return v.VisitUsing(n) }

type Namespace struct {
	Base
	Name       string
	FileScoped bool
	Usings     []*Using
	Members    []Node
}

func (*Namespace) Kind() Kind                { return KindNamespace }
func (n *Namespace) Accept(v Visitor) string { return v.VisitNamespace(n) }

type TypeKeyword uint8

const (
	TypeClass TypeKeyword = iota
	TypeStruct
	TypeInterface
)

func (k TypeKeyword) String() string {
	switch k {
	case TypeStruct:
		return "struct"
	case TypeInterface:
		return "interface"
	default:
		return "class"
	}
}

// TypeDecl is a class, struct or interface declaration.
type TypeDecl struct {
	Base
	Keyword    TypeKeyword
	Modifiers  Modifiers
	Name       string
	TypeParams []string
	Bases      []*TypeRef
	Members    []Node
}

func (*TypeDecl) Kind() Kind                { return KindTypeDecl }
func (n *TypeDecl) Accept(v Visitor) string { return v.VisitTypeDecl(n) }

type Enum struct {
	Base
	Modifiers  Modifiers
	Name       string
	Underlying *TypeRef // nil means int
	Members    []*EnumMember
}

func (*Enum) Kind() Kind                { return KindEnum }
func (n *Enum) Accept(v Visitor) string { return v.VisitEnum(n) }

type EnumMember struct {
	Base
	Name  string
	Value Node // optional
}

func (*EnumMember) Kind() Kind                { return KindEnumMember }
func (n *EnumMember) Accept(v Visitor) string { return v.VisitEnumMember(n) }

type Field struct {
	Base
	Modifiers   Modifiers
	Type        *TypeRef
	Declarators []*VariableDeclarator
}

func (*Field) Kind() Kind                { return KindField }
func (n *Field) Accept(v Visitor) string { return v.VisitField(n) }

// Accessor is one get/set/init accessor of a property. Body and Expr are
// both nil for an auto accessor.
type Accessor struct {
	Keyword   string
	Modifiers Modifiers
	Body      *Block
	Expr      Node
}

func (a *Accessor) IsAuto() bool { return a.Body == nil && a.Expr == nil }

type Property struct {
	Base
	Modifiers Modifiers
	Type      *TypeRef
	Name      string
	Accessors []*Accessor
	ExprBody  Node // `=> expr`
	Init      Node // `{ get; set; } = init`
}

func (*Property) Kind() Kind                { return KindProperty }
func (n *Property) Accept(v Visitor) string { return v.VisitProperty(n) }

// Accessor returns the accessor with the given keyword or nil.
func (n *Property) Accessor(keyword string) *Accessor {
	for _, a := range n.Accessors {
		if a.Keyword == keyword {
			return a
		}
	}
	return nil
}

// IsAuto reports whether every accessor is an auto accessor.
func (n *Property) IsAuto() bool {
	if n.ExprBody != nil {
		return false
	}
	for _, a := range n.Accessors {
		if !a.IsAuto() {
			return false
		}
	}
	return true
}

type Method struct {
	Base
	Modifiers  Modifiers
	ReturnType *TypeRef
	Name       string
	TypeParams []string
	Params     *ParameterList
	Body       *Block // nil for abstract and interface members
	ExprBody   Node
}

func (*Method) Kind() Kind                { return KindMethod }
func (n *Method) Accept(v Visitor) string { return v.VisitMethod(n) }

// ConstructorInitializer is `: base(...)` or `: this(...)`.
type ConstructorInitializer struct {
	Keyword string
	Args    []*Argument
}

type Constructor struct {
	Base
	Modifiers   Modifiers
	Name        string
	Params      *ParameterList
	Initializer *ConstructorInitializer
	Body        *Block
	ExprBody    Node
}

func (*Constructor) Kind() Kind                { return KindConstructor }
func (n *Constructor) Accept(v Visitor) string { return v.VisitConstructor(n) }

type ParameterList struct {
	Base
	Params []*Parameter
}

func (*ParameterList) Kind() Kind                { return KindParameterList }
func (n *ParameterList) Accept(v Visitor) string { return v.VisitParameterList(n) }

type Parameter struct {
	Base
	Modifier string // ref, out, in, params, this
	Type     *TypeRef
	Name     string
	Default  Node
	// Unknown is set for list entries the parser could not read as a
	// parameter; the other fields are then empty.
	Unknown *Unknown
}

func (*Parameter) Kind() Kind                { return KindParameter }
func (n *Parameter) Accept(v Visitor) string { return v.VisitParameter(n) }

package syntax

type LiteralKind uint8

const (
	LitNull LiteralKind = iota
	LitBool
	LitInt
	LitReal
	LitChar
	LitString
	LitVerbatimString
)

// Literal keeps the raw token text; the translator rewrites it.
type Literal struct {
	Base
	LitKind LiteralKind
	Value   string
}

func (*Literal) Kind() Kind                { return KindLiteral }
func (n *Literal) Accept(v Visitor) string { return v.VisitLiteral(n) }

// InterpolationPart is either raw text or an embedded expression.
type InterpolationPart struct {
	Text string
	Expr Node
}

type InterpolatedString struct {
	Base
	Verbatim bool
	Parts    []InterpolationPart
}

func (*InterpolatedString) Kind() Kind                { return KindInterpolatedString }
func (n *InterpolatedString) Accept(v Visitor) string { return v.VisitInterpolatedString(n) }

type Identifier struct {
	Base
	Name string
}

func (*Identifier) Kind() Kind                { return KindIdentifier }
func (n *Identifier) Accept(v Visitor) string { return v.VisitIdentifier(n) }

// TypeName is a type used in expression position (generic names,
// predefined types, the right side of `is`/`as`).
type TypeName struct {
	Base
	Type *TypeRef
}

func (*TypeName) Kind() Kind                { return KindTypeName }
func (n *TypeName) Accept(v Visitor) string { return v.VisitTypeName(n) }

type MemberAccess struct {
	Base
	Target      Node
	Name        string
	Conditional bool // ?.
}

func (*MemberAccess) Kind() Kind                { return KindMemberAccess }
func (n *MemberAccess) Accept(v Visitor) string { return v.VisitMemberAccess(n) }

type Invocation struct {
	Base
	Target Node
	Args   []*Argument
}

func (*Invocation) Kind() Kind                { return KindInvocation }
func (n *Invocation) Accept(v Visitor) string { return v.VisitInvocation(n) }

type Binary struct {
	Base
	Op    string
	Left  Node
	Right Node
}

func (*Binary) Kind() Kind                { return KindBinary }
func (n *Binary) Accept(v Visitor) string { return v.VisitBinary(n) }

type Unary struct {
	Base
	Op      string
	Operand Node
	Postfix bool
}

func (*Unary) Kind() Kind                { return KindUnary }
func (n *Unary) Accept(v Visitor) string { return v.VisitUnary(n) }

type Assignment struct {
	Base
	Op     string
	Target Node
	Value  Node
}

func (*Assignment) Kind() Kind                { return KindAssignment }
func (n *Assignment) Accept(v Visitor) string { return v.VisitAssignment(n) }

type ObjectCreation struct {
	Base
	Type *TypeRef
	Args []*Argument
}

func (*ObjectCreation) Kind() Kind                { return KindObjectCreation }
func (n *ObjectCreation) Accept(v Visitor) string { return v.VisitObjectCreation(n) }

type Parenthesized struct {
	Base
	Inner Node
}

func (*Parenthesized) Kind() Kind                { return KindParenthesized }
func (n *Parenthesized) Accept(v Visitor) string { return v.VisitParenthesized(n) }

type Cast struct {
	Base
	Type    *TypeRef
	Operand Node
}

func (*Cast) Kind() Kind                { return KindCast }
func (n *Cast) Accept(v Visitor) string { return v.VisitCast(n) }

type ElementAccess struct {
	Base
	Target Node
	Index  []*Argument
}

func (*ElementAccess) Kind() Kind                { return KindElementAccess }
func (n *ElementAccess) Accept(v Visitor) string { return v.VisitElementAccess(n) }

type Conditional struct {
	Base
	Cond Node
	Then Node
	Else Node
}

func (*Conditional) Kind() Kind                { return KindConditional }
func (n *Conditional) Accept(v Visitor) string { return v.VisitConditional(n) }

// Unknown is any construct the parser adapter has no dedicated node for.
// SourceKind names the grammar rule it came from.
type Unknown struct {
	Base
	SourceKind string
}

func (*Unknown) Kind() Kind                { return KindUnknown }
func (n *Unknown) Accept(v Visitor) string { return v.VisitUnknown(n) }

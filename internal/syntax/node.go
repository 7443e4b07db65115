package syntax

import "sharpswift/internal/source"

// Node is a single immutable syntax tree node.
type Node interface {
	Kind() Kind
	Info() *Base
	Accept(v Visitor) string
}

// Base holds what every node carries besides its own fields.
type Base struct {
	Span     source.Span
	Text     string // original source text of the node
	Leading  []Trivia
	Trailing []Trivia
}

func (b *Base) Info() *Base { return b }

// Visitor renders a node. One method per node type; see Accept.
type Visitor interface {
	VisitCompilationUnit(n *CompilationUnit) string
	VisitUsing(n *Using) string
	VisitNamespace(n *Namespace) string
	VisitTypeDecl(n *TypeDecl) string
	VisitEnum(n *Enum) string
	VisitEnumMember(n *EnumMember) string
	VisitField(n *Field) string
	VisitProperty(n *Property) string
	VisitMethod(n *Method) string
	VisitConstructor(n *Constructor) string
	VisitParameterList(n *ParameterList) string
	VisitParameter(n *Parameter) string
	VisitBlock(n *Block) string
	VisitExpressionStatement(n *ExpressionStatement) string
	VisitLocalDeclaration(n *LocalDeclaration) string
	VisitReturn(n *Return) string
	VisitIf(n *If) string
	VisitWhile(n *While) string
	VisitForEach(n *ForEach) string
	VisitJump(n *Jump) string
	VisitLiteral(n *Literal) string
	VisitInterpolatedString(n *InterpolatedString) string
	VisitIdentifier(n *Identifier) string
	VisitTypeName(n *TypeName) string
	VisitMemberAccess(n *MemberAccess) string
	VisitInvocation(n *Invocation) string
	VisitBinary(n *Binary) string
	VisitUnary(n *Unary) string
	VisitAssignment(n *Assignment) string
	VisitObjectCreation(n *ObjectCreation) string
	VisitParenthesized(n *Parenthesized) string
	VisitCast(n *Cast) string
	VisitElementAccess(n *ElementAccess) string
	VisitConditional(n *Conditional) string
	VisitUnknown(n *Unknown) string
}

// Modifiers is an ordered list of declaration modifier keywords.
type Modifiers []string

// Has reports whether the keyword is present.
func (m Modifiers) Has(keyword string) bool {
	for _, k := range m {
		if k == keyword {
			return true
		}
	}
	return false
}

// Argument of an invocation, object creation, element access or
// constructor initializer.
type Argument struct {
	Name     string // named argument label, empty when positional
	Modifier string // ref, out, in
	Value    Node
}

// VariableDeclarator is one `name [= init]` of a field or local declaration.
type VariableDeclarator struct {
	Name string
	Init Node
}

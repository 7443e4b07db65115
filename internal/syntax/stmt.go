package syntax

type Block struct {
	Base
	Statements []Node
}

func (*Block) Kind() Kind                { return KindBlock }
func (n *Block) Accept(v Visitor) string { return v.VisitBlock(n) }

type ExpressionStatement struct {
	Base
	Expr Node
}

func (*ExpressionStatement) Kind() Kind                { return KindExpressionStatement }
func (n *ExpressionStatement) Accept(v Visitor) string { return v.VisitExpressionStatement(n) }

type LocalDeclaration struct {
	Base
	Const       bool
	Type        *TypeRef
	Declarators []*VariableDeclarator
}

func (*LocalDeclaration) Kind() Kind                { return KindLocalDeclaration }
func (n *LocalDeclaration) Accept(v Visitor) string { return v.VisitLocalDeclaration(n) }

type Return struct {
	Base
	Value Node // nil for a bare return
}

func (*Return) Kind() Kind                { return KindReturn }
func (n *Return) Accept(v Visitor) string { return v.VisitReturn(n) }

type If struct {
	Base
	Cond Node
	Then Node
	Else Node // nil, another *If, or any statement
}

func (*If) Kind() Kind                { return KindIf }
func (n *If) Accept(v Visitor) string { return v.VisitIf(n) }

type While struct {
	Base
	Cond Node
	Body Node
}

func (*While) Kind() Kind                { return KindWhile }
func (n *While) Accept(v Visitor) string { return v.VisitWhile(n) }

type ForEach struct {
	Base
	Type       *TypeRef
	Name       string
	Collection Node
	Body       Node
}

func (*ForEach) Kind() Kind                { return KindForEach }
func (n *ForEach) Accept(v Visitor) string { return v.VisitForEach(n) }

// Jump is break or continue.
type Jump struct {
	Base
	Keyword string
}

func (*Jump) Kind() Kind                { return KindJump }
func (n *Jump) Accept(v Visitor) string { return v.VisitJump(n) }

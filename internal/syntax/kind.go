package syntax

// Kind is the discriminant of a syntax node.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindCompilationUnit
	KindUsing
	KindNamespace
	KindTypeDecl
	KindEnum
	KindEnumMember
	KindField
	KindProperty
	KindMethod
	KindConstructor
	KindParameterList
	KindParameter
	KindBlock
	KindExpressionStatement
	KindLocalDeclaration
	KindReturn
	KindIf
	KindWhile
	KindForEach
	KindJump
	KindLiteral
	KindInterpolatedString
	KindIdentifier
	KindTypeName
	KindMemberAccess
	KindInvocation
	KindBinary
	KindUnary
	KindAssignment
	KindObjectCreation
	KindParenthesized
	KindCast
	KindElementAccess
	KindConditional
	KindUnknown
)

var kindNames = [...]string{
	KindInvalid:             "invalid",
	KindCompilationUnit:     "compilation_unit",
	KindUsing:               "using",
	KindNamespace:           "namespace",
	KindTypeDecl:            "type_decl",
	KindEnum:                "enum",
	KindEnumMember:          "enum_member",
	KindField:               "field",
	KindProperty:            "property",
	KindMethod:              "method",
	KindConstructor:         "constructor",
	KindParameterList:       "parameter_list",
	KindParameter:           "parameter",
	KindBlock:               "block",
	KindExpressionStatement: "expression_statement",
	KindLocalDeclaration:    "local_declaration",
	KindReturn:              "return",
	KindIf:                  "if",
	KindWhile:               "while",
	KindForEach:             "foreach",
	KindJump:                "jump",
	KindLiteral:             "literal",
	KindInterpolatedString:  "interpolated_string",
	KindIdentifier:          "identifier",
	KindTypeName:            "type_name",
	KindMemberAccess:        "member_access",
	KindInvocation:          "invocation",
	KindBinary:              "binary",
	KindUnary:               "unary",
	KindAssignment:          "assignment",
	KindObjectCreation:      "object_creation",
	KindParenthesized:       "parenthesized",
	KindCast:                "cast",
	KindElementAccess:       "element_access",
	KindConditional:         "conditional",
	KindUnknown:             "unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

package token

const (
	Undetermined Token = iota

	Error
	EOF

	Whitespace
	LineTerminator
	Comment
	MultiLineComment
	Hashbang

	String
	Number
	BigInt
	RegExp

	NoSubstitutionTemplate // `...`
	TemplateHead           // `...${
	TemplateMiddle         // }...${
	TemplateTail           // }...`

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	ExponentAssign  // **=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd       // &&
	LogicalOr        // ||
	Coalesce         // ??
	LogicalAndAssign // &&=
	LogicalOrAssign  // ||=
	CoalesceAssign   // ??=
	Increment        // ++
	Decrement        // --

	Equal          // ==
	StrictEqual    // ===
	Less           // <
	Greater        // >
	Assign         // =
	Not            // !
	BitwiseNot     // ~
	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	QuestionDot      // ?.
	Arrow            // =>
	Ellipsis         // ...
	At               // @

	PrivateName // #name

	Identifier

	// Reserved words. Everything from here to the end of the block is
	// rejected as a binding or reference name.
	firstKeyword
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Export
	Extends
	False
	Finally
	For
	Function
	If
	Import
	In
	InstanceOf
	New
	Null
	Return
	Super
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	While
	With
	Let
	Static
	lastKeyword
)

var token2string = [...]string{
	Error:                    "Error",
	EOF:                      "EOF",
	Whitespace:               "Whitespace",
	LineTerminator:           "LineTerminator",
	Comment:                  "Comment",
	MultiLineComment:         "MultiLineComment",
	Hashbang:                 "Hashbang",
	String:                   "String",
	Number:                   "Number",
	BigInt:                   "BigInt",
	RegExp:                   "RegExp",
	NoSubstitutionTemplate:   "Template",
	TemplateHead:             "TemplateHead",
	TemplateMiddle:           "TemplateMiddle",
	TemplateTail:             "TemplateTail",
	Identifier:               "Identifier",
	PrivateName:              "PrivateName",
	Plus:                     "+",
	Minus:                    "-",
	Exponent:                 "**",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	Less:                     "<",
	Greater:                  ">",
	Assign:                   "=",
	Not:                      "!",
	BitwiseNot:               "~",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	QuestionDot:              "?.",
	Arrow:                    "=>",
	Ellipsis:                 "...",
	At:                       "@",
	Break:                    "break",
	Case:                     "case",
	Catch:                    "catch",
	Class:                    "class",
	Const:                    "const",
	Continue:                 "continue",
	Debugger:                 "debugger",
	Default:                  "default",
	Delete:                   "delete",
	Do:                       "do",
	Else:                     "else",
	Export:                   "export",
	Extends:                  "extends",
	False:                    "false",
	Finally:                  "finally",
	For:                      "for",
	Function:                 "function",
	If:                       "if",
	Import:                   "import",
	In:                       "in",
	InstanceOf:               "instanceof",
	New:                      "new",
	Null:                     "null",
	Return:                   "return",
	Super:                    "super",
	Switch:                   "switch",
	This:                     "this",
	Throw:                    "throw",
	True:                     "true",
	Try:                      "try",
	Typeof:                   "typeof",
	Var:                      "var",
	Void:                     "void",
	While:                    "while",
	With:                     "with",
	Let:                      "let",
	Static:                   "static",
}

var keywordTable = map[string]Token{}

func init() {
	for t := firstKeyword + 1; t < lastKeyword; t++ {
		keywordTable[token2string[t]] = t
	}
}

// punctuators is ordered longest first so that a greedy scan tries
// ">>>=" before ">>>" before ">>" before ">".
var punctuators = []Token{
	UnsignedShiftRightAssign,
	Ellipsis, StrictEqual, StrictNotEqual, UnsignedShiftRight, ExponentAssign,
	ShiftLeftAssign, ShiftRightAssign, LogicalAndAssign, LogicalOrAssign, CoalesceAssign,
	Exponent, ShiftLeft, ShiftRight, LogicalAnd, LogicalOr, Coalesce, Increment, Decrement,
	Equal, NotEqual, LessOrEqual, GreaterOrEqual, AddAssign, SubtractAssign, MultiplyAssign,
	QuotientAssign, RemainderAssign, AndAssign, OrAssign, ExclusiveOrAssign, Arrow, QuestionDot,
	Plus, Minus, Multiply, Slash, Remainder, And, Or, ExclusiveOr, Less, Greater, Assign,
	Not, BitwiseNot, LeftParenthesis, LeftBracket, LeftBrace, Comma, Period, RightParenthesis,
	RightBracket, RightBrace, Semicolon, Colon, QuestionMark, At,
}

package token

const (
	Undetermined Token = iota

	Illegal
	Eof
	Comment

	String
	Number
	RegExp

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

	LogicalAnd // &&
	LogicalOr  // ||
	Increment  // ++
	Decrement  // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	BitwiseNot // ~

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
	Arrow            // =>
	Ellipsis         // ...

	Identifier
	Keyword
	Boolean
	Null

	If
	In
	Do

	Var
	For
	New
	Try

	This
	Else
	Case
	Void
	With

	Const
	While
	Break
	Catch
	Throw
	Class
	Super

	Return
	Typeof
	Delete
	Switch

	Default
	Finally
	Extends

	Function
	Continue
	Debugger

	InstanceOf

	Let
	Await
	Yield
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	Eof:                      "Eof",
	Comment:                  "Comment",
	Keyword:                  "Keyword",
	String:                   "String",
	Boolean:                  "Boolean",
	Null:                     "Null",
	Number:                   "Number",
	RegExp:                   "RegExp",
	Identifier:               "Identifier",
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
	Arrow:                    "=>",
	Ellipsis:                 "...",
	If:                       "if",
	In:                       "in",
	Do:                       "do",
	Var:                      "var",
	Let:                      "let",
	For:                      "for",
	New:                      "new",
	Try:                      "try",
	This:                     "this",
	Else:                     "else",
	Case:                     "case",
	Void:                     "void",
	With:                     "with",
	Await:                    "await",
	Yield:                    "yield",
	Const:                    "const",
	While:                    "while",
	Break:                    "break",
	Catch:                    "catch",
	Throw:                    "throw",
	Class:                    "class",
	Super:                    "super",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Switch:                   "switch",
	Default:                  "default",
	Finally:                  "finally",
	Extends:                  "extends",
	Function:                 "function",
	Continue:                 "continue",
	Debugger:                 "debugger",
	InstanceOf:               "instanceof",
}

var keywordTable = map[string]keyword{
	"if": {
		token: If,
	},
	"in": {
		token: In,
	},
	"do": {
		token: Do,
	},
	"var": {
		token: Var,
	},
	"for": {
		token: For,
	},
	"new": {
		token: New,
	},
	"try": {
		token: Try,
	},
	"this": {
		token: This,
	},
	"else": {
		token: Else,
	},
	"case": {
		token: Case,
	},
	"void": {
		token: Void,
	},
	"with": {
		token: With,
	},
	"while": {
		token: While,
	},
	"break": {
		token: Break,
	},
	"catch": {
		token: Catch,
	},
	"throw": {
		token: Throw,
	},
	"return": {
		token: Return,
	},
	"typeof": {
		token: Typeof,
	},
	"delete": {
		token: Delete,
	},
	"switch": {
		token: Switch,
	},
	"default": {
		token: Default,
	},
	"finally": {
		token: Finally,
	},
	"function": {
		token: Function,
	},
	"continue": {
		token: Continue,
	},
	"debugger": {
		token: Debugger,
	},
	"instanceof": {
		token: InstanceOf,
	},
	"const": {
		token: Const,
	},
	"class": {
		token: Class,
	},
	"enum": {
		token:         Keyword,
		futureKeyword: true,
	},
	"export": {
		token:         Keyword,
		futureKeyword: true,
	},
	"extends": {
		token: Extends,
	},
	"import": {
		token:         Keyword,
		futureKeyword: true,
	},
	"super": {
		token: Super,
	},
	"let": {
		token:  Let,
		strict: true,
	},
	"await": {
		token: Await,
	},
	"yield": {
		token: Yield,
	},
	"false": {
		token: Boolean,
	},
	"true": {
		token: Boolean,
	},
	"null": {
		token: Null,
	},
}

package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	// Identifiers + literals
	IDENT  = "IDENT"  // add_ints, items, x, y, ...
	NUMBER = "NUMBER" // 1343456
	STRING = "STRING" // 'foobar'

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"

	EQ     = "=="
	NOT_EQ = "!="

	// Delimiters
	PERIOD   = "."
	COMMA    = ","
	COLON    = ":"
	LPAREN   = "("
	RPAREN   = ")"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	DEF    = "DEF"
	RETURN = "RETURN"
	FOR    = "FOR"
	IN     = "IN"
	ASSERT = "ASSERT"
	IS     = "IS"
	TRUE   = "TRUE"
	FALSE  = "FALSE"
	NONE   = "NONE"
)

type Token struct {
	Type     TokenType
	Literal  string
	Position int // the src index of the token
}

var keywords = map[string]TokenType{
	// constants
	"None":  NONE,
	"True":  TRUE,
	"False": FALSE,

	// declarations
	"def": DEF,

	// flow control
	"return": RETURN,
	"for":    FOR,
	"in":     IN,

	// operators and checks
	"is":     IS,
	"assert": ASSERT,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

package langkit

import "github.com/alecthomas/participle/v2/lexer"

// Position is the (row, col) location of a token's first character, plus
// the character (rune) offset and source filename. Reused verbatim from participle so
// that consumers who already depend on it for other parsing needs don't
// have to juggle two incompatible position types.
type Position = lexer.Position

// Token is a single lexeme: the literal substring and its starting
// position. Tokens produced by a single Lexer.Tokenize call always appear
// in non-decreasing Start order.
type Token struct {
	Word string
	Pos  Position
}

// Start is the character index of Word's first rune in the original
// source. It is the same quantity as Pos.Offset; exposed as a method
// rather than a duplicate field since Position already carries it.
func (t Token) Start() int {
	return t.Pos.Offset
}

// Len returns the number of runes in Word, the unit PositionInfo.Len uses.
func (t Token) Len() int {
	return len([]rune(t.Word))
}

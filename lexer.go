package langkit

import "fmt"

// ScopingMode selects how a language expresses nested scopes: explicit
// begin/end tokens (Block) or leading whitespace (Indent).
type ScopingMode int

const (
	ScopingBlock ScopingMode = iota
	ScopingIndent
)

type separatorKind int

const (
	separatorManual separatorKind = iota
	separatorSemiAutomatic
	separatorAutomatic
)

// SeparatorMode selects how statements are delimited. Manual requires
// the source to write its own separators (e.g. ';') and Tokenize drops
// newlines; SemiAutomatic and Automatic make Tokenize emit each newline
// in tokenizable context as its own "\n" token. The configured value
// (a separator for SemiAutomatic, a line-continuation token for
// Automatic) is carried for the parser reading the stream; Tokenize
// itself inserts no separator tokens.
type SeparatorMode struct {
	kind  separatorKind
	value string
}

// ManualSeparator is the default SeparatorMode: newlines are dropped.
func ManualSeparator() SeparatorMode { return SeparatorMode{kind: separatorManual} }

// SemiAutomaticSeparator configures newline-emitting statements, carrying
// sep as the separator token.
func SemiAutomaticSeparator(sep string) SeparatorMode {
	return SeparatorMode{kind: separatorSemiAutomatic, value: sep}
}

// AutomaticSeparator configures newline-terminated statements, carrying
// cont as the line-continuation token.
func AutomaticSeparator(cont string) SeparatorMode {
	return SeparatorMode{kind: separatorAutomatic, value: cont}
}

func (m SeparatorMode) IsManual() bool        { return m.kind == separatorManual }
func (m SeparatorMode) IsSemiAutomatic() bool { return m.kind == separatorSemiAutomatic }
func (m SeparatorMode) IsAutomatic() bool     { return m.kind == separatorAutomatic }
func (m SeparatorMode) Value() string         { return m.value }

// LexerErrorKind classifies a LexerError.
type LexerErrorKind int

const (
	// LexerErrorSingleline means a region marked Singleline contained an
	// unescaped newline.
	LexerErrorSingleline LexerErrorKind = iota
	// LexerErrorUnclosed means a region without AllowUnclosed was still
	// open at EOF.
	LexerErrorUnclosed
)

// LexerError is returned by Tokenize when the region structure of the
// source is invalid; Info locates the offending region.
type LexerError struct {
	Kind LexerErrorKind
	Info PositionInfo
}

func (e *LexerError) Error() string {
	switch e.Kind {
	case LexerErrorSingleline:
		return fmt.Sprintf("%s cannot be multiline", e.Info.Data)
	default:
		return fmt.Sprintf("%s unclosed", e.Info.Data)
	}
}

// Lexer tokenizes source text against a fixed set of Rules, with a
// ScopingMode and SeparatorMode that adjust how whitespace is treated.
type Lexer struct {
	Rules         Rules
	Path          *string
	SeparatorMode SeparatorMode
	EscapeSymbol  rune
	ScopingMode   ScopingMode
}

// NewLexer builds a Lexer with Block scoping, Manual separators and
// rules.Escape as the escape symbol.
func NewLexer(rules Rules) *Lexer {
	return &Lexer{
		Rules:         rules,
		SeparatorMode: ManualSeparator(),
		EscapeSymbol:  rules.Escape,
		ScopingMode:   ScopingBlock,
	}
}

type lexPosition struct {
	row, col int
}

func (p lexPosition) isUnset() bool { return p.row == 0 && p.col == 0 }

type lexState struct {
	word            []rune
	isIndenting     bool
	isEscaped       bool
	tokenStartIndex int
	position        lexPosition
	reader          *Reader
	lexem           []Token
	regionHandler   *RegionHandler
	compoundHandler *CompoundHandler
}

func (lx *Lexer) pushToken(ls *lexState, row, col int) {
	if len(ls.word) == 0 {
		return
	}

	filename := ""
	if lx.Path != nil {
		filename = *lx.Path
	}

	ls.lexem = append(ls.lexem, Token{
		Word: string(ls.word),
		Pos:  Position{Filename: filename, Line: row, Column: col, Offset: ls.tokenStartIndex},
	})
	ls.position = lexPosition{}
	ls.word = nil
}

// addIndent flushes the in-progress indent token. Its row comes from
// the reader directly rather than ls.position, since the newline that
// opened the indent token belongs to the previous line, while the token
// is reported at column 1 of the line it indents.
func (lx *Lexer) addIndent(ls *lexState) {
	if len(ls.word) == 0 {
		return
	}

	row, _ := ls.reader.GetPosition()
	lx.pushToken(ls, row, 1)
}

// addWord flushes a word completed in a previous iteration.
func (lx *Lexer) addWord(ls *lexState) {
	lx.pushToken(ls, ls.position.row, ls.position.col)
}

// addWordInclusively flushes a word completed in the current iteration.
// Identical to addWord; kept distinct to mirror the two call sites'
// intent, as in the grammar this is grounded on.
func (lx *Lexer) addWordInclusively(ls *lexState) {
	lx.pushToken(ls, ls.position.row, ls.position.col)
}

func (lx *Lexer) isTokenizedRegion(reaction RegionReaction, ls *lexState) bool {
	return ls.regionHandler.CurrentRegion().Tokenize && reaction.IsPass()
}

// wordPush appends letter to the in-progress word, recording its start
// index the first time the word goes from empty to non-empty.
func (lx *Lexer) wordPush(ls *lexState, letter rune) {
	if len(ls.word) == 0 {
		ls.tokenStartIndex = ls.reader.GetIndex()
	}

	ls.word = append(ls.word, letter)
}

// patternAddSymbol closes out whatever word preceded letter, then emits
// letter as its own single-character token.
func (lx *Lexer) patternAddSymbol(ls *lexState, letter rune) {
	lx.addWord(ls)
	lx.wordPush(ls, letter)

	row, col := ls.reader.GetPosition()
	ls.position = lexPosition{row: row, col: col}

	lx.addWordInclusively(ls)
}

func (lx *Lexer) patternBegin(ls *lexState, letter rune) {
	lx.addWord(ls)
	lx.wordPush(ls, letter)
}

func (lx *Lexer) patternEnd(ls *lexState, letter rune) {
	lx.wordPush(ls, letter)
	lx.addWordInclusively(ls)
}

var blankRunes = map[rune]bool{' ': true, '\t': true}

// Tokenize runs the lexer's main loop over input and returns the
// resulting token stream, or a LexerError if a region was left
// unclosed, or a Singleline region crossed a line boundary.
func (lx *Lexer) Tokenize(input string) ([]Token, error) {
	ls := &lexState{
		reader:          NewReader(input),
		regionHandler:   NewRegionHandler(lx.Rules),
		compoundHandler: NewCompoundHandler(lx.Rules),
	}

	for {
		letter, ok := ls.reader.Next()
		if !ok {
			break
		}

		// Set position, if not already set for this token.
		if ls.position.isUnset() {
			if !lx.SeparatorMode.IsManual() || letter != '\n' {
				region := ls.regionHandler.CurrentRegion()
				if !region.Tokenize || !blankRunes[letter] {
					row, col := ls.reader.GetPosition()
					ls.position = lexPosition{row: row, col: col}
				}
			}
		}

		reaction := ls.regionHandler.HandleRegion(ls.reader, ls.isEscaped)

		switch {
		case reaction.IsBegin():
			if reaction.Tokenize() {
				// The new region tokenizes its own content (e.g. string
				// interpolation): the delimiter is its own token, separate
				// from the content that follows.
				lx.patternAddSymbol(ls, letter)
			} else {
				// A newline opening a region must still surface as its own
				// token, or it would be swallowed into the region's body.
				if letter == '\n' {
					lx.patternAddSymbol(ls, letter)
				}

				lx.patternBegin(ls, letter)
			}

		case reaction.IsEnd():
			if reaction.Tokenize() {
				lx.patternAddSymbol(ls, letter)
			} else {
				lx.patternEnd(ls, letter)

				if letter == '\n' {
					lx.patternAddSymbol(ls, letter)
				}
			}

		default:
			isTokenizedRegion := lx.isTokenizedRegion(reaction, ls)

			switch ls.compoundHandler.HandleCompound(letter, ls.reader, isTokenizedRegion) {
			case CompoundBegin:
				lx.patternBegin(ls, letter)
			case CompoundKeep:
				lx.wordPush(ls, letter)
			case CompoundEnd:
				lx.patternEnd(ls, letter)
			case CompoundPass:
				if !lx.isTokenizedRegion(reaction, ls) {
					region := ls.regionHandler.CurrentRegion()

					// Flip the escaped flag: becomes true for exactly the
					// character right after an (unescaped) escape symbol.
					ls.isEscaped = !ls.isEscaped && letter == lx.EscapeSymbol

					if letter == '\n' && region.Singleline {
						row, col := ls.reader.GetPosition()

						return nil, &LexerError{
							Kind: LexerErrorSingleline,
							Info: AtPos(lx.Path, row, col, 0).WithData(region.Name),
						}
					}

					lx.wordPush(ls, letter)
				} else {
					if lx.ScopingMode == ScopingIndent {
						if ls.isIndenting && blankRunes[letter] {
							lx.wordPush(ls, letter)
						}

						if letter == '\n' {
							ls.isIndenting = true
							lx.patternBegin(ls, letter)
						}

						if ls.isIndenting {
							if next, ok := ls.reader.Peek(); !ok || !blankRunes[next] {
								lx.addIndent(ls)
								ls.isIndenting = false
							}

							continue
						}
					}

					if lx.SeparatorMode.IsManual() && letter == '\n' {
						lx.addWord(ls)

						continue
					}

					switch {
					case blankRunes[letter]:
						lx.addWord(ls)
					case lx.Rules.HasSymbol(letter) || letter == '\n':
						lx.patternAddSymbol(ls, letter)
					default:
						lx.wordPush(ls, letter)
					}
				}
			}
		}
	}

	lx.addWord(ls)

	if region, ok := ls.regionHandler.IsRegionClosed(ls.reader); !ok {
		row, col := ls.reader.GetPosition()

		return nil, &LexerError{
			Kind: LexerErrorUnclosed,
			Info: AtPos(lx.Path, row, col, 0).WithData(region.Name),
		}
	}

	return ls.lexem, nil
}

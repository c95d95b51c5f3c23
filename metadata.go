package langkit

// Metadata carries everything a parser needs while walking a token
// stream: the tokens themselves, the current cursor, the originating
// path/code (for diagnostics), an optional debug indent level, and a
// call-stack style trace of positions accumulated while descending into
// nested syntax modules.
//
// Rust's heraclitus expresses this as a Metadata trait so a language can
// swap in its own richer metadata type; Go favors a single concrete
// struct extended by embedding over a parallel interface hierarchy, so
// SyntaxModule implementations take *Metadata directly. Embed Metadata
// in a larger struct when a language needs to carry extra state through
// parsing.
type Metadata struct {
	Index int
	Expr  []Token
	Path  *string
	Code  *string
	debug *int
	trace []PositionInfo
}

// NewMetadata builds Metadata from a token stream and optional path/code.
func NewMetadata(tokens []Token, path, code *string) *Metadata {
	return &Metadata{Expr: tokens, Path: path, Code: code}
}

// GetTokenAt returns the token at index, or nil past the end of the stream.
func (m *Metadata) GetTokenAt(index int) *Token {
	if index < 0 || index >= len(m.Expr) {
		return nil
	}

	return &m.Expr[index]
}

// GetCurrentToken returns the token at the current cursor.
func (m *Metadata) GetCurrentToken() *Token {
	return m.GetTokenAt(m.Index)
}

// GetIndex and SetIndex read and move the cursor.
func (m *Metadata) GetIndex() int      { return m.Index }
func (m *Metadata) SetIndex(index int) { m.Index = index }

// IncrementIndex advances the cursor by one token.
func (m *Metadata) IncrementIndex() { m.Index++ }

// OffsetIndex advances the cursor by offset tokens.
func (m *Metadata) OffsetIndex(offset int) { m.Index += offset }

// GetDebug and SetDebug track the indent level used when tracing nested
// syntax module calls; nil means tracing is off.
func (m *Metadata) GetDebug() *int         { return m.debug }
func (m *Metadata) SetDebug(indent int)    { m.debug = &indent }

// GetPath and GetCode expose the diagnostic context a PositionInfo
// resolves against.
func (m *Metadata) GetPath() *string { return m.Path }
func (m *Metadata) GetCode() *string { return m.Code }

// GetTrace returns the call-stack style trace of positions accumulated
// while descending into nested syntax modules, outermost first.
func (m *Metadata) GetTrace() []PositionInfo { return m.trace }

// PushTrace appends info to the trace, innermost last; Message reverses
// it so the innermost frame prints first.
func (m *Metadata) PushTrace(info PositionInfo) { m.trace = append(m.trace, info) }

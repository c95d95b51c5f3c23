package langkit

import "strings"

// PositionKind distinguishes an explicit (row, col) location from one
// that only resolves once EOF is reached, since EOF carries no token to
// read a position off of.
type PositionKind int

const (
	// PositionAt is an explicit (row, col) location.
	PositionAt PositionKind = iota
	// PositionEOF resolves lazily against the source code length.
	PositionEOF
)

// PositionInfo locates a diagnostic in source: either at an explicit
// (Row, Col), or at EOF (resolved against the source text once it's
// available). Len is the length, in runes, of the token or span the
// diagnostic concerns; Data is an optional label (e.g. a region name)
// substituted into message templates.
type PositionInfo struct {
	Path     *string
	Kind     PositionKind
	Row, Col int
	Len      int
	Data     string
}

// AtPos builds a PositionInfo for an explicit row/column.
func AtPos(path *string, row, col, length int) PositionInfo {
	return PositionInfo{Path: path, Kind: PositionAt, Row: row, Col: col, Len: length}
}

// AtEOF builds a PositionInfo whose row/col resolve lazily from code via
// Resolve, since the file's end isn't a location a reader can name
// until the code is known.
func AtEOF(path *string) PositionInfo {
	return PositionInfo{Path: path, Kind: PositionEOF}
}

// FromToken builds a PositionInfo at tok's position. A nil token means
// the parser ran out of input, which is reported as EOF.
func FromToken(path *string, tok *Token) PositionInfo {
	if tok == nil {
		return AtEOF(path)
	}

	return AtPos(path, tok.Pos.Line, tok.Pos.Column, len([]rune(tok.Word)))
}

// FromBetweenTokens builds a PositionInfo at begin's own position, with
// Len spanning from begin's start to end's start, for diagnostics that
// point at a span rather than a single token (e.g. a missing separator
// between two expressions). If begin is nil, it falls back to meta's
// current position instead.
func FromBetweenTokens(meta *Metadata, begin, end *Token) PositionInfo {
	if begin == nil {
		return FromToken(meta.GetPath(), meta.GetCurrentToken())
	}

	pos := AtPos(meta.GetPath(), begin.Pos.Line, begin.Pos.Column, 0)

	if end != nil {
		length := end.Pos.Offset - begin.Pos.Offset
		if length < 0 {
			length = 0
		}

		pos.Len = length
	}

	return pos
}

// WithData attaches a label substituted into message templates (e.g. a
// region's display name for "{region} unclosed").
func (p PositionInfo) WithData(data string) PositionInfo {
	p.Data = data
	return p
}

// PathOrUnknown returns Path, or "[unknown]" if unset.
func (p PositionInfo) PathOrUnknown() string {
	if p.Path == nil {
		return "[unknown]"
	}

	return *p.Path
}

// Resolve returns p's concrete (row, col), resolving EOF against code's
// length if necessary: the position sits on the last line, at the
// column following its last character.
func (p PositionInfo) Resolve(code string) (row, col int) {
	if p.Kind == PositionAt {
		return p.Row, p.Col
	}

	lines := strings.Split(code, "\n")
	row = len(lines)
	col = len([]rune(lines[len(lines)-1])) + 1

	return row, col
}

// Package langkit is a reusable compiler frontend: a configurable,
// region-based lexer and a backtracking parser combinator surface for
// recursive-descent parsers.
//
// The lexer (Reader, Rules, Region, RegionHandler, CompoundHandler, Lexer)
// turns source text into a token stream. The parser primitives live in the
// sibling parse package and operate on that stream via Metadata. Diagnostics
// (PositionInfo, Failure, Message, Logger) are shared by both halves.
package langkit

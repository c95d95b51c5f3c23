// Package parse provides the parser-combinator primitives (Token,
// TokenBy, Syntax, Indent, IndentWith, and the character-class presets)
// used to build a recursive-descent parser over a *langkit.Metadata
// token stream, plus the SyntaxModule contract such parsers implement.
package parse

import (
	"fmt"

	"github.com/rlch/langkit"
)

// SyntaxModule is implemented by every parseable grammar construct. Name
// identifies the construct in debug traces; Parse consumes tokens from
// meta and returns a Failure on mismatch.
//
// Rust's heraclitus requires a static new() constructor as part of the
// trait so a generic caller can construct any SyntaxModule; Go has no
// static interface methods, so construction is left to ordinary
// constructor functions (NewXxx) and SyntaxModule itself only covers the
// parsing contract.
type SyntaxModule interface {
	Name() string
	Parse(meta *langkit.Metadata) langkit.Failure
}

// ParseDebug runs module.Parse while tracing entry/exit through meta's
// debug indent, printing "[Entered]"/"[Left]"/"[Failed]" lines the way
// nested syntax modules do when a Compiler has debug mode enabled. This
// trace is plain text rather than routed through Logger/lipgloss: it's a
// call-stack trace meant to scroll past during development, not a
// diagnostic pointing at a source location, so it has no snippet or
// trace-line structure worth coloring.

func ParseDebug(module SyntaxModule, meta *langkit.Metadata) langkit.Failure {
	debug := meta.GetDebug()
	if debug == nil {
		meta.SetDebug(0)

		return ParseDebug(module, meta)
	}

	indent := *debug
	padding := ""
	for range indent {
		padding += "  "
	}

	fmt.Printf("%s[Entered] %s\n", padding, module.Name())
	meta.SetDebug(indent + 1)

	result := module.Parse(meta)

	if result == nil {
		fmt.Printf("%s[Left] %s\n", padding, module.Name())
	} else {
		fmt.Printf("%s[Failed] %s\n", padding, module.Name())
	}

	meta.SetDebug(indent)

	return result
}

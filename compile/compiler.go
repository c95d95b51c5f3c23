// Package compile provides the Compiler facade that ties a Lexer to a
// parse.SyntaxModule: load source, tokenize it, and hand the resulting
// Metadata to a parser, translating lexer failures into diagnostics
// along the way.
package compile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/rlch/langkit"
	"github.com/rlch/langkit/parse"
)

// Compiler is the central unit a language built on langkit wires
// together: a name, the loaded source, and a Lexer configured with that
// language's Rules.
type Compiler struct {
	// Name of the language being compiled. The Compiler itself does not
	// read it.
	Name string
	code *string
	path *string
	debug bool
	lexer *langkit.Lexer

	logger *zap.Logger
}

// Option configures a Compiler at construction time.
type Option func(*Compiler)

// WithLogger attaches structured operational logging (distinct from the
// user-facing diagnostics a Message renders) to lifecycle events: file
// loads, tokenization, parse failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Compiler) { c.logger = logger }
}

// New builds a Compiler for a language named name, using rules to
// tokenize its source. By default it uses Block scoping, Manual
// separators and a no-op logger.
func New(name string, rules langkit.Rules, opts ...Option) *Compiler {
	c := &Compiler{
		Name:   name,
		lexer:  langkit.NewLexer(rules),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// UseIndents switches the compiler's lexer to indentation-based scoping.
func (c *Compiler) UseIndents() { c.lexer.ScopingMode = langkit.ScopingIndent }

// SetSeparator configures the compiler's separator mode.
func (c *Compiler) SetSeparator(mode langkit.SeparatorMode) { c.lexer.SeparatorMode = mode }

// Debug enables parser call-stack tracing.
func (c *Compiler) Debug() { c.debug = true }

// LoadFile reads source from path. ctx bounds how long the read may
// block; this is the only boundary in the package where external I/O
// happens, so it's the only operation that takes a context.
func (c *Compiler) LoadFile(ctx context.Context, path string) error {
	type result struct {
		contents []byte
		err      error
	}

	done := make(chan result, 1)
	go func() {
		contents, err := os.ReadFile(path)
		done <- result{contents: contents, err: err}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-done:
		if res.err != nil {
			c.logger.Error("load file failed", zap.String("path", path), zap.Error(res.err))

			return res.err
		}

		code := string(res.contents)
		c.code = &code
		c.path = &path
		c.lexer.Path = &path
		c.logger.Info("loaded file", zap.String("path", path), zap.Int("bytes", len(res.contents)))

		return nil
	}
}

// Load sets the compiler's source directly from a string.
func (c *Compiler) Load(code string) {
	c.code = &code
}

// SetPath sets the path attributed to diagnostics without loading a file.
func (c *Compiler) SetPath(path string) {
	c.path = &path
	c.lexer.Path = &path
}

// Path and Code expose the compiler's current source location and text.
func (c *Compiler) Path() *string { return c.path }
func (c *Compiler) Code() *string { return c.code }

// Tokenize runs just the lexer over the loaded source.
func (c *Compiler) Tokenize() ([]langkit.Token, error) {
	if c.code == nil {
		return nil, fmt.Errorf("compile: no source loaded")
	}

	tokens, err := c.lexer.Tokenize(*c.code)
	if err != nil {
		c.logger.Warn("tokenize failed", zap.Error(err))
	} else {
		c.logger.Debug("tokenized", zap.Int("tokens", len(tokens)))
	}

	return tokens, err
}

// Compile tokenizes the loaded source and runs module over the
// resulting Metadata, returning the populated Metadata on success. A
// LexerError is translated into a Loud Failure describing which region
// misbehaved, matching the message templates of the lexer that produced
// it ("{region} cannot be multiline" / "{region} unclosed").
func (c *Compiler) Compile(module parse.SyntaxModule) (*langkit.Metadata, langkit.Failure) {
	tokens, err := c.Tokenize()
	if err != nil {
		meta := langkit.NewMetadata(nil, c.path, c.code)

		var lexErr *langkit.LexerError
		if ok := asLexerError(err, &lexErr); ok {
			data := capitalize(lexErr.Info.Data)

			var text string
			switch lexErr.Kind {
			case langkit.LexerErrorSingleline:
				text = fmt.Sprintf("%s cannot be multiline", data)
			default:
				text = fmt.Sprintf("%s unclosed", data)
			}

			msg := langkit.NewErrAtPosition(meta, lexErr.Info).WithMessage(text)

			return meta, langkit.NewLoudFailure(msg)
		}

		msg := langkit.NewMessage(c.code, nil, langkit.MessageError).WithMessage(err.Error())

		return meta, langkit.NewLoudFailure(msg)
	}

	meta := langkit.NewMetadata(tokens, c.path, c.code)

	var failure langkit.Failure
	if c.debug {
		failure = parse.ParseDebug(module, meta)
	} else {
		failure = module.Parse(meta)
	}

	if failure != nil {
		c.logger.Warn("parse failed", zap.String("module", module.Name()))
	}

	return meta, failure
}

func asLexerError(err error, target **langkit.LexerError) bool {
	lexErr, ok := err.(*langkit.LexerError)
	if !ok {
		return false
	}

	*target = lexErr

	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

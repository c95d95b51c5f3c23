// Package main provides the langkitc CLI, a thin driver over a
// configured Lexer for inspecting and validating .langkit.yaml rules
// files against source text.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rlch/langkit"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "langkitc",
		Version: version,
		Usage:   "Inspect and validate langkit lexer rules",
		Commands: []*cli.Command{
			tokenizeCommand(),
			checkCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadLexer(configPath string) (*langkit.Lexer, error) {
	var (
		cfg *langkit.FileConfig
		err error
	)

	if configPath != "" {
		cfg, err = langkit.LoadRulesConfigFile(configPath)
	} else {
		cfg, err = langkit.LoadRulesConfig(".")
	}

	if err != nil {
		return nil, err
	}

	// langkitc has no language of its own, so it has no region tree to
	// declare in code; it builds against the empty global region, which
	// still exercises scoping/separator/symbols/compounds. The escape
	// character only takes effect inside non-tokenizable regions, so it
	// has no effect here.
	rules, scoping, separator, err := cfg.Build(langkit.NewGlobalRegion(nil))
	if err != nil {
		return nil, err
	}

	lexer := langkit.NewLexer(rules)
	lexer.ScopingMode = scoping
	lexer.SeparatorMode = separator

	return lexer, nil
}

func tokenizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokenize",
		Usage:     "Tokenize a file and print its tokens",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a .langkit.yaml rules file",
			},
		},
		Action: runTokenize,
	}
}

func runTokenize(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("tokenize: expected exactly one file argument")
	}

	lexer, err := loadLexer(cmd.String("config"))
	if err != nil {
		return err
	}

	path := args[0]

	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lexer.Path = &path

	tokens, err := lexer.Tokenize(string(contents))
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Printf("%d:%d\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Word)
	}

	return nil
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Tokenize a file and report whether its regions are well-formed",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a .langkit.yaml rules file",
			},
		},
		Action: runCheck,
	}
}

func runCheck(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("check: expected exactly one file argument")
	}

	lexer, err := loadLexer(cmd.String("config"))
	if err != nil {
		return err
	}

	path := args[0]

	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lexer.Path = &path

	tokens, tokErr := lexer.Tokenize(string(contents))
	if tokErr != nil {
		var lexErr *langkit.LexerError
		if asErr, ok := tokErr.(*langkit.LexerError); ok {
			lexErr = asErr
			msg := langkit.NewErrAtPosition(langkit.NewMetadata(nil, &path, strPtr(string(contents))), lexErr.Info)
			msg.Show()

			return fmt.Errorf("check: %s", path)
		}

		return tokErr
	}

	fmt.Printf("%s: ok (%d tokens)\n", path, len(tokens))

	return nil
}

func strPtr(s string) *string { return &s }

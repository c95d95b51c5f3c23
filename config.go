package langkit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned by FindRulesConfig when no config file
// is found walking up from the starting directory.
var ErrConfigNotFound = errors.New("langkit: no rules config file found")

// DefaultRulesConfigNames are the filenames FindRulesConfig searches for.
var DefaultRulesConfigNames = []string{".langkit.yaml", ".langkit.yml", "langkit.yaml", "langkit.yml"}

// FileCompound mirrors Compound in a yaml-friendly shape: a pair of
// single-character strings rather than a pair of rune fields.
type FileCompound struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// FileConfig is the shape of a .langkit.yaml file: the parts of a Rules
// plausible to externalize without writing Go code (escape symbol,
// scoping mode, separator mode, symbols, compounds). Region trees are
// deliberately not representable here: they're always supplied by host
// Go code and passed into Build, matching the Rust source's
// macro-in-code approach to declaring regions.
type FileConfig struct {
	// Escape is the escape character used by regions; defaults to '\\'
	// when empty.
	Escape string `yaml:"escape,omitempty"`

	// Scoping selects "block" (default) or "indent".
	Scoping string `yaml:"scoping,omitempty"`

	// Separator selects "manual" (default), "semi_automatic" or
	// "automatic". SeparatorValue is required for the latter two: it's
	// the separator token, or the line-continuation token, respectively.
	Separator      string `yaml:"separator,omitempty"`
	SeparatorValue string `yaml:"separator_value,omitempty"`

	// Symbols lists the standalone single-character symbols.
	Symbols string `yaml:"symbols,omitempty"`

	// Compounds lists adjacent character pairs that lex as one token.
	Compounds []FileCompound `yaml:"compounds,omitempty"`
}

// LoadRulesConfig finds and loads the nearest rules config file walking
// up from dir.
func LoadRulesConfig(dir string) (*FileConfig, error) {
	path, err := FindRulesConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadRulesConfigFile(path)
}

// FindRulesConfig searches for a rules config file starting from dir and
// walking up to the filesystem root.
func FindRulesConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for current := absDir; ; {
		for _, name := range DefaultRulesConfigNames {
			path := filepath.Join(current, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrConfigNotFound
		}

		current = parent
	}
}

// LoadRulesConfigFile loads a FileConfig from a specific path.
func LoadRulesConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Build turns the FileConfig into a Rules, ScopingMode and SeparatorMode.
// regionTree is supplied by the caller (see NewGlobalRegion) since
// region trees are not expressed in YAML.
func (c *FileConfig) Build(regionTree Region) (Rules, ScopingMode, SeparatorMode, error) {
	var symbols []rune
	for _, r := range c.Symbols {
		symbols = append(symbols, r)
	}

	compounds := make([]Compound, len(c.Compounds))
	for i, fc := range c.Compounds {
		left := []rune(fc.Left)
		right := []rune(fc.Right)

		if len(left) != 1 || len(right) != 1 {
			return Rules{}, 0, SeparatorMode{}, fmt.Errorf("langkit: compound %d must be exactly two single-character strings", i)
		}

		compounds[i] = Compound{Left: left[0], Right: right[0]}
	}

	rules := NewRules(symbols, compounds, regionTree)

	if c.Escape != "" {
		escape := []rune(c.Escape)
		if len(escape) != 1 {
			return Rules{}, 0, SeparatorMode{}, fmt.Errorf("langkit: escape must be a single character")
		}

		rules = rules.WithEscape(escape[0])
	}

	scoping, err := c.buildScoping()
	if err != nil {
		return Rules{}, 0, SeparatorMode{}, err
	}

	separator, err := c.buildSeparator()
	if err != nil {
		return Rules{}, 0, SeparatorMode{}, err
	}

	return rules, scoping, separator, nil
}

func (c *FileConfig) buildScoping() (ScopingMode, error) {
	switch c.Scoping {
	case "", "block":
		return ScopingBlock, nil
	case "indent":
		return ScopingIndent, nil
	default:
		return 0, fmt.Errorf("langkit: unknown scoping mode %q", c.Scoping)
	}
}

func (c *FileConfig) buildSeparator() (SeparatorMode, error) {
	switch c.Separator {
	case "", "manual":
		return ManualSeparator(), nil
	case "semi_automatic":
		if c.SeparatorValue == "" {
			return SeparatorMode{}, fmt.Errorf("langkit: separator_value is required for semi_automatic separator mode")
		}

		return SemiAutomaticSeparator(c.SeparatorValue), nil
	case "automatic":
		if c.SeparatorValue == "" {
			return SeparatorMode{}, fmt.Errorf("langkit: separator_value is required for automatic separator mode")
		}

		return AutomaticSeparator(c.SeparatorValue), nil
	default:
		return SeparatorMode{}, fmt.Errorf("langkit: unknown separator mode %q", c.Separator)
	}
}

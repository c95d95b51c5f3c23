package langkit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/langkit"
)

const sampleConfig = `
escape: "\\"
scoping: indent
separator: automatic
separator_value: "\\"
symbols: "+-*/()"
compounds:
  - left: "="
    right: "="
`

func TestLoadRulesConfigFileAndBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".langkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := langkit.LoadRulesConfigFile(path)
	require.NoError(t, err)

	stringInterp := langkit.NewRegion("string_interp", "String interpolation", "{", "}").
		WithTokenize().
		WithReferences("global")
	str := langkit.NewRegion("string", "String literal", "'", "'").WithInterp(stringInterp)
	regionTree := langkit.NewGlobalRegion([]langkit.Region{str})

	rules, scoping, separator, err := cfg.Build(regionTree)
	require.NoError(t, err)

	assert.Equal(t, langkit.ScopingIndent, scoping)
	assert.True(t, separator.IsAutomatic())
	assert.Equal(t, "\\", separator.Value())
	assert.True(t, rules.HasSymbol('+'))
	assert.Len(t, rules.Compounds, 1)
	assert.Len(t, rules.RegionTree.Interp, 1)
	assert.Equal(t, "string", rules.RegionTree.Interp[0].ID)
}

func TestFindRulesConfigWalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".langkit.yaml"), []byte("symbols: \"+\""), 0o644))

	found, err := langkit.FindRulesConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".langkit.yaml"), found)
}

func TestFindRulesConfigNotFound(t *testing.T) {
	t.Parallel()

	_, err := langkit.FindRulesConfig(t.TempDir())
	assert.ErrorIs(t, err, langkit.ErrConfigNotFound)
}

func TestFileConfigBuildRejectsBadCompound(t *testing.T) {
	t.Parallel()

	cfg := &langkit.FileConfig{Compounds: []langkit.FileCompound{{Left: "ab", Right: "="}}}
	_, _, _, err := cfg.Build(langkit.NewGlobalRegion(nil))
	assert.Error(t, err)
}

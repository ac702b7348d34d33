package catalog

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	assert.NotEmpty(t, c.Words)
	assert.NotEmpty(t, c.Phrases)
	assert.NotEmpty(t, c.Connectors)

	// Every entry carries a sane weight and at least one replacement.
	for section, entries := range map[string]map[string]Entry{
		"words": c.Words, "phrases": c.Phrases, "connectors": c.Connectors,
	} {
		for key, e := range entries {
			assert.Greater(t, e.Weight, 0.0, "%s/%s", section, key)
			assert.LessOrEqual(t, e.Weight, 1.0, "%s/%s", section, key)
			assert.NotEmpty(t, e.Replacements, "%s/%s", section, key)
			assert.Equal(t, strings.ToLower(key), key, "%s/%s key must be lower-case", section, key)
		}
	}
}

func TestLookupWordInflections(t *testing.T) {
	c := Builtin()

	for _, token := range []string{"utilize", "utilizes", "utilized", "utilizing"} {
		key, entry, ok := c.LookupWord(token)
		require.True(t, ok, "token %q should resolve", token)
		assert.Equal(t, "utilize", key)
		assert.Greater(t, entry.Weight, 0.0)
	}

	_, _, ok := c.LookupWord("ordinary")
	assert.False(t, ok)
}

func TestParseOverrideAndMerge(t *testing.T) {
	doc := `
words:
  bespoke:
    weight: 0.7
    replacements: [custom-made, custom]
  utilize:
    weight: 0.99
    replacements: [use]
phrases:
  "circle back to":
    weight: 0.8
    replacements: [revisit, return to]
connectors:
  ergo:
    weight: 0.5
    replacements: [therefore, so]
`
	o, err := ParseOverride([]byte(doc))
	require.NoError(t, err)

	merged := Builtin().Merge(o)

	// New entries appear.
	_, entry, ok := merged.LookupWord("bespoke")
	require.True(t, ok)
	assert.InDelta(t, 0.7, entry.Weight, 1e-9)

	// Override wins on key collision.
	_, entry, ok = merged.LookupWord("utilize")
	require.True(t, ok)
	assert.InDelta(t, 0.99, entry.Weight, 1e-9)

	// Built-ins survive the merge.
	_, _, ok = merged.LookupWord("leverage")
	assert.True(t, ok)

	_, ok = merged.LookupConnectorWord("ergo")
	assert.True(t, ok)
}

func TestStoreReloadMalformedFallsBack(t *testing.T) {
	s := NewStore(discardLogger())

	err := s.Reload(strings.NewReader("words: [not, a, mapping"))
	require.Error(t, err)

	// The store still serves a usable catalog.
	c := s.Current()
	require.NotNil(t, c)
	_, _, ok := c.LookupWord("utilize")
	assert.True(t, ok)
}

func TestStoreReloadSwapsSnapshot(t *testing.T) {
	s := NewStore(discardLogger())
	before := s.Current()

	err := s.Reload(strings.NewReader("words:\n  bespoke:\n    weight: 0.7\n    replacements: [custom]\n"))
	require.NoError(t, err)

	after := s.Current()
	assert.NotSame(t, before, after)

	// The old snapshot is untouched; in-flight calls holding it never
	// see the new entries.
	_, _, ok := before.LookupWord("bespoke")
	assert.False(t, ok)
	_, _, ok = after.LookupWord("bespoke")
	assert.True(t, ok)
}

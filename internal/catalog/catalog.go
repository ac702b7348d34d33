// Package catalog holds the pattern catalogs the detector scans against:
// lexical words, multi-word phrases, and connectors, each carrying a weight
// and an ordered replacement list. Catalogs are immutable after
// construction; hot reload swaps the whole table through an atomic pointer
// so in-flight scans never observe a partial merge.
package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/goccy/go-yaml"
)

// Entry is one catalog pattern: its risk weight and suggested replacements,
// ordered most to least formal.
type Entry struct {
	Weight       float64  `yaml:"weight"`
	Replacements []string `yaml:"replacements"`
}

// Catalog is one immutable snapshot of the merged pattern tables. Keys are
// lower-case.
type Catalog struct {
	Words      map[string]Entry
	Phrases    map[string]Entry
	Connectors map[string]Entry

	// Compiled at construction, ordered longest pattern first so that
	// nested phrases resolve to the longer match.
	phrasePatterns    []compiledPattern
	connectorPatterns []compiledPattern
}

type compiledPattern struct {
	key   string
	entry Entry
	re    *regexp.Regexp
}

// Override is the caller-supplied extension document. All three sections
// are optional; entries merge over the built-ins and win on key collision.
type Override struct {
	Words      map[string]Entry `yaml:"words"`
	Phrases    map[string]Entry `yaml:"phrases"`
	Connectors map[string]Entry `yaml:"connectors"`
}

// Builtin returns the built-in catalog.
func Builtin() *Catalog {
	c := &Catalog{
		Words:      builtinWords(),
		Phrases:    builtinPhrases(),
		Connectors: builtinConnectors(),
	}
	c.compile()
	return c
}

// ParseOverride decodes a YAML override document.
func ParseOverride(data []byte) (*Override, error) {
	var o Override
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing catalog override: %w", err)
	}
	return &o, nil
}

// Merge returns a new catalog with the override applied over c. The
// receiver is not mutated.
func (c *Catalog) Merge(o *Override) *Catalog {
	merged := &Catalog{
		Words:      mergeSection(c.Words, o.Words),
		Phrases:    mergeSection(c.Phrases, o.Phrases),
		Connectors: mergeSection(c.Connectors, o.Connectors),
	}
	merged.compile()
	return merged
}

func mergeSection(base, over map[string]Entry) map[string]Entry {
	out := make(map[string]Entry, len(base)+len(over))
	for k, e := range base {
		out[strings.ToLower(k)] = e
	}
	for k, e := range over {
		out[strings.ToLower(k)] = e
	}
	return out
}

// LookupWord finds a lexical-word entry for a lower-case token, tolerating
// the common inflection suffixes so "utilizes" still hits "utilize".
func (c *Catalog) LookupWord(token string) (string, Entry, bool) {
	for _, key := range inflectionBases(token) {
		if e, ok := c.Words[key]; ok {
			return key, e, true
		}
	}
	return "", Entry{}, false
}

// LookupConnectorWord finds a single-word connector entry for a lower-case
// token. Connectors match exactly; inflection does not apply.
func (c *Catalog) LookupConnectorWord(token string) (Entry, bool) {
	e, ok := c.Connectors[token]
	return e, ok
}

// PhrasePatterns returns the compiled multi-word phrase patterns, longest
// first.
func (c *Catalog) PhrasePatterns() []struct {
	Key   string
	Entry Entry
	Re    *regexp.Regexp
} {
	return exportPatterns(c.phrasePatterns)
}

// ConnectorPhrasePatterns returns compiled patterns for multi-word
// connectors, longest first.
func (c *Catalog) ConnectorPhrasePatterns() []struct {
	Key   string
	Entry Entry
	Re    *regexp.Regexp
} {
	return exportPatterns(c.connectorPatterns)
}

func exportPatterns(ps []compiledPattern) []struct {
	Key   string
	Entry Entry
	Re    *regexp.Regexp
} {
	out := make([]struct {
		Key   string
		Entry Entry
		Re    *regexp.Regexp
	}, len(ps))
	for i, p := range ps {
		out[i].Key = p.key
		out[i].Entry = p.entry
		out[i].Re = p.re
	}
	return out
}

func inflectionBases(token string) []string {
	bases := []string{token}
	if strings.HasSuffix(token, "s") {
		bases = append(bases, strings.TrimSuffix(token, "s"))
	}
	if strings.HasSuffix(token, "es") {
		bases = append(bases, strings.TrimSuffix(token, "es"))
	}
	if strings.HasSuffix(token, "d") {
		bases = append(bases, strings.TrimSuffix(token, "d"))
	}
	if strings.HasSuffix(token, "ed") {
		bases = append(bases, strings.TrimSuffix(token, "ed"))
	}
	if strings.HasSuffix(token, "ing") {
		stem := strings.TrimSuffix(token, "ing")
		bases = append(bases, stem, stem+"e")
	}
	return bases
}

func (c *Catalog) compile() {
	c.phrasePatterns = compileSection(c.Phrases, true)
	c.connectorPatterns = compileSection(c.Connectors, false)
}

// compileSection builds case-insensitive word-boundary patterns. For the
// connector section only multi-word entries are compiled; single-word
// connectors match on tokens instead.
func compileSection(entries map[string]Entry, includeSingle bool) []compiledPattern {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		if includeSingle || strings.Contains(k, " ") {
			keys = append(keys, k)
		}
	}
	// Longest first so nested phrases resolve to the longer match;
	// alphabetical within a length for deterministic output.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	patterns := make([]compiledPattern, 0, len(keys))
	for _, k := range keys {
		quoted := regexp.QuoteMeta(k)
		// Whitespace inside a phrase tolerates line wrapping.
		quoted = strings.ReplaceAll(quoted, ` `, `\s+`)
		re := regexp.MustCompile(`(?i)\b` + quoted + `\b`)
		patterns = append(patterns, compiledPattern{key: k, entry: entries[k], re: re})
	}
	return patterns
}

// Store is the process-wide catalog holder. Reads are lock-free; Reload
// installs a fully merged snapshot in one atomic swap.
type Store struct {
	current atomic.Pointer[Catalog]
	logger  *slog.Logger
}

// NewStore creates a store seeded with the built-in catalog.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{logger: logger}
	s.current.Store(Builtin())
	return s
}

// Current returns the active catalog snapshot.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Reload merges an override document over the built-ins and swaps it in.
// A malformed override is logged and the built-in catalog is installed
// instead; Reload never leaves the store without a usable catalog.
func (s *Store) Reload(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		s.logger.Warn("failed to read catalog override, keeping built-in catalog", "error", err)
		s.current.Store(Builtin())
		return fmt.Errorf("reading catalog override: %w", err)
	}
	o, err := ParseOverride(data)
	if err != nil {
		s.logger.Warn("malformed catalog override, keeping built-in catalog", "error", err)
		s.current.Store(Builtin())
		return err
	}
	merged := Builtin().Merge(o)
	s.current.Store(merged)
	s.logger.Info("catalog reloaded",
		"words", len(merged.Words),
		"phrases", len(merged.Phrases),
		"connectors", len(merged.Connectors),
	)
	return nil
}

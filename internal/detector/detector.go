// Package detector scans text against the pattern catalogs and returns
// positioned, non-overlapping matches. Phrases win over lexical words,
// which win over connectors, for any contested span.
package detector

import (
	"regexp"
	"sort"
	"strings"

	"github.com/draftwatch/authorisk/internal/catalog"
	"github.com/draftwatch/authorisk/internal/models"
)

var tokenRe = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?`)

// Detector matches catalog patterns in documents. It holds no per-call
// state; one Detector may serve any number of concurrent scans.
type Detector struct {
	store *catalog.Store
}

// New creates a Detector reading catalog snapshots from store.
func New(store *catalog.Store) *Detector {
	return &Detector{store: store}
}

// Scan returns every catalog hit in text, non-overlapping and sorted by
// start offset. Unmatched text yields an empty, non-nil slice; Scan never
// fails.
func (d *Detector) Scan(text string) []models.PatternMatch {
	cat := d.store.Current()
	matches := []models.PatternMatch{}
	if text == "" {
		return matches
	}

	covered := newSpanSet()

	// Pass 1: multi-word phrases. Patterns arrive longest first, so a
	// nested phrase loses to the longer one that got there first.
	for _, p := range cat.PhrasePatterns() {
		for _, loc := range p.Re.FindAllStringIndex(text, -1) {
			if covered.overlaps(loc[0], loc[1]) {
				continue
			}
			covered.add(loc[0], loc[1])
			matches = append(matches, models.PatternMatch{
				Text:         text[loc[0]:loc[1]],
				StartOffset:  loc[0],
				EndOffset:    loc[1],
				Weight:       p.Entry.Weight,
				Category:     models.CategoryPhrase,
				Replacements: p.Entry.Replacements,
			})
		}
	}

	// Pass 2: lexical words on boundary tokens, skipping phrase spans.
	wordCovered := newSpanSet()
	for _, loc := range tokenRe.FindAllStringIndex(text, -1) {
		if covered.overlaps(loc[0], loc[1]) {
			continue
		}
		token := strings.ToLower(text[loc[0]:loc[1]])
		if _, entry, ok := cat.LookupWord(token); ok {
			wordCovered.add(loc[0], loc[1])
			matches = append(matches, models.PatternMatch{
				Text:         text[loc[0]:loc[1]],
				StartOffset:  loc[0],
				EndOffset:    loc[1],
				Weight:       entry.Weight,
				Category:     models.CategoryLexicalWord,
				Replacements: entry.Replacements,
			})
		}
	}

	// Pass 3: connectors, skipping spans claimed by phrases or words.
	for _, p := range cat.ConnectorPhrasePatterns() {
		for _, loc := range p.Re.FindAllStringIndex(text, -1) {
			if covered.overlaps(loc[0], loc[1]) || wordCovered.overlaps(loc[0], loc[1]) {
				continue
			}
			covered.add(loc[0], loc[1])
			matches = append(matches, models.PatternMatch{
				Text:         text[loc[0]:loc[1]],
				StartOffset:  loc[0],
				EndOffset:    loc[1],
				Weight:       p.Entry.Weight,
				Category:     models.CategoryConnector,
				Replacements: p.Entry.Replacements,
			})
		}
	}
	for _, loc := range tokenRe.FindAllStringIndex(text, -1) {
		if covered.overlaps(loc[0], loc[1]) || wordCovered.overlaps(loc[0], loc[1]) {
			continue
		}
		token := strings.ToLower(text[loc[0]:loc[1]])
		if entry, ok := cat.LookupConnectorWord(token); ok {
			covered.add(loc[0], loc[1])
			matches = append(matches, models.PatternMatch{
				Text:         text[loc[0]:loc[1]],
				StartOffset:  loc[0],
				EndOffset:    loc[1],
				Weight:       entry.Weight,
				Category:     models.CategoryConnector,
				Replacements: entry.Replacements,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].StartOffset < matches[j].StartOffset
	})
	return matches
}

// Density is the weighted match mass per word: min(1, sum of weights /
// word count), counting alphabetic boundary tokens only. Empty text has
// density 0.
func Density(text string, matches []models.PatternMatch) float64 {
	words := tokenRe.FindAllStringIndex(text, -1)
	if len(words) == 0 {
		return 0
	}
	total := 0.0
	for _, m := range matches {
		total += m.Weight
	}
	density := total / float64(len(words))
	if density > 1.0 {
		return 1.0
	}
	return density
}

// spanSet tracks claimed half-open byte ranges within one scan.
type spanSet struct {
	spans [][2]int
}

func newSpanSet() *spanSet {
	return &spanSet{}
}

func (s *spanSet) add(start, end int) {
	s.spans = append(s.spans, [2]int{start, end})
}

func (s *spanSet) overlaps(start, end int) bool {
	for _, sp := range s.spans {
		if start < sp[1] && end > sp[0] {
			return true
		}
	}
	return false
}

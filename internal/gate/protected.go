package gate

import (
	"regexp"
	"sort"

	"github.com/draftwatch/authorisk/internal/models"
)

var (
	citationRe  = regexp.MustCompile(`\([A-Z][A-Za-z-]+(?:\s+(?:et\s+al\.?|&\s+[A-Z][A-Za-z-]+))?,?\s+\d{4}[a-z]?\)|\[\d+\]`)
	quotationRe = regexp.MustCompile(`"[^"]{12,}"`)
	statisticRe = regexp.MustCompile(`\b\d+(?:\.\d+)?%|\b\d+(?:,\d{3})*(?:\.\d+)?\s+(?:million|billion|thousand|percent|participants|respondents|dollars?|years?|months?|days?)\b`)
)

type span struct {
	start, end int
	term       models.ProtectedTerm
}

// IdentifyProtected finds the protected spans of text: caller-whitelisted
// terms, citations, quotations, and statistic shapes. Overlapping spans
// deduplicate to the longer, earliest one.
func IdentifyProtected(text string, whitelist []string) []models.ProtectedTerm {
	var spans []span

	for _, w := range whitelist {
		if w == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(w))
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{loc[0], loc[1], models.ProtectedTerm{
				Text:     text[loc[0]:loc[1]],
				Category: models.ProtectedWhitelistTerm,
			}})
		}
	}
	for _, loc := range citationRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span{loc[0], loc[1], models.ProtectedTerm{
			Text:     text[loc[0]:loc[1]],
			Category: models.ProtectedCitation,
		}})
	}
	for _, loc := range quotationRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span{loc[0], loc[1], models.ProtectedTerm{
			Text:     text[loc[0]:loc[1]],
			Category: models.ProtectedQuotation,
		}})
	}
	for _, loc := range statisticRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span{loc[0], loc[1], models.ProtectedTerm{
			Text:     text[loc[0]:loc[1]],
			Category: models.ProtectedStatisticalPattern,
		}})
	}

	// Longer spans claim territory first; earliest wins among equals.
	sort.Slice(spans, func(i, j int) bool {
		li, lj := spans[i].end-spans[i].start, spans[j].end-spans[j].start
		if li != lj {
			return li > lj
		}
		return spans[i].start < spans[j].start
	})

	var kept []span
	for _, s := range spans {
		overlap := false
		for _, k := range kept {
			if s.start < k.end && s.end > k.start {
				overlap = true
				break
			}
		}
		if !overlap {
			kept = append(kept, s)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].start < kept[j].start })
	terms := make([]models.ProtectedTerm, len(kept))
	for i, s := range kept {
		terms[i] = s.term
	}
	return terms
}

package gate

import (
	"fmt"
	"strings"

	"github.com/draftwatch/authorisk/internal/models"
	"github.com/draftwatch/authorisk/internal/textmetrics"
)

// Check names, in pipeline order.
const (
	checkSimilarity = "semantic_similarity"
	checkTerms      = "protected_term_integrity"
	checkCitations  = "citation_format_integrity"
	checkRiskScore  = "risk_rescore"
)

// estimateSimilarity is the deterministic fallback estimator: Dice
// coefficient over lower-cased token sets, damped by the word-count
// ratio so a rewrite that halves the text cannot score high on overlap
// alone.
func estimateSimilarity(original, candidate string) float64 {
	wordsO := textmetrics.Words(original)
	wordsC := textmetrics.Words(candidate)
	if len(wordsO) == 0 || len(wordsC) == 0 {
		return 0
	}

	setO := make(map[string]bool, len(wordsO))
	for _, w := range wordsO {
		setO[w] = true
	}
	setC := make(map[string]bool, len(wordsC))
	for _, w := range wordsC {
		setC[w] = true
	}
	shared := 0
	for w := range setC {
		if setO[w] {
			shared++
		}
	}
	dice := 2 * float64(shared) / float64(len(setO)+len(setC))

	ratio := float64(len(wordsC)) / float64(len(wordsO))
	if ratio > 1 {
		ratio = 1 / ratio
	}
	// Mild damping: a 30% length drift costs a few points, not the
	// whole score.
	return dice * (0.7 + 0.3*ratio)
}

// checkSemanticSimilarity compares candidate to original. The threshold
// rises for citation paraphrases, where drift is least acceptable.
func (g *Gate) checkSemanticSimilarity(original, candidate string, external *float64) models.CheckResult {
	sim := 0.0
	if external != nil {
		sim = *external
	} else {
		sim = estimateSimilarity(original, candidate)
	}

	threshold := g.cfg.SimilarityThreshold
	if citationRe.MatchString(original) {
		threshold = g.cfg.CitationSimilarityThreshold
	}

	r := models.CheckResult{Name: checkSimilarity, Score: sim, Passed: sim >= threshold}
	if !r.Passed {
		r.Detail = fmt.Sprintf("similarity %.2f below threshold %.2f", sim, threshold)
	}
	return r
}

// checkProtectedTerms verifies every protected span survives verbatim.
func checkProtectedTerms(candidate string, terms []models.ProtectedTerm) (models.CheckResult, []string) {
	var lost []string
	for _, t := range terms {
		if t.Category == models.ProtectedCitation {
			continue // byte-identity is the citation check's job
		}
		if !strings.Contains(candidate, t.Text) {
			lost = append(lost, t.Text)
		}
	}
	r := models.CheckResult{Name: checkTerms, Passed: len(lost) == 0}
	if len(lost) > 0 {
		r.Detail = "lost protected terms: " + strings.Join(lost, "; ")
	}
	return r, lost
}

// checkCitationIntegrity verifies every citation span appears
// byte-identical in the candidate: the citation-shaped spans of the
// original plus any caller-supplied citation terms, which may carry
// shapes the regex does not recognize. Reformatting a citation is never
// a valid rewrite strategy.
func checkCitationIntegrity(original, candidate string, terms []models.ProtectedTerm) (models.CheckResult, []string) {
	citations := citationRe.FindAllString(original, -1)
	seen := make(map[string]bool, len(citations))
	for _, c := range citations {
		seen[c] = true
	}
	for _, t := range terms {
		if t.Category == models.ProtectedCitation && !seen[t.Text] {
			seen[t.Text] = true
			citations = append(citations, t.Text)
		}
	}

	var changed []string
	for _, c := range citations {
		if !strings.Contains(candidate, c) {
			changed = append(changed, c)
		}
	}
	r := models.CheckResult{Name: checkCitations, Passed: len(changed) == 0}
	if len(changed) > 0 {
		r.Detail = "citations altered or dropped: " + strings.Join(changed, "; ")
	}
	return r, changed
}

package structure

import (
	"strings"

	"github.com/draftwatch/authorisk/internal/models"
	"github.com/draftwatch/authorisk/internal/textmetrics"
)

// minParagraphChars is the survival threshold for a segmented paragraph.
// Anything shorter is layout debris, not prose.
const minParagraphChars = 20

// paragraph pairs the raw text of a surviving paragraph with its stats.
type paragraph struct {
	text  string
	stats models.ParagraphStats
}

// segment splits text on blank-line boundaries, discards fragments under
// minParagraphChars, and derives per-paragraph stats including a
// keyword-classified function role.
func segment(text string) []paragraph {
	blocks := textmetrics.Paragraphs(text)
	paragraphs := make([]paragraph, 0, len(blocks))
	for _, b := range blocks {
		if len(b) < minParagraphChars {
			continue
		}
		idx := len(paragraphs)
		sentences := textmetrics.Sentences(b)
		stats := models.ParagraphStats{
			Index:         idx,
			WordCount:     textmetrics.WordCount(b),
			SentenceCount: len(sentences),
		}
		if len(sentences) > 0 {
			stats.FirstSentence = sentences[0]
			stats.LastSentence = sentences[len(sentences)-1]
		}
		stats.Role = classifyRole(b, idx, len(blocks))
		paragraphs = append(paragraphs, paragraph{text: b, stats: stats})
	}
	// Re-run role classification for positional roles now that the
	// surviving count is known.
	for i := range paragraphs {
		paragraphs[i].stats.Role = classifyRole(paragraphs[i].text, i, len(paragraphs))
	}
	return paragraphs
}

// classifyRole assigns a function role from keyword presence, with
// position as a tiebreaker: an unclassified opener reads as introduction
// and an unclassified closer stays body. Default is body.
func classifyRole(text string, index, total int) models.ParagraphRole {
	lower := strings.ToLower(text)

	if containsAny(lower, conclusionKeywords) {
		return models.RoleConclusion
	}
	if containsAny(lower, introductionKeywords) {
		return models.RoleIntroduction
	}
	if containsAny(lower, transitionKeywords) {
		return models.RoleTransition
	}
	if containsAny(lower, evidenceKeywords) {
		return models.RoleEvidence
	}
	if containsAny(lower, analysisKeywords) {
		return models.RoleAnalysis
	}
	if index == 0 && total > 1 {
		return models.RoleIntroduction
	}
	return models.RoleBody
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func countOccurrences(lower string, markers []string) int {
	count := 0
	for _, m := range markers {
		count += strings.Count(lower, m)
	}
	return count
}

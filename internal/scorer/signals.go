package scorer

import (
	"bytes"
	"compress/gzip"
	"math"
	"regexp"
	"strings"

	"github.com/draftwatch/authorisk/internal/textmetrics"
)

var citationRe = regexp.MustCompile(`\([A-Z][A-Za-z-]+(?:\s+(?:et\s+al\.?|&\s+[A-Z][A-Za-z-]+))?,?\s+\d{4}[a-z]?\)|\[\d+\]`)

// perplexityBands maps a gzip compression ratio onto a 0-100
// predictability score. The exact interpolation is a tuning table, not a
// derivation: machine prose compresses harder than human prose, so lower
// ratios score higher.
var perplexityBands = []struct {
	maxRatio float64
	score    int
}{
	{0.30, 95},
	{0.38, 80},
	{0.45, 60},
	{0.52, 40},
	{0.60, 25},
	{0.70, 10},
	{math.MaxFloat64, 0},
}

// perplexityProxy scores text predictability through compressibility.
// Texts too short to compress meaningfully sit at the neutral midpoint.
func perplexityProxy(text string) int {
	if len(text) < 200 {
		return 50
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(text)); err != nil {
		return 50
	}
	if err := zw.Close(); err != nil {
		return 50
	}
	ratio := float64(buf.Len()) / float64(len(text))
	for _, band := range perplexityBands {
		if ratio <= band.maxRatio {
			return band.score
		}
	}
	return 0
}

// burstiness scores sentence-length variability. Humans alternate long
// and short sentences; machine prose keeps an even rhythm, which maps to
// a low coefficient of variation and a high score here.
func burstiness(text string) int {
	sentences := textmetrics.Sentences(text)
	if len(sentences) < 3 {
		return 50
	}
	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = textmetrics.WordCount(s)
	}
	cv := textmetrics.CoefficientOfVariation(lengths)
	score := (1.0 - math.Min(cv/0.7, 1.0)) * 100
	return int(math.Round(score))
}

// Fingerprint sub-score tuning.
const (
	tier1Penalty      = 30
	tier2Penalty      = 10
	densityMultiplier = 200
)

// fingerprintScore fuses detector density with the tiered fingerprint
// counts into one 0-100 sub-score. Density already aggregates the match
// weights, so the matches themselves are not needed here.
func fingerprintScore(text string, density float64) int {
	lower := strings.ToLower(text)
	score := int(math.Round(density * densityMultiplier))
	for _, t := range tier1Fingerprints {
		score += strings.Count(lower, t) * tier1Penalty
	}
	for _, t := range tier2Fingerprints {
		score += strings.Count(lower, t) * tier2Penalty
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Human-feature deduction tuning. The deduction is capped so that strong
// machine signals cannot be hedged away entirely.
const (
	hedgeVarietyPoints = 3
	hedgeVarietyCap    = 12
	firstPersonCap     = 8
	citationPoints     = 4
	citationCap        = 12
	deductionCap       = 25
	casualRegisterMin  = 5 // register scale runs academic 0 to casual 10
)

// humanDeduction scores markers of human writing that subtract from the
// fused risk: hedging variety, register-appropriate first-person usage,
// and citation density.
func humanDeduction(text string, register int) int {
	lower := strings.ToLower(text)

	variety := 0
	for _, h := range hedgeForms {
		if strings.Contains(lower, h) {
			variety++
		}
	}
	deduction := variety * hedgeVarietyPoints
	if deduction > hedgeVarietyCap {
		deduction = hedgeVarietyCap
	}

	// First person only reads as a human marker where the target register
	// permits it at all.
	if register >= casualRegisterMin {
		firstPerson := 0
		for _, w := range textmetrics.Words(text) {
			for _, fp := range firstPersonForms {
				if w == fp {
					firstPerson++
				}
			}
		}
		if firstPerson > firstPersonCap {
			firstPerson = firstPersonCap
		}
		deduction += firstPerson
	}

	citations := len(citationRe.FindAllString(text, -1)) * citationPoints
	if citations > citationCap {
		citations = citationCap
	}
	deduction += citations

	if deduction > deductionCap {
		deduction = deductionCap
	}
	return deduction
}

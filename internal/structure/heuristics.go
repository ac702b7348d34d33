package structure

import (
	"math"
	"strings"

	"github.com/draftwatch/authorisk/internal/models"
	"github.com/draftwatch/authorisk/internal/textmetrics"
)

// Heuristic point contributions. The legacy boolean detectors keep their
// historical fixed values.
const (
	maxProgressionPoints = 15
	uniformDistPoints    = 10
	moderateDistPoints   = 5
	strongClosurePoints  = 10
	hedgedClosurePoints  = 5
	highEchoPoints       = 10
	someEchoPoints       = 5
	noCrossRefPoints     = 5

	linearFlowPoints  = 25
	repetitivePoints  = 20
	uniformLenPoints  = 15
	predictablePoints = 10
)

// findings collects every sub-analysis so the risk card can be derived
// without re-scanning the document.
type findings struct {
	progression  progressionFinding
	distribution distributionFinding
	closure      closureFinding
	echo         echoFinding
	crossRef     crossRefFinding

	linearFlow   bool
	ordinalCount int
	repetitive   bool
	topicRatio   float64
	uniformLen   bool
	withinRatio  float64
	predictable  bool
}

type progressionFinding struct {
	Forward     int
	Backward    int
	Conditional int
	Monotonic   bool
	Points      int
}

// analyzeProgression counts forward-only, backward-reference, and
// conditional markers. A document that only pushes forward, with no
// counter-signal, reads as machine-planned.
func analyzeProgression(paragraphs []paragraph) progressionFinding {
	f := progressionFinding{}
	for _, p := range paragraphs {
		lower := strings.ToLower(p.text)
		f.Forward += countOccurrences(lower, forwardMarkers)
		f.Backward += countOccurrences(lower, backwardMarkers)
		f.Conditional += countOccurrences(lower, conditionalMarkers)
	}
	if f.Forward > 0 && f.Backward == 0 && f.Conditional == 0 {
		f.Monotonic = true
		f.Points = f.Forward * 5
		if f.Points > maxProgressionPoints {
			f.Points = maxProgressionPoints
		}
	}
	return f
}

type distributionFinding struct {
	CV     float64
	Kind   string // uniform, moderate, asymmetric
	Points int
	Expand []int // paragraph indices worth expanding to break uniformity
}

// analyzeDistribution measures how evenly the word budget is spread
// across paragraphs. Humans write asymmetrically; near-equal paragraph
// sizes are an assembly-line tell.
func analyzeDistribution(paragraphs []paragraph) distributionFinding {
	lengths := make([]int, len(paragraphs))
	sum := 0
	for i, p := range paragraphs {
		lengths[i] = p.stats.WordCount
		sum += p.stats.WordCount
	}
	f := distributionFinding{CV: textmetrics.CoefficientOfVariation(lengths)}
	mean := float64(sum) / float64(len(paragraphs))

	switch {
	case f.CV < 0.2:
		f.Kind = "uniform"
		f.Points = uniformDistPoints
		for i, l := range lengths {
			if mean > 0 && math.Abs(float64(l)-mean)/mean <= 0.1 {
				f.Expand = append(f.Expand, i)
			}
		}
	case f.CV > 0.5:
		f.Kind = "asymmetric"
	default:
		f.Kind = "moderate"
		f.Points = moderateDistPoints
	}
	return f
}

type closureFinding struct {
	Formulaic bool
	Open      bool
	Hedges    int
	Question  bool
	Points    int
}

// analyzeClosure inspects the last one or two paragraphs. A stock
// conclusion with no hedging and no open question is the strongest
// closure signal.
func analyzeClosure(paragraphs []paragraph) closureFinding {
	f := closureFinding{}
	tail := paragraphs
	if len(tail) > 2 {
		tail = tail[len(tail)-2:]
	}
	for _, p := range tail {
		lower := strings.ToLower(p.text)
		if containsAny(lower, formulaicClosers) {
			f.Formulaic = true
		}
		if containsAny(lower, openEndings) {
			f.Open = true
		}
		for _, w := range textmetrics.Words(p.text) {
			for _, h := range hedgingWords {
				if w == h {
					f.Hedges++
				}
			}
		}
		if strings.Contains(p.text, "?") {
			f.Question = true
		}
	}
	if f.Formulaic && !f.Open && !f.Question {
		if f.Hedges == 0 {
			f.Points = strongClosurePoints
		} else {
			f.Points = hedgedClosurePoints
		}
	}
	return f
}

type echoFinding struct {
	Pairs    int
	Explicit int
	Echoed   int
	Ratio    float64 // explicit-connector share of adjacent pairs
	Points   int
}

// analyzeLexicalEcho checks how each paragraph connects to its
// predecessor: through a shared content word with the previous closing
// sentence, or by leaning on an explicit connector opening. Heavy
// connector dependence is AI-like.
func analyzeLexicalEcho(paragraphs []paragraph) echoFinding {
	f := echoFinding{}
	for i := 1; i < len(paragraphs); i++ {
		f.Pairs++
		if opensWithConnector(paragraphs[i].text) {
			f.Explicit++
			continue
		}
		prevClose := paragraphs[i-1].stats.LastSentence
		if textmetrics.SharedContentWord(paragraphs[i].stats.FirstSentence, prevClose) {
			f.Echoed++
		}
	}
	if f.Pairs > 0 {
		f.Ratio = float64(f.Explicit) / float64(f.Pairs)
	}
	switch {
	case f.Ratio > 0.5:
		f.Points = highEchoPoints
	case f.Ratio > 0.25:
		f.Points = someEchoPoints
	}
	return f
}

func opensWithConnector(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, c := range openingConnectors {
		if strings.HasPrefix(lower, c) {
			rest := lower[len(c):]
			if rest == "" || !isLetter(rest[0]) {
				return true
			}
		}
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

type crossRefFinding struct {
	Found  int
	Points int
}

// analyzeCrossReference scans the whole document for back-references and
// concept callbacks. Their total absence is a mild machine tell; humans
// circle back.
func analyzeCrossReference(text string) crossRefFinding {
	f := crossRefFinding{Found: countOccurrences(strings.ToLower(text), crossRefMarkers)}
	if f.Found == 0 {
		f.Points = noCrossRefPoints
	}
	return f
}

// detectLinearFlow fires on three or more ordinal transition markers.
func detectLinearFlow(paragraphs []paragraph) (bool, int) {
	count := 0
	for _, p := range paragraphs {
		lower := strings.ToLower(p.text)
		for _, m := range ordinalMarkers {
			if strings.Contains(lower, m+" ") || strings.Contains(lower, m+",") {
				count++
			}
		}
	}
	return count >= 3, count
}

// detectRepetitivePattern fires when more than 70% of paragraphs open
// with a topic sentence: a declarative first sentence of reasonable size
// whose content words carry through the rest of the paragraph.
func detectRepetitivePattern(paragraphs []paragraph) (bool, float64) {
	if len(paragraphs) == 0 {
		return false, 0
	}
	topic := 0
	for _, p := range paragraphs {
		first := p.stats.FirstSentence
		if first == "" || strings.HasSuffix(first, "?") {
			continue
		}
		n := textmetrics.WordCount(first)
		if n < 8 || n > 35 {
			continue
		}
		rest := strings.TrimPrefix(p.text, first)
		if textmetrics.SharedContentWord(first, rest) {
			topic++
		}
	}
	ratio := float64(topic) / float64(len(paragraphs))
	return ratio > 0.7, ratio
}

// detectUniformLength fires when more than 75% of paragraphs fall within
// 30% of the mean length.
func detectUniformLength(paragraphs []paragraph) (bool, float64) {
	if len(paragraphs) == 0 {
		return false, 0
	}
	sum := 0
	for _, p := range paragraphs {
		sum += p.stats.WordCount
	}
	mean := float64(sum) / float64(len(paragraphs))
	if mean == 0 {
		return false, 0
	}
	within := 0
	for _, p := range paragraphs {
		if math.Abs(float64(p.stats.WordCount)-mean)/mean <= 0.3 {
			within++
		}
	}
	ratio := float64(within) / float64(len(paragraphs))
	return ratio > 0.75, ratio
}

// detectPredictableOrder fires on a strict introduction, bodies,
// conclusion sequence with nothing out of place.
func detectPredictableOrder(paragraphs []paragraph) bool {
	if len(paragraphs) < 3 {
		return false
	}
	if paragraphs[0].stats.Role != models.RoleIntroduction {
		return false
	}
	if paragraphs[len(paragraphs)-1].stats.Role != models.RoleConclusion {
		return false
	}
	for _, p := range paragraphs[1 : len(paragraphs)-1] {
		switch p.stats.Role {
		case models.RoleIntroduction, models.RoleConclusion:
			return false
		}
	}
	return true
}

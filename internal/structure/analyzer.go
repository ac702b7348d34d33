// Package structure segments a document into paragraphs and evaluates
// seven independent structural indicators of machine-generated prose,
// combining them into a bounded structure score and a 7-indicator risk
// card.
package structure

import (
	"github.com/draftwatch/authorisk/internal/models"
)

// Structure score level thresholds.
const (
	levelHigh   = 50
	levelMedium = 25
)

// Analyzer evaluates document structure. It is stateless; one Analyzer
// serves any number of concurrent calls.
type Analyzer struct{}

// New creates a structural analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze segments text and runs every structural heuristic. Documents
// with fewer than two surviving paragraphs short-circuit to an
// insufficient-data report with a zero score and an untriggered card.
// Analyze never fails, whatever the input.
func (a *Analyzer) Analyze(text string) models.StructureReport {
	paragraphs := segment(text)

	report := models.StructureReport{
		Paragraphs:       make([]models.ParagraphStats, 0, len(paragraphs)),
		ExpandCandidates: []int{},
		Level:            models.RiskLow,
	}
	for _, p := range paragraphs {
		report.Paragraphs = append(report.Paragraphs, p.stats)
	}

	if len(paragraphs) < 2 {
		report.Insufficient = true
		report.Card = untriggeredCard()
		return report
	}

	f := findings{
		progression:  analyzeProgression(paragraphs),
		distribution: analyzeDistribution(paragraphs),
		closure:      analyzeClosure(paragraphs),
		echo:         analyzeLexicalEcho(paragraphs),
		crossRef:     analyzeCrossReference(text),
	}
	f.linearFlow, f.ordinalCount = detectLinearFlow(paragraphs)
	f.repetitive, f.topicRatio = detectRepetitivePattern(paragraphs)
	f.uniformLen, f.withinRatio = detectUniformLength(paragraphs)
	f.predictable = detectPredictableOrder(paragraphs)

	score := f.progression.Points +
		f.distribution.Points +
		f.closure.Points +
		f.echo.Points +
		f.crossRef.Points
	if f.linearFlow {
		score += linearFlowPoints
	}
	if f.repetitive {
		score += repetitivePoints
	}
	if f.uniformLen {
		score += uniformLenPoints
	}
	if f.predictable {
		score += predictablePoints
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	report.Score = score
	report.Level = levelFor(score)
	if f.distribution.Expand != nil {
		report.ExpandCandidates = f.distribution.Expand
	}
	report.Card = buildCard(f)
	return report
}

func levelFor(score int) models.RiskLevel {
	switch {
	case score >= levelHigh:
		return models.RiskHigh
	case score >= levelMedium:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

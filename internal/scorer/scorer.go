// Package scorer fuses the pattern-detector output, a compressibility
// perplexity proxy, a burstiness signal, and the structure score into one
// bounded 0-100 authorship-risk score.
package scorer

import (
	"math"

	"github.com/draftwatch/authorisk/internal/detector"
	"github.com/draftwatch/authorisk/internal/models"
	"github.com/draftwatch/authorisk/internal/structure"
)

// Weights controls the importance of each fused signal. Structure
// dominates because the other signals are unreliable on short text.
type Weights struct {
	Perplexity  float64
	Fingerprint float64
	Burstiness  float64
	Structure   float64
}

// DefaultWeights returns the tuned fusion weights.
func DefaultWeights() Weights {
	return Weights{
		Perplexity:  0.15,
		Fingerprint: 0.20,
		Burstiness:  0.15,
		Structure:   0.50,
	}
}

// Score level thresholds, fixed per call.
const (
	levelHigh   = 60
	levelMedium = 30
)

// Scorer computes fused risk scores. Stateless beyond its read-only
// collaborators; safe for concurrent use.
type Scorer struct {
	detector  *detector.Detector
	structure *structure.Analyzer
	weights   Weights
}

// New creates a Scorer with default weights.
func New(det *detector.Detector, analyzer *structure.Analyzer) *Scorer {
	return NewWithWeights(det, analyzer, DefaultWeights())
}

// NewWithWeights creates a Scorer with explicit fusion weights.
func NewWithWeights(det *detector.Detector, analyzer *structure.Analyzer, w Weights) *Scorer {
	return &Scorer{detector: det, structure: analyzer, weights: w}
}

// Score runs the detector and the structural analyzer on text and fuses
// their signals. Sub-scores are each computed on 0-100, multiplied by
// their weight, summed, then clamped; a strong individual signal is never
// renormalized away. The register only affects the human-feature
// deduction.
func (s *Scorer) Score(text string, register int) models.RiskScore {
	density := detector.Density(text, s.detector.Scan(text))
	structureReport := s.structure.Analyze(text)
	return s.fuse(text, register, density, structureReport)
}

// ScoreWithStructure fuses a pre-computed structure report, for callers
// that already ran the analyzer and do not want the document re-scanned.
func (s *Scorer) ScoreWithStructure(text string, register int, report models.StructureReport) models.RiskScore {
	density := detector.Density(text, s.detector.Scan(text))
	return s.fuse(text, register, density, report)
}

func (s *Scorer) fuse(text string, register int, density float64, report models.StructureReport) models.RiskScore {
	signals := models.RiskSignals{
		Perplexity:     perplexityProxy(text),
		Fingerprint:    fingerprintScore(text, density),
		Burstiness:     burstiness(text),
		Structure:      report.Score,
		HumanDeduction: humanDeduction(text, register),
	}

	fused := float64(signals.Perplexity)*s.weights.Perplexity +
		float64(signals.Fingerprint)*s.weights.Fingerprint +
		float64(signals.Burstiness)*s.weights.Burstiness +
		float64(signals.Structure)*s.weights.Structure

	value := int(math.Round(fused)) - signals.HumanDeduction
	if value > 100 {
		value = 100
	}
	if value < 0 {
		value = 0
	}

	return models.RiskScore{
		Value:   value,
		Level:   levelFor(value),
		Signals: signals,
	}
}

func levelFor(value int) models.RiskLevel {
	switch {
	case value >= levelHigh:
		return models.RiskHigh
	case value >= levelMedium:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

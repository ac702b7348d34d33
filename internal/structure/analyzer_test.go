package structure

import (
	"strings"
	"testing"

	"github.com/draftwatch/authorisk/internal/models"
)

// evenParagraphs builds n paragraphs of exactly wordsEach filler words.
func evenParagraphs(n, wordsEach int) string {
	para := strings.TrimSpace(strings.Repeat("filler ", wordsEach))
	blocks := make([]string, n)
	for i := range blocks {
		blocks[i] = para + "."
	}
	return strings.Join(blocks, "\n\n")
}

func TestAnalyzeInsufficientData(t *testing.T) {
	a := New()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \n\n  "},
		{"single paragraph", "Just one paragraph of ordinary text here."},
		{"fragments only", "short\n\ntiny\n\nwee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := a.Analyze(tt.input)
			if !report.Insufficient {
				t.Fatal("expected insufficient-data report")
			}
			if report.Score != 0 {
				t.Errorf("insufficient data must score 0, got %d", report.Score)
			}
			if report.Level != models.RiskLow {
				t.Errorf("expected low level, got %s", report.Level)
			}
			if len(report.Card.Indicators) != 7 {
				t.Fatalf("card must always carry 7 indicators, got %d", len(report.Card.Indicators))
			}
			for _, ind := range report.Card.Indicators {
				if ind.Triggered {
					t.Errorf("indicator %s must not trigger without data", ind.ID)
				}
			}
		})
	}
}

func TestAnalyzeUniformDistribution(t *testing.T) {
	a := New()

	// Six paragraphs of 48-52 words each: textbook uniform distribution.
	blocks := []string{
		strings.TrimSpace(strings.Repeat("alpha ", 48)) + ".",
		strings.TrimSpace(strings.Repeat("bravo ", 52)) + ".",
		strings.TrimSpace(strings.Repeat("charlie ", 50)) + ".",
		strings.TrimSpace(strings.Repeat("delta ", 49)) + ".",
		strings.TrimSpace(strings.Repeat("echo ", 51)) + ".",
		strings.TrimSpace(strings.Repeat("foxtrot ", 50)) + ".",
	}
	report := a.Analyze(strings.Join(blocks, "\n\n"))

	if report.Insufficient {
		t.Fatal("six paragraphs should be sufficient")
	}
	if report.Score == 0 {
		t.Error("uniform distribution should contribute risk")
	}

	var uniformFn, symmetry models.StructuralIndicator
	for _, ind := range report.Card.Indicators {
		switch ind.ID {
		case models.IndicatorUniformFunction:
			uniformFn = ind
		case models.IndicatorSymmetry:
			symmetry = ind
		}
	}
	if !uniformFn.Triggered {
		t.Error("uniform word counts should trigger the uniform-function indicator")
	}
	if !symmetry.Triggered {
		t.Error("near-equal paragraph lengths should trigger the symmetry indicator")
	}
	if len(report.ExpandCandidates) == 0 {
		t.Error("uniform distribution should record expand candidates")
	}
}

func TestAnalyzeAsymmetricDistribution(t *testing.T) {
	a := New()

	text := evenParagraphs(1, 150) + "\n\n" +
		evenParagraphs(1, 25) + "\n\n" +
		evenParagraphs(1, 90) + "\n\n" +
		evenParagraphs(1, 8)
	report := a.Analyze(text)

	for _, ind := range report.Card.Indicators {
		if ind.ID == models.IndicatorUniformFunction && ind.Triggered {
			t.Error("asymmetric paragraphs should not read as uniform")
		}
	}
}

func TestAnalyzeLinearEnumeration(t *testing.T) {
	a := New()

	text := "First, the proposal sets out the problem and motivates the overall design of the system in detail.\n\n" +
		"Second, the evaluation covers the workload mix and the measurement setup used across every experiment.\n\n" +
		"Third, the discussion relates the measured results back to the stated goals and their broader context.\n\n" +
		"Finally, the appendix records the configuration values needed to reproduce all the reported numbers."
	report := a.Analyze(text)

	var linear models.StructuralIndicator
	for _, ind := range report.Card.Indicators {
		if ind.ID == models.IndicatorLinearEnumeration {
			linear = ind
		}
	}
	if !linear.Triggered {
		t.Error("four ordinal openers should trigger linear enumeration")
	}
	if linear.RiskLevel != 3 {
		t.Errorf("linear enumeration is a severity-3 indicator, got %d", linear.RiskLevel)
	}
	if report.Score < linearFlowPoints {
		t.Errorf("expected at least %d points from linear flow, got %d", linearFlowPoints, report.Score)
	}
}

func TestAnalyzeOverConclusiveEnding(t *testing.T) {
	a := New()

	strong := "The first section lays out the background of the measurement study in plain terms for the reader.\n\n" +
		"The second section describes what the instruments recorded across the full observation window.\n\n" +
		"In conclusion, the evidence settles the question completely and the matter is closed."
	report := a.Analyze(strong)

	found := false
	for _, ind := range report.Card.Indicators {
		if ind.ID == models.IndicatorOverConclusive && ind.Triggered {
			found = true
		}
	}
	if !found {
		t.Error("an unhedged formulaic conclusion should trigger the over-conclusive indicator")
	}

	hedged := "The first section lays out the background of the measurement study in plain terms for the reader.\n\n" +
		"The second section describes what the instruments recorded across the full observation window.\n\n" +
		"In conclusion, the evidence perhaps points this way, though it might not settle the question. What remains to be seen?"
	report = a.Analyze(hedged)
	for _, ind := range report.Card.Indicators {
		if ind.ID == models.IndicatorOverConclusive && ind.Triggered {
			t.Error("hedged, questioning closure should not read as over-conclusive")
		}
	}
}

func TestAnalyzeCrossReferencePresence(t *testing.T) {
	a := New()

	text := "The experiment ran for two weeks across both clusters without interruption or manual restarts.\n\n" +
		"As mentioned above, the runs were uninterrupted, which simplifies the interpretation of every tail latency figure."
	report := a.Analyze(text)

	for _, ind := range report.Card.Indicators {
		if ind.ID == models.IndicatorMissingCrossRef && ind.Triggered {
			t.Error("a document with back-references should not flag missing cross-reference")
		}
	}
}

func TestScoreClampedAndLeveled(t *testing.T) {
	a := New()

	// Stack every heuristic at once; the score must stay within bounds.
	text := "First, this essay will examine the topic in a structured, comprehensive and fully enumerated fashion today.\n\n" +
		"Second, the middle part continues with the next point in exactly the same rhythm and exactly the same size.\n\n" +
		"Third, another body paragraph then follows the established pattern with the next point in the planned order.\n\n" +
		"In conclusion, the essay has covered every point completely and the argument is now settled beyond doubt."
	report := a.Analyze(text)

	if report.Score < 0 || report.Score > 100 {
		t.Fatalf("score out of bounds: %d", report.Score)
	}
	if report.Score >= levelHigh && report.Level != models.RiskHigh {
		t.Errorf("expected high level at score %d", report.Score)
	}
	if len(report.Card.Indicators) != 7 {
		t.Fatalf("card must always carry 7 indicators, got %d", len(report.Card.Indicators))
	}
}

func TestSegmentDiscardsFragments(t *testing.T) {
	paragraphs := segment("A real paragraph with enough text to survive segmentation.\n\nok\n\nAnother real paragraph, also long enough to count here.")
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 surviving paragraphs, got %d", len(paragraphs))
	}
	for i, p := range paragraphs {
		if p.stats.Index != i {
			t.Errorf("paragraph %d has index %d", i, p.stats.Index)
		}
	}
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		index    int
		total    int
		expected models.ParagraphRole
	}{
		{"conclusion keyword", "In conclusion, the results hold.", 3, 4, models.RoleConclusion},
		{"evidence keyword", "According to the survey, 40 percent agreed.", 1, 4, models.RoleEvidence},
		{"analysis keyword", "This suggests the effect is causal.", 2, 4, models.RoleAnalysis},
		{"positional introduction", "Plain opening text with no markers at all.", 0, 4, models.RoleIntroduction},
		{"default body", "Plain text with no markers at all.", 2, 4, models.RoleBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyRole(tt.text, tt.index, tt.total)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

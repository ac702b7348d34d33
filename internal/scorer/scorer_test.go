package scorer

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/draftwatch/authorisk/internal/catalog"
	"github.com/draftwatch/authorisk/internal/detector"
	"github.com/draftwatch/authorisk/internal/models"
	"github.com/draftwatch/authorisk/internal/structure"
)

func newTestScorer() *Scorer {
	store := catalog.NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(detector.New(store), structure.New())
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	sum := w.Perplexity + w.Fingerprint + w.Burstiness + w.Structure
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights should sum to 1.0, got %v", sum)
	}
}

func TestScoreBoundsOnPathologicalRepetition(t *testing.T) {
	s := newTestScorer()
	text := strings.Repeat("rich tapestry. ", 10000)

	score := s.Score(text, 5)
	if score.Value < 0 || score.Value > 100 {
		t.Fatalf("value out of bounds: %d", score.Value)
	}
	if score.Signals.Fingerprint != 100 {
		t.Errorf("repeated tier-1 term should saturate the fingerprint signal, got %d", score.Signals.Fingerprint)
	}
	if score.Level != levelFor(score.Value) {
		t.Errorf("level %q inconsistent with value %d", score.Level, score.Value)
	}
}

func TestScoreNeutralFallbacksOnShortText(t *testing.T) {
	s := newTestScorer()

	score := s.Score("", 5)
	if score.Signals.Perplexity != 50 {
		t.Errorf("short text should sit at the neutral perplexity midpoint, got %d", score.Signals.Perplexity)
	}
	if score.Signals.Burstiness != 50 {
		t.Errorf("too few sentences should sit at the neutral burstiness midpoint, got %d", score.Signals.Burstiness)
	}
	if score.Signals.Fingerprint != 0 || score.Signals.Structure != 0 || score.Signals.HumanDeduction != 0 {
		t.Errorf("empty text should carry no positive signals: %+v", score.Signals)
	}
	if score.Value != 15 {
		t.Errorf("expected the weighted neutral midpoints to fuse to 15, got %d", score.Value)
	}
	if score.Level != models.RiskLow {
		t.Errorf("expected low, got %q", score.Level)
	}
}

func TestScoreWithStructureUsesProvidedReport(t *testing.T) {
	s := newTestScorer()
	report := models.StructureReport{Score: 100, Level: models.RiskHigh}

	score := s.ScoreWithStructure("", 5, report)
	if score.Signals.Structure != 100 {
		t.Fatalf("expected the provided structure score to pass through, got %d", score.Signals.Structure)
	}
	if score.Value != 65 {
		t.Errorf("expected fused value 65, got %d", score.Value)
	}
	if score.Level != models.RiskHigh {
		t.Errorf("expected high, got %q", score.Level)
	}
}

func TestLevelThresholds(t *testing.T) {
	tests := []struct {
		value int
		want  models.RiskLevel
	}{
		{0, models.RiskLow},
		{29, models.RiskLow},
		{30, models.RiskMedium},
		{59, models.RiskMedium},
		{60, models.RiskHigh},
		{100, models.RiskHigh},
	}
	for _, tt := range tests {
		if got := levelFor(tt.value); got != tt.want {
			t.Errorf("levelFor(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPerplexityProxy(t *testing.T) {
	if got := perplexityProxy("too short to compress"); got != 50 {
		t.Errorf("short text should be neutral, got %d", got)
	}

	repetitive := strings.Repeat("the same words again and again ", 40)
	natural := "The vendor shipped the wrong part on Tuesday, which stalled assembly for most of a shift. " +
		"By Thursday the replacement had cleared customs, though nobody could say why the paperwork " +
		"took three separate signatures. Production caught up over the weekend."

	rep := perplexityProxy(repetitive)
	nat := perplexityProxy(natural)
	if rep < 80 {
		t.Errorf("highly repetitive text should score high, got %d", rep)
	}
	if nat >= rep {
		t.Errorf("varied prose (%d) should score below repetitive prose (%d)", nat, rep)
	}
}

func TestBurstiness(t *testing.T) {
	if got := burstiness("One sentence. Two sentences."); got != 50 {
		t.Errorf("fewer than three sentences should be neutral, got %d", got)
	}

	uniform := strings.Repeat("The cat sat on the mat today. ", 6)
	if got := burstiness(uniform); got != 100 {
		t.Errorf("identical sentence lengths should score 100, got %d", got)
	}

	varied := "Yes. The quarterly report arrived late because the upstream vendor missed two deadlines in a row. " +
		"It happens. Nobody at the review meeting seemed surprised by the slippage, least of all the operations crew."
	if got := burstiness(varied); got >= 50 {
		t.Errorf("strongly varied sentence lengths should score low, got %d", got)
	}
}

func TestFingerprintScoreTiers(t *testing.T) {
	if got := fingerprintScore("a testament to progress", 0); got != tier2Penalty {
		t.Errorf("single tier-2 hit should score %d, got %d", tier2Penalty, got)
	}
	if got := fingerprintScore("my knowledge cutoff is fixed", 0); got != tier1Penalty {
		t.Errorf("single tier-1 hit should score %d, got %d", tier1Penalty, got)
	}
	if got := fingerprintScore(strings.Repeat("rich tapestry ", 10), 0); got != 100 {
		t.Errorf("stacked tier-1 hits should clamp at 100, got %d", got)
	}
	if got := fingerprintScore("nothing suspicious here", 0.1); got != 20 {
		t.Errorf("density alone should contribute %d, got %d", 20, got)
	}
}

func TestHumanDeductionRegisterGate(t *testing.T) {
	text := "I checked the logs myself and my notes show we repeated the run twice."

	if got := humanDeduction(text, 8); got != 3 {
		t.Errorf("casual register should count first person, got %d", got)
	}
	if got := humanDeduction(text, 2); got != 0 {
		t.Errorf("academic register should ignore first person, got %d", got)
	}
}

func TestHumanDeductionCaps(t *testing.T) {
	text := "It might rain. It may rain. Perhaps it could possibly clear, arguably, likely, probably. " +
		"I told me my we us our. " +
		"(Smith, 2020) (Jones, 2021) (Brown, 2019) (Davis, 2018)"

	if got := humanDeduction(text, 9); got != deductionCap {
		t.Errorf("stacked human markers should clamp at %d, got %d", deductionCap, got)
	}
}

func TestHumanDeductionReducesFusedScore(t *testing.T) {
	s := newTestScorer()
	base := strings.Repeat("The process utilizes a comprehensive framework to delve into the data. ", 8)
	hedged := base + "Perhaps the framework could arguably help, though it might not, and the results seem mixed (Smith, 2020)."

	plain := s.Score(base, 2)
	human := s.Score(hedged, 2)
	if human.Signals.HumanDeduction == 0 {
		t.Fatal("hedged text should earn a deduction")
	}
	if plain.Signals.HumanDeduction != 0 {
		t.Fatalf("plain text should earn no deduction, got %d", plain.Signals.HumanDeduction)
	}
}

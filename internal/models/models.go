package models

// MatchCategory classifies a catalog entry that produced a match.
type MatchCategory string

const (
	CategoryLexicalWord MatchCategory = "lexical_word"
	CategoryPhrase      MatchCategory = "phrase"
	CategoryConnector   MatchCategory = "connector"
)

// PatternMatch represents one positioned catalog hit in a document.
// Matches from a single detector pass never overlap and are sorted by
// StartOffset.
type PatternMatch struct {
	Text         string        `json:"text"`
	StartOffset  int           `json:"start_offset"`
	EndOffset    int           `json:"end_offset"`
	Weight       float64       `json:"weight"` // 0.0 to 1.0
	Category     MatchCategory `json:"category"`
	Replacements []string      `json:"replacements"` // most to least formal
}

// ProtectedCategory classifies a span that is exempt from rewriting.
type ProtectedCategory string

const (
	ProtectedWhitelistTerm      ProtectedCategory = "whitelist_term"
	ProtectedStatisticalPattern ProtectedCategory = "statistical_pattern"
	ProtectedCitation           ProtectedCategory = "citation"
	ProtectedQuotation          ProtectedCategory = "quotation"
)

// ProtectedTerm is a span of the original text that a rewrite must carry
// over verbatim.
type ProtectedTerm struct {
	Text     string            `json:"text"`
	Category ProtectedCategory `json:"category"`
}

// ParagraphRole describes the function a paragraph serves in the document.
type ParagraphRole string

const (
	RoleIntroduction ParagraphRole = "introduction"
	RoleBody         ParagraphRole = "body"
	RoleEvidence     ParagraphRole = "evidence"
	RoleAnalysis     ParagraphRole = "analysis"
	RoleTransition   ParagraphRole = "transition"
	RoleConclusion   ParagraphRole = "conclusion"
)

// ParagraphStats holds per-paragraph segmentation results.
type ParagraphStats struct {
	Index         int           `json:"index"`
	WordCount     int           `json:"word_count"`
	SentenceCount int           `json:"sentence_count"`
	FirstSentence string        `json:"first_sentence"`
	LastSentence  string        `json:"last_sentence"`
	Role          ParagraphRole `json:"role"`
}

// StructuralIndicator is one of the seven fixed risk-card indicators.
type StructuralIndicator struct {
	ID        string `json:"id"`
	Triggered bool   `json:"triggered"`
	RiskLevel int    `json:"risk_level"` // 1 to 3, 3 is most severe
}

// Risk card indicator IDs. Exactly these seven are always produced,
// in this order.
const (
	IndicatorSymmetry            = "symmetry"
	IndicatorUniformFunction     = "uniform_function"
	IndicatorConnectorDependence = "explicit_connector_dependence"
	IndicatorLinearEnumeration   = "linear_enumeration"
	IndicatorRhythmicRegularity  = "rhythmic_regularity"
	IndicatorOverConclusive      = "over_conclusive_ending"
	IndicatorMissingCrossRef     = "missing_cross_reference"
)

// RiskLevel buckets a numeric score into a 3-level label.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskCard is the fixed 7-indicator summary of structural AI-likeness.
type RiskCard struct {
	Indicators []StructuralIndicator `json:"indicators"`
	Overall    RiskLevel             `json:"overall"`
}

// StructureReport is the full output of the structural analyzer.
type StructureReport struct {
	Score            int              `json:"score"` // 0 to 100
	Level            RiskLevel        `json:"level"`
	Insufficient     bool             `json:"insufficient"` // fewer than 2 usable paragraphs
	Paragraphs       []ParagraphStats `json:"paragraphs"`
	ExpandCandidates []int            `json:"expand_candidates"` // paragraph indices worth expanding
	Card             RiskCard         `json:"card"`
}

// RiskScore is the fused authorship-risk score for a document.
type RiskScore struct {
	Value   int         `json:"value"` // 0 to 100
	Level   RiskLevel   `json:"level"`
	Signals RiskSignals `json:"signals"`
}

// RiskSignals carries the unweighted 0-100 sub-scores behind a RiskScore
// so callers can explain the fused value.
type RiskSignals struct {
	Perplexity     int `json:"perplexity"`
	Fingerprint    int `json:"fingerprint"`
	Burstiness     int `json:"burstiness"`
	Structure      int `json:"structure"`
	HumanDeduction int `json:"human_deduction"` // subtracted from the fused score
}

// GateAction is the decision the suggestion gate hands back to the caller.
type GateAction string

const (
	ActionAccept               GateAction = "accept"
	ActionRetryWithRule        GateAction = "retry_with_rule"
	ActionRetryStronger        GateAction = "retry_stronger"
	ActionRetryWithoutP0       GateAction = "retry_without_p0"
	ActionRetryWithoutPronouns GateAction = "retry_without_pronouns"
	ActionFlagManual           GateAction = "flag_manual"
	ActionReject               GateAction = "reject"
)

// CheckResult records the outcome of one gate check.
type CheckResult struct {
	Name    string  `json:"name"`
	Passed  bool    `json:"passed"`
	Score   float64 `json:"score,omitempty"` // check-specific metric, if any
	Detail  string  `json:"detail,omitempty"`
	Warning bool    `json:"warning,omitempty"` // passed, but with a caveat
}

// GateVerdict is the full accept/retry/escalate decision for one candidate
// rewrite. Action is a pure function of which checks failed, so identical
// inputs always produce identical verdicts.
type GateVerdict struct {
	Passed  bool          `json:"passed"`
	Action  GateAction    `json:"action"`
	Checks  []CheckResult `json:"checks"`
	Rewrite RiskScore     `json:"rewrite_score"`
}

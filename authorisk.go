// Package authorisk is a deterministic document authorship-risk engine.
// It scans text for lexical and structural patterns statistically
// associated with machine-generated prose, fuses several independent
// signals into one bounded risk score, and gatekeeps drafted rewrites
// before they reach a user.
//
// The engine is a library, not a service: every input and output is an
// in-memory value for one call, and all operations are pure and safe for
// unbounded concurrent use. The only process-wide state is the read-only
// pattern catalog, which hot-reloads through an atomic swap.
package authorisk

import (
	"io"
	"log/slog"

	"github.com/draftwatch/authorisk/internal/catalog"
	"github.com/draftwatch/authorisk/internal/detector"
	"github.com/draftwatch/authorisk/internal/gate"
	"github.com/draftwatch/authorisk/internal/models"
	"github.com/draftwatch/authorisk/internal/scorer"
	"github.com/draftwatch/authorisk/internal/structure"
)

// Result types, re-exported so callers never import internal packages.
type (
	PatternMatch        = models.PatternMatch
	ProtectedTerm       = models.ProtectedTerm
	ParagraphStats      = models.ParagraphStats
	StructuralIndicator = models.StructuralIndicator
	StructureReport     = models.StructureReport
	RiskCard            = models.RiskCard
	RiskScore           = models.RiskScore
	RiskSignals         = models.RiskSignals
	CheckResult         = models.CheckResult
	GateVerdict         = models.GateVerdict
	RiskLevel           = models.RiskLevel
	GateAction          = models.GateAction
)

// Risk levels.
const (
	RiskLow    = models.RiskLow
	RiskMedium = models.RiskMedium
	RiskHigh   = models.RiskHigh
)

// Gate actions.
const (
	ActionAccept               = models.ActionAccept
	ActionRetryWithRule        = models.ActionRetryWithRule
	ActionRetryStronger        = models.ActionRetryStronger
	ActionRetryWithoutP0       = models.ActionRetryWithoutP0
	ActionRetryWithoutPronouns = models.ActionRetryWithoutPronouns
	ActionFlagManual           = models.ActionFlagManual
	ActionReject               = models.ActionReject
)

// GateOptions carries optional per-evaluation inputs for EvaluateRewrite.
type GateOptions = gate.Options

// Engine bundles the detector, structural analyzer, risk scorer, and
// suggestion gate over one shared catalog store.
type Engine struct {
	store     *catalog.Store
	detector  *detector.Detector
	structure *structure.Analyzer
	scorer    *scorer.Scorer
	gate      *gate.Gate
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	weights  *scorer.Weights
	gateCfg  *gate.Config
	override io.Reader
}

// WithLogger sets the logger used for catalog-load warnings. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithWeights overrides the score-fusion weights.
func WithWeights(w scorer.Weights) Option {
	return func(c *config) { c.weights = &w }
}

// WithGateConfig overrides the suggestion-gate thresholds.
func WithGateConfig(cfg gate.Config) Option {
	return func(c *config) { c.gateCfg = &cfg }
}

// WithCatalogOverride merges a YAML override document (sections words,
// phrases, connectors) over the built-in catalogs at construction.
// A malformed override is logged and the built-ins are used instead.
func WithCatalogOverride(r io.Reader) Option {
	return func(c *config) { c.override = r }
}

// ScoreWeights re-exports the fusion weight table for WithWeights.
type ScoreWeights = scorer.Weights

// GateConfig re-exports the gate threshold table for WithGateConfig.
type GateConfig = gate.Config

// New builds an Engine. New never fails on catalog problems; a bad
// override falls back to the built-in catalog with a logged warning.
func New(opts ...Option) *Engine {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	store := catalog.NewStore(cfg.logger)
	if cfg.override != nil {
		// Errors are logged inside Reload; the store always ends up
		// with a usable catalog.
		_ = store.Reload(cfg.override)
	}

	det := detector.New(store)
	analyzer := structure.New()

	var sc *scorer.Scorer
	if cfg.weights != nil {
		sc = scorer.NewWithWeights(det, analyzer, *cfg.weights)
	} else {
		sc = scorer.New(det, analyzer)
	}

	var gt *gate.Gate
	if cfg.gateCfg != nil {
		gt = gate.NewWithConfig(sc, *cfg.gateCfg)
	} else {
		gt = gate.New(sc)
	}

	return &Engine{
		store:     store,
		detector:  det,
		structure: analyzer,
		scorer:    sc,
		gate:      gt,
		logger:    cfg.logger,
	}
}

// Scan returns every catalog hit in text, non-overlapping and sorted by
// start offset.
func (e *Engine) Scan(text string) []PatternMatch {
	return e.detector.Scan(text)
}

// Density returns the weighted match mass per word for text, in [0,1].
func (e *Engine) Density(text string) float64 {
	return detector.Density(text, e.detector.Scan(text))
}

// AnalyzeStructure segments text and evaluates the structural
// indicators, returning the structure score and risk card.
func (e *Engine) AnalyzeStructure(text string) StructureReport {
	return e.structure.Analyze(text)
}

// Score fuses every signal into the 0-100 authorship-risk score. The
// register (academic 0 to casual 10) only affects the human-feature
// deduction.
func (e *Engine) Score(text string, register int) RiskScore {
	return e.scorer.Score(text, register)
}

// IdentifyProtected finds the protected spans of text: whitelisted
// terms, citations, quotations, and statistic shapes, deduplicated to
// the longer, earliest span on overlap.
func (e *Engine) IdentifyProtected(text string, whitelist []string) []ProtectedTerm {
	return gate.IdentifyProtected(text, whitelist)
}

// EvaluateRewrite validates a candidate rewrite against the original and
// returns the accept/retry/escalate verdict.
func (e *Engine) EvaluateRewrite(original, candidate string, terms []ProtectedTerm, register int, opts GateOptions) GateVerdict {
	return e.gate.Evaluate(original, candidate, terms, register, opts)
}

// Reload merges a new override document over the built-in catalogs and
// swaps it in atomically; in-flight calls keep the snapshot they
// started with. A malformed override is logged, leaves the built-in
// catalog active, and is reported back to the caller.
func (e *Engine) Reload(override io.Reader) error {
	return e.store.Reload(override)
}

// Package gate validates a candidate rewrite against the original
// document before it reaches a user. The gate never raises policy
// outcomes as errors: term loss, citation drift, blocklist hits, and
// register violations are all verdict values the caller branches on.
package gate

import (
	"fmt"

	"github.com/draftwatch/authorisk/internal/models"
	"github.com/draftwatch/authorisk/internal/scorer"
)

// Config tunes the gate thresholds. Zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// SimilarityThreshold is the accept floor for the semantic
	// similarity estimate.
	SimilarityThreshold float64
	// CitationSimilarityThreshold replaces SimilarityThreshold when the
	// original carries citations.
	CitationSimilarityThreshold float64
	// SimilarityFloor is the point below which a rewrite is too far gone
	// to retry mechanically and goes to manual review.
	SimilarityFloor float64
	// RiskTarget is the score a rewrite is expected to reach.
	RiskTarget int
	// ResidualLimit is the score up to which a rewrite that missed the
	// target is still accepted with a warning.
	ResidualLimit int
	// AcademicRegisterMax is the register level below which the
	// first-person pronoun policy applies. The register scale runs
	// academic 0 to casual 10.
	AcademicRegisterMax int
}

// DefaultConfig returns the tuned gate thresholds.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold:         0.80,
		CitationSimilarityThreshold: 0.95,
		SimilarityFloor:             0.70,
		RiskTarget:                  40,
		ResidualLimit:               60,
		AcademicRegisterMax:         5,
	}
}

// Options carries optional per-evaluation inputs.
type Options struct {
	// ExternalSimilarity, if set, replaces the built-in similarity
	// estimator with a collaborator-supplied score.
	ExternalSimilarity *float64
}

// Gate evaluates candidate rewrites. Stateless beyond its read-only
// collaborators; safe for concurrent use.
type Gate struct {
	scorer *scorer.Scorer
	cfg    Config
}

// New creates a Gate with default thresholds.
func New(s *scorer.Scorer) *Gate {
	return NewWithConfig(s, DefaultConfig())
}

// NewWithConfig creates a Gate with explicit thresholds.
func NewWithConfig(s *scorer.Scorer, cfg Config) *Gate {
	return &Gate{scorer: s, cfg: cfg}
}

// Evaluate runs the full check pipeline on a candidate rewrite and
// returns the accept/retry/escalate verdict. The action is a pure
// function of which checks failed; identical inputs always yield
// identical verdicts.
//
// Two policy gatekeepers run before any scoring: a P0 blocklist hit
// forces retry_without_p0 regardless of every other signal, and for
// registers below the academic threshold any first-person pronoun forces
// retry_without_pronouns.
func (g *Gate) Evaluate(original, candidate string, terms []models.ProtectedTerm, register int, opts Options) models.GateVerdict {
	if t := findP0Term(candidate); t != "" {
		return models.GateVerdict{
			Action: models.ActionRetryWithoutP0,
			Checks: []models.CheckResult{{
				Name:   "p0_blocklist",
				Passed: false,
				Detail: fmt.Sprintf("blocklist term present: %q", t),
			}},
		}
	}
	if register < g.cfg.AcademicRegisterMax {
		if p := findFirstPerson(candidate); p != "" {
			return models.GateVerdict{
				Action: models.ActionRetryWithoutPronouns,
				Checks: []models.CheckResult{{
					Name:   "pronoun_policy",
					Passed: false,
					Detail: fmt.Sprintf("first-person pronoun %q disallowed at register %d", p, register),
				}},
			}
		}
	}

	simCheck := g.checkSemanticSimilarity(original, candidate, opts.ExternalSimilarity)
	termCheck, lost := checkProtectedTerms(candidate, terms)
	citeCheck, changed := checkCitationIntegrity(original, candidate, terms)

	rewriteScore := g.scorer.Score(candidate, register)
	riskCheck := models.CheckResult{
		Name:   checkRiskScore,
		Score:  float64(rewriteScore.Value),
		Passed: rewriteScore.Value <= g.cfg.RiskTarget,
	}
	if !riskCheck.Passed && rewriteScore.Value <= g.cfg.ResidualLimit {
		riskCheck.Passed = true
		riskCheck.Warning = true
		riskCheck.Detail = fmt.Sprintf("residual risk %d above target %d, accepted with warning",
			rewriteScore.Value, g.cfg.RiskTarget)
	} else if !riskCheck.Passed {
		riskCheck.Detail = fmt.Sprintf("risk %d exceeds residual limit %d", rewriteScore.Value, g.cfg.ResidualLimit)
	}

	verdict := models.GateVerdict{
		Checks:  []models.CheckResult{simCheck, termCheck, citeCheck, riskCheck},
		Rewrite: rewriteScore,
	}

	// Action priority, first match wins. Term loss outranks everything:
	// a rewrite that silently drops protected content must reach a
	// human even when its citations are also broken.
	switch {
	case len(lost) > 0:
		verdict.Action = models.ActionFlagManual
	case len(changed) > 0:
		verdict.Action = models.ActionReject
	case !simCheck.Passed && simCheck.Score < g.cfg.SimilarityFloor:
		verdict.Action = models.ActionFlagManual
	case !simCheck.Passed:
		verdict.Action = models.ActionRetryWithRule
	case !riskCheck.Passed:
		verdict.Action = models.ActionRetryStronger
	default:
		// A residual-risk warning travels on the check result; the
		// verdict still passes.
		verdict.Action = models.ActionAccept
		verdict.Passed = true
	}
	return verdict
}

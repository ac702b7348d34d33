package authorisk

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(opts...)
}

func TestEngineScanFormulaicSentence(t *testing.T) {
	e := newTestEngine()
	text := "The study utilizes a comprehensive framework to delve into the dataset."

	matches := e.Scan(text)
	require.GreaterOrEqual(t, len(matches), 3)
	for _, m := range matches {
		assert.Equal(t, strings.ToLower(text[m.StartOffset:m.EndOffset]), strings.ToLower(m.Text))
		assert.NotEmpty(t, m.Replacements)
	}
	assert.Greater(t, e.Density(text), 0.05)
}

func TestEngineScoreBounds(t *testing.T) {
	e := newTestEngine()

	for _, text := range []string{
		"",
		"Short note.",
		strings.Repeat("rich tapestry. ", 5000),
	} {
		score := e.Score(text, 5)
		assert.GreaterOrEqual(t, score.Value, 0)
		assert.LessOrEqual(t, score.Value, 100)
		assert.NotEmpty(t, score.Level)
	}
}

func TestEngineAnalyzeStructure(t *testing.T) {
	e := newTestEngine()

	report := e.AnalyzeStructure("one short fragment")
	assert.True(t, report.Insufficient)
	assert.Zero(t, report.Score)
	assert.Len(t, report.Card.Indicators, 7)

	var blocks []string
	for i := 0; i < 5; i++ {
		blocks = append(blocks, strings.TrimSpace(strings.Repeat("every paragraph carries the same measured cadence and weight here ", 5))+".")
	}
	report = e.AnalyzeStructure(strings.Join(blocks, "\n\n"))
	assert.False(t, report.Insufficient)
	assert.Greater(t, report.Score, 0)
}

func TestEngineEvaluateRewrite(t *testing.T) {
	e := newTestEngine()
	original := "Prior work established the effect (Smith, 2020) under controlled settings."

	reject := e.EvaluateRewrite(original, "Prior work established the effect, as Smith (2020) showed, under controlled settings.", nil, 5, GateOptions{})
	assert.Equal(t, ActionReject, reject.Action)

	accept := e.EvaluateRewrite(original, original, nil, 5, GateOptions{})
	assert.Equal(t, ActionAccept, accept.Action)
	assert.True(t, accept.Passed)
}

func TestEngineIdentifyProtected(t *testing.T) {
	e := newTestEngine()
	terms := e.IdentifyProtected("The cohort covered 1,500 participants (Lee, 2023).", []string{"cohort"})

	require.Len(t, terms, 3)
	assert.Equal(t, "cohort", terms[0].Text)
	assert.Equal(t, "1,500 participants", terms[1].Text)
	assert.Equal(t, "(Lee, 2023)", terms[2].Text)
}

func TestEngineCatalogOverride(t *testing.T) {
	override := `words:
  blorptastic:
    weight: 0.9
    replacements: ["plain"]
`
	e := newTestEngine(WithCatalogOverride(strings.NewReader(override)))

	matches := e.Scan("This is a blorptastic result.")
	require.Len(t, matches, 1)
	assert.Equal(t, "blorptastic", strings.ToLower(matches[0].Text))
}

func TestEngineReloadMalformedKeepsWorking(t *testing.T) {
	e := newTestEngine()

	err := e.Reload(strings.NewReader("words: [not, a, map]"))
	require.Error(t, err)

	matches := e.Scan("We should utilize the comprehensive report.")
	assert.NotEmpty(t, matches)
}

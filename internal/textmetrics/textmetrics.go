// Package textmetrics provides the small distributional helpers shared by
// the structural analyzer and the risk scorer. Everything here is pure and
// deterministic.
package textmetrics

import (
	"math"
	"regexp"
	"strings"
)

var (
	wordRe     = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?`)
	sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+|[^.!?]+$`)
)

// Words returns the alphabetic boundary tokens of text, lower-cased.
// Numbers and punctuation runs are not words.
func Words(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// WordCount counts alphabetic boundary tokens only.
func WordCount(text string) int {
	return len(wordRe.FindAllString(text, -1))
}

// Sentences splits text into sentences on terminal punctuation, keeping
// the terminator with the sentence. Trailing text without a terminator
// counts as a sentence.
func Sentences(text string) []string {
	parts := sentenceRe.FindAllString(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Paragraphs splits text on blank-line boundaries and trims each block.
// Empty blocks are dropped.
func Paragraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	blocks := regexp.MustCompile(`\n\s*\n`).Split(normalized, -1)
	paragraphs := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b != "" {
			paragraphs = append(paragraphs, b)
		}
	}
	return paragraphs
}

// CoefficientOfVariation returns stdev/mean for a sequence of lengths.
// Fewer than 2 samples or a zero mean yields 0.
func CoefficientOfVariation(lengths []int) float64 {
	if len(lengths) < 2 {
		return 0
	}
	sum := 0
	for _, l := range lengths {
		sum += l
	}
	mean := float64(sum) / float64(len(lengths))
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, l := range lengths {
		d := float64(l) - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	return math.Sqrt(variance) / mean
}

// ContentWordSet returns the lower-cased alphabetic tokens of length >= 4
// with stop words removed. Used for paragraph-to-paragraph lexical-echo
// comparison.
func ContentWordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range Words(text) {
		if len(w) >= 4 && !stopWords[w] {
			set[w] = true
		}
	}
	return set
}

// SharedContentWord reports whether two texts share at least one content word.
func SharedContentWord(a, b string) bool {
	setA := ContentWordSet(a)
	for w := range ContentWordSet(b) {
		if setA[w] {
			return true
		}
	}
	return false
}

package gate

import (
	"strings"

	"github.com/draftwatch/authorisk/internal/textmetrics"
)

// p0Blocklist holds the highest-severity terms. Their presence in a
// rewrite is a policy violation on its own, independent of any numeric
// score; the drafting collaborator must retry with these terms excluded.
var p0Blocklist = []string{
	"as an ai",
	"as a language model",
	"as a large language model",
	"i cannot assist",
	"i'm unable to",
	"i am unable to",
	"my knowledge cutoff",
	"my training data",
	"i hope this helps",
	"regenerate response",
	"certainly! here",
	"here is the rewritten",
	"here's the rewritten",
}

// firstPersonPronouns trip the pronoun policy in academic registers.
var firstPersonPronouns = map[string]bool{
	"i": true, "me": true, "my": true, "mine": true,
	"we": true, "us": true, "our": true, "ours": true,
}

// findP0Term returns the first blocklist hit in the candidate, or "".
func findP0Term(candidate string) string {
	lower := strings.ToLower(candidate)
	for _, t := range p0Blocklist {
		if strings.Contains(lower, t) {
			return t
		}
	}
	return ""
}

// findFirstPerson returns the first first-person pronoun token in the
// candidate, or "".
func findFirstPerson(candidate string) string {
	for _, w := range textmetrics.Words(candidate) {
		if firstPersonPronouns[w] {
			return w
		}
	}
	return ""
}

package scorer

// Fingerprint tiers. Tier-1 terms are dead giveaways: a single occurrence
// is strong evidence on its own. Tier-2 terms are habitual phrases that
// only matter in aggregate.

var tier1Fingerprints = []string{
	"as an ai language model",
	"as a large language model",
	"as an ai assistant",
	"i don't have personal opinions",
	"i cannot browse the internet",
	"my knowledge cutoff",
	"my training data",
	"i hope this helps",
	"in today's fast-paced world",
	"in the ever-evolving landscape",
	"rich tapestry",
	"delve into the intricacies",
	"let's dive in",
	"buckle up",
}

var tier2Fingerprints = []string{
	"it's important to note",
	"it is important to note",
	"it's worth noting",
	"delve into",
	"navigating the complexities",
	"plays a crucial role",
	"a testament to",
	"in the realm of",
	"cannot be overstated",
	"at the end of the day",
	"when it comes to",
	"in conclusion",
	"to summarize",
	"first and foremost",
	"game changer",
	"paves the way",
	"sheds light on",
	"a wide array of",
	"seamlessly integrates",
}

// Hedging words whose variety marks human writing. Shared meaning with the
// structural closure table, but the scorer counts distinct forms, not
// occurrences.
var hedgeForms = []string{
	"might", "may", "perhaps", "possibly", "could", "arguably",
	"seems", "seemed", "appears", "appeared", "suggests", "suggested",
	"likely", "probably", "somewhat", "roughly", "presumably",
	"i think", "i suspect", "i'd guess", "to my mind", "in my experience",
}

// First-person pronouns counted for the human-feature deduction.
var firstPersonForms = []string{
	"i", "me", "my", "mine", "we", "us", "our", "ours",
}

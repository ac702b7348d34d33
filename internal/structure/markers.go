package structure

// Fixed phrase tables used by the structural heuristics. These are marker
// inventories, not risk catalogs; they carry no weights and are never
// extended by catalog overrides.

// forwardMarkers push the reader onward without looking back.
var forwardMarkers = []string{
	"next", "then", "following this", "building on this", "moving on",
	"subsequently", "from here", "with this in mind", "this leads to",
	"turning to", "we now turn",
}

// backwardMarkers refer to earlier material.
var backwardMarkers = []string{
	"as mentioned", "as discussed", "as noted", "as shown earlier",
	"earlier", "previously", "recall that", "returning to",
	"as we saw", "the aforementioned", "mentioned above",
}

// conditionalMarkers qualify or complicate the argument.
var conditionalMarkers = []string{
	"however", "although", "unless", "on the other hand", "conversely",
	"that said", "despite this", "even so", "by contrast", "whereas",
}

// ordinalMarkers enumerate a strict sequence.
var ordinalMarkers = []string{
	"first", "firstly", "second", "secondly", "third", "thirdly",
	"next", "then", "finally", "lastly",
}

// formulaicClosers open a stock conclusion.
var formulaicClosers = []string{
	"in conclusion", "in summary", "to conclude", "to summarize",
	"to sum up", "in closing", "overall", "ultimately", "all in all",
	"in essence", "taken together",
}

// openEndings leave the argument unresolved, a human habit.
var openEndings = []string{
	"remains to be seen", "remains unclear", "further research",
	"further work", "open question", "yet to be", "time will tell",
	"worth asking", "remains an open",
}

// hedgingWords soften a claim.
var hedgingWords = []string{
	"might", "may", "perhaps", "possibly", "could", "arguably",
	"seems", "appears", "suggests", "likely", "probably", "somewhat",
	"tends", "presumably", "roughly",
}

// crossRefMarkers call back to an earlier concept anywhere in the document.
var crossRefMarkers = []string{
	"as mentioned above", "as discussed earlier", "as noted earlier",
	"as we saw", "as shown above", "recall that", "returning to",
	"the aforementioned", "this echoes", "as outlined earlier",
	"described earlier", "noted previously", "see above",
}

// openingConnectors are the explicit connectors a paragraph can lean on
// instead of a lexical bridge to the previous paragraph.
var openingConnectors = []string{
	"furthermore", "moreover", "additionally", "in addition",
	"consequently", "therefore", "thus", "hence", "however",
	"nevertheless", "nonetheless", "similarly", "likewise",
	"subsequently", "finally", "firstly", "secondly", "thirdly",
	"next", "also", "besides", "meanwhile", "overall", "ultimately",
	"in conclusion", "in summary", "on the other hand", "as a result",
	"first", "second", "third", "lastly",
}

// Role keyword tables for paragraph classification. The first hit in this
// order wins; paragraphs with no hit default to body.

var conclusionKeywords = []string{
	"in conclusion", "to conclude", "in summary", "to summarize",
	"in closing", "taken together", "all in all",
}

var introductionKeywords = []string{
	"this essay", "this paper", "this article", "this report",
	"will discuss", "will examine", "will explore", "will argue",
	"aims to", "sets out to", "the following sections",
}

var evidenceKeywords = []string{
	"according to", "the study", "the data", "the survey", "found that",
	"reported that", "the results", "the findings", "for example",
	"for instance", "statistics", "percent", "respondents",
}

var analysisKeywords = []string{
	"this suggests", "this indicates", "this implies", "this shows",
	"this means", "which suggests", "which indicates", "the implication",
	"in other words", "what this tells",
}

var transitionKeywords = []string{
	"turning to", "moving on", "we now turn", "before addressing",
	"having established", "with this in mind",
}

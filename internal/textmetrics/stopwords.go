package textmetrics

// stopWords are common English function words excluded from content-word
// comparison.
var stopWords = buildStopWords()

func buildStopWords() map[string]bool {
	words := []string{
		"about", "above", "after", "again", "against", "all", "and", "any", "are", "aren't",
		"because", "been", "before", "being", "below", "between", "both", "but",
		"can't", "cannot", "could", "couldn't", "did", "didn't", "does", "doesn't", "doing", "don't",
		"down", "during", "each", "few", "for", "from", "further", "had", "hadn't", "has", "hasn't", "have",
		"haven't", "having", "he'd", "he'll", "he's", "her", "here", "here's", "hers", "herself", "him",
		"himself", "his", "how", "how's", "i'd", "i'll", "i'm", "i've", "into", "isn't",
		"it's", "its", "itself", "let's", "more", "most", "mustn't", "myself",
		"not", "off", "once", "only", "other", "ought", "our", "ours", "ourselves", "out",
		"over", "own", "same", "shan't", "she", "she'd", "she'll", "she's", "should", "shouldn't", "some",
		"such", "than", "that", "that's", "the", "their", "theirs", "them", "themselves", "then", "there",
		"there's", "these", "they", "they'd", "they'll", "they're", "they've", "this", "those", "through",
		"too", "under", "until", "very", "was", "wasn't", "we'd", "we'll", "we're", "we've", "were",
		"weren't", "what", "what's", "when", "when's", "where", "where's", "which", "while", "who", "who's",
		"whom", "why", "why's", "with", "won't", "would", "wouldn't", "you'd", "you'll", "you're",
		"you've", "your", "yours", "yourself", "yourselves",
	}

	stopWords := make(map[string]bool)
	for _, word := range words {
		stopWords[word] = true
	}
	return stopWords
}

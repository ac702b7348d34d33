package catalog

// Built-in pattern tables. Weights reflect how strongly a pattern is
// over-represented in machine-generated prose relative to human baselines;
// replacements are ordered most to least formal.

func builtinWords() map[string]Entry {
	return map[string]Entry{
		"utilize":        {Weight: 0.50, Replacements: []string{"employ", "use"}},
		"leverage":       {Weight: 0.55, Replacements: []string{"draw on", "use"}},
		"facilitate":     {Weight: 0.45, Replacements: []string{"enable", "help"}},
		"comprehensive":  {Weight: 0.60, Replacements: []string{"thorough", "broad", "full"}},
		"crucial":        {Weight: 0.50, Replacements: []string{"essential", "key"}},
		"pivotal":        {Weight: 0.55, Replacements: []string{"decisive", "central"}},
		"robust":         {Weight: 0.45, Replacements: []string{"resilient", "sturdy", "solid"}},
		"seamless":       {Weight: 0.60, Replacements: []string{"uninterrupted", "smooth"}},
		"seamlessly":     {Weight: 0.60, Replacements: []string{"without interruption", "smoothly"}},
		"holistic":       {Weight: 0.55, Replacements: []string{"integrated", "whole-system"}},
		"myriad":         {Weight: 0.60, Replacements: []string{"a great many", "countless", "many"}},
		"plethora":       {Weight: 0.65, Replacements: []string{"an abundance of", "plenty of", "a lot of"}},
		"foster":         {Weight: 0.45, Replacements: []string{"cultivate", "encourage"}},
		"underscore":     {Weight: 0.50, Replacements: []string{"emphasize", "highlight", "stress"}},
		"streamline":     {Weight: 0.50, Replacements: []string{"rationalize", "simplify"}},
		"elevate":        {Weight: 0.45, Replacements: []string{"raise", "improve"}},
		"showcase":       {Weight: 0.45, Replacements: []string{"exhibit", "show"}},
		"multifaceted":   {Weight: 0.60, Replacements: []string{"many-sided", "complex"}},
		"intricate":      {Weight: 0.45, Replacements: []string{"elaborate", "detailed"}},
		"paramount":      {Weight: 0.55, Replacements: []string{"of highest importance", "most important"}},
		"unprecedented":  {Weight: 0.50, Replacements: []string{"without precedent", "never seen before"}},
		"transformative": {Weight: 0.55, Replacements: []string{"far-reaching", "major"}},
		"groundbreaking": {Weight: 0.55, Replacements: []string{"pioneering", "new"}},
		"invaluable":     {Weight: 0.50, Replacements: []string{"indispensable", "very useful"}},
		"meticulous":     {Weight: 0.50, Replacements: []string{"scrupulous", "careful"}},
		"meticulously":   {Weight: 0.50, Replacements: []string{"scrupulously", "carefully"}},
		"commendable":    {Weight: 0.55, Replacements: []string{"praiseworthy", "good"}},
		"noteworthy":     {Weight: 0.50, Replacements: []string{"notable", "worth mentioning"}},
		"embark":         {Weight: 0.50, Replacements: []string{"undertake", "begin", "start"}},
		"unveil":         {Weight: 0.50, Replacements: []string{"disclose", "reveal", "show"}},
		"harness":        {Weight: 0.50, Replacements: []string{"channel", "use"}},
		"bolster":        {Weight: 0.45, Replacements: []string{"reinforce", "support", "boost"}},
		"garner":         {Weight: 0.50, Replacements: []string{"accrue", "gather", "get"}},
		"spearhead":      {Weight: 0.55, Replacements: []string{"direct", "lead"}},
		"exemplify":      {Weight: 0.50, Replacements: []string{"typify", "illustrate", "show"}},
		"encompass":      {Weight: 0.45, Replacements: []string{"comprise", "include", "cover"}},
		"culminate":      {Weight: 0.50, Replacements: []string{"conclude", "end"}},
		"vibrant":        {Weight: 0.45, Replacements: []string{"dynamic", "lively"}},
		"bustling":       {Weight: 0.50, Replacements: []string{"animated", "busy"}},
		"tapestry":       {Weight: 0.65, Replacements: []string{"mosaic", "mix"}},
		"synergy":        {Weight: 0.55, Replacements: []string{"combined effect", "cooperation"}},
		"paradigm":       {Weight: 0.50, Replacements: []string{"model", "pattern"}},
		"optimal":        {Weight: 0.40, Replacements: []string{"most favorable", "best"}},
		"profound":       {Weight: 0.40, Replacements: []string{"far-reaching", "deep"}},
		"notably":        {Weight: 0.40, Replacements: []string{"in particular", "especially"}},
		"arguably":       {Weight: 0.40, Replacements: []string{"one could argue", "perhaps"}},
	}
}

func builtinPhrases() map[string]Entry {
	return map[string]Entry{
		"delve into":                     {Weight: 0.90, Replacements: []string{"examine", "explore", "look at"}},
		"delves into":                    {Weight: 0.90, Replacements: []string{"examines", "explores", "looks at"}},
		"delving into":                   {Weight: 0.90, Replacements: []string{"examining", "exploring", "looking at"}},
		"it is important to note":        {Weight: 0.85, Replacements: []string{"significantly", "note that", "notably"}},
		"it is worth noting":             {Weight: 0.80, Replacements: []string{"of note", "notably"}},
		"it should be noted":             {Weight: 0.80, Replacements: []string{"note that", "notably"}},
		"plays a crucial role":           {Weight: 0.85, Replacements: []string{"is central to", "matters for"}},
		"plays a vital role":             {Weight: 0.85, Replacements: []string{"is essential to", "matters for"}},
		"plays a significant role":       {Weight: 0.80, Replacements: []string{"is important to", "matters for"}},
		"in today's fast-paced world":    {Weight: 0.95, Replacements: []string{"in the current climate", "today"}},
		"in the realm of":                {Weight: 0.80, Replacements: []string{"within", "in"}},
		"in the ever-evolving landscape": {Weight: 0.95, Replacements: []string{"as conditions change", "as things change"}},
		"a testament to":                 {Weight: 0.85, Replacements: []string{"evidence of", "proof of"}},
		"navigate the complexities":      {Weight: 0.90, Replacements: []string{"manage the difficulties", "handle the details"}},
		"at the forefront of":            {Weight: 0.75, Replacements: []string{"leading", "ahead in"}},
		"paves the way for":              {Weight: 0.80, Replacements: []string{"prepares the ground for", "leads to"}},
		"sheds light on":                 {Weight: 0.75, Replacements: []string{"clarifies", "explains"}},
		"a wide range of":                {Weight: 0.60, Replacements: []string{"a broad spectrum of", "many"}},
		"a myriad of":                    {Weight: 0.80, Replacements: []string{"a multitude of", "many"}},
		"a plethora of":                  {Weight: 0.80, Replacements: []string{"an abundance of", "plenty of"}},
		"when it comes to":               {Weight: 0.60, Replacements: []string{"regarding", "for"}},
		"in order to":                    {Weight: 0.45, Replacements: []string{"so as to", "to"}},
		"due to the fact that":           {Weight: 0.70, Replacements: []string{"owing to", "because"}},
		"in light of":                    {Weight: 0.55, Replacements: []string{"considering", "given"}},
		"serves as a":                    {Weight: 0.60, Replacements: []string{"functions as a", "is a"}},
		"is essential to understand":     {Weight: 0.75, Replacements: []string{"matters because", "note that"}},
		"cannot be overstated":           {Weight: 0.85, Replacements: []string{"is considerable", "is substantial"}},
		"stands as a":                    {Weight: 0.70, Replacements: []string{"represents a", "is a"}},
		"rich tapestry of":               {Weight: 0.90, Replacements: []string{"diverse mix of", "variety of"}},
		"treasure trove of":              {Weight: 0.85, Replacements: []string{"wealth of", "lots of"}},
		"game changer":                   {Weight: 0.75, Replacements: []string{"decisive development", "big change"}},
		"double-edged sword":             {Weight: 0.75, Replacements: []string{"mixed blessing", "trade-off"}},
		"uncharted territory":            {Weight: 0.75, Replacements: []string{"unexplored ground", "new ground"}},
	}
}

func builtinConnectors() map[string]Entry {
	return map[string]Entry{
		"furthermore":        {Weight: 0.45, Replacements: []string{"in addition", "also"}},
		"moreover":           {Weight: 0.45, Replacements: []string{"in addition", "besides"}},
		"additionally":       {Weight: 0.40, Replacements: []string{"in addition", "also"}},
		"consequently":       {Weight: 0.40, Replacements: []string{"as a result", "so"}},
		"subsequently":       {Weight: 0.40, Replacements: []string{"thereafter", "later"}},
		"nevertheless":       {Weight: 0.35, Replacements: []string{"even so", "still"}},
		"nonetheless":        {Weight: 0.35, Replacements: []string{"even so", "still"}},
		"hence":              {Weight: 0.35, Replacements: []string{"therefore", "so"}},
		"thus":               {Weight: 0.30, Replacements: []string{"therefore", "so"}},
		"therefore":          {Weight: 0.25, Replacements: []string{"as a result", "so"}},
		"ultimately":         {Weight: 0.35, Replacements: []string{"in the end", "finally"}},
		"overall":            {Weight: 0.30, Replacements: []string{"on the whole", "in all"}},
		"in conclusion":      {Weight: 0.60, Replacements: []string{"to conclude", "finally"}},
		"in summary":         {Weight: 0.55, Replacements: []string{"to summarize", "in short"}},
		"to summarize":       {Weight: 0.55, Replacements: []string{"in summary", "in short"}},
		"in essence":         {Weight: 0.50, Replacements: []string{"fundamentally", "basically"}},
		"as a result":        {Weight: 0.25, Replacements: []string{"consequently", "so"}},
		"on the other hand":  {Weight: 0.30, Replacements: []string{"conversely", "by contrast"}},
		"first and foremost": {Weight: 0.55, Replacements: []string{"primarily", "first"}},
	}
}

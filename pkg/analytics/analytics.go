package analytics

import (
	"sort"
	"strings"

	"github.com/dtnitsch/wordharvest/models"
)

// commonWords holds frequent English and web UI words excluded when
// stopword filtering is requested.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {},
	"again": {}, "against": {}, "all": {}, "almost": {}, "alone": {}, "along": {},
	"already": {}, "also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"amongst": {}, "amount": {}, "an": {}, "and": {}, "another": {}, "any": {},
	"anyhow": {}, "anyone": {}, "anything": {}, "anyway": {}, "anywhere": {},
	"are": {}, "around": {}, "as": {}, "at": {},

	"back": {}, "be": {}, "became": {}, "because": {}, "become": {}, "becomes": {},
	"becoming": {}, "been": {}, "before": {}, "beforehand": {}, "behind": {},
	"being": {}, "below": {}, "beside": {}, "besides": {}, "between": {},
	"beyond": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {},
	"done": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "elsewhere": {}, "enough": {},
	"entirely": {}, "especially": {}, "etc": {}, "even": {}, "ever": {},
	"every": {}, "everyone": {}, "everything": {}, "everywhere": {},

	"few": {}, "for": {}, "former": {}, "formerly": {}, "from": {},
	"further": {},

	"had": {}, "has": {}, "have": {},
	"having": {}, "he": {}, "hence": {},
	"her": {}, "here": {}, "hereafter": {}, "hereby": {}, "herein": {},
	"hereupon": {}, "hers": {}, "herself": {}, "him": {},
	"himself": {}, "his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "itself": {},

	"just": {},

	"keep": {},

	"last": {}, "latter": {}, "latterly": {}, "least": {}, "less": {},
	"let": {}, "like": {}, "likely": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"meanwhile": {}, "might": {}, "mine": {}, "more": {}, "moreover": {},
	"most": {}, "mostly": {}, "much": {}, "must": {},
	"my": {}, "myself": {},

	"neither": {}, "never": {}, "nevertheless": {}, "next": {}, "no": {},
	"nobody": {}, "none": {}, "noone": {}, "nor": {}, "not": {},
	"nothing": {}, "now": {}, "nowhere": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "others": {},
	"otherwise": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {},
	"over": {}, "own": {},

	"part": {}, "per": {}, "perhaps": {}, "please": {}, "put": {},

	"rather": {}, "re": {}, "same": {}, "see": {}, "seem": {}, "seemed": {},
	"seeming": {}, "seems": {}, "several": {}, "she": {},
	"should": {}, "since": {},
	"so": {}, "some": {}, "somehow": {}, "someone": {}, "something": {},
	"sometime": {}, "sometimes": {}, "somewhere": {}, "still": {},
	"such": {},

	"take": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"thence": {}, "there": {}, "thereafter": {}, "thereby": {},
	"therefore": {}, "therein": {}, "thereupon": {},
	"these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "throughout": {},
	"thru": {}, "thus": {}, "to": {}, "together": {}, "too": {},
	"toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "we": {},
	"well": {}, "were": {},
	"what": {}, "whatever": {}, "when": {}, "whence": {},
	"whenever": {}, "where": {}, "whereafter": {}, "whereas": {},
	"whereby": {}, "wherein": {}, "whereupon": {},
	"wherever": {}, "whether": {}, "which": {}, "while": {}, "whither": {},
	"who": {}, "whoever": {},
	"whose": {}, "why": {}, "with": {}, "within": {}, "without": {},
	"would": {},

	"yet": {}, "you": {},
	"your": {}, "yours": {}, "yourself": {}, "yourselves": {},

	// Common web/UI noise words
	"click": {}, "clickable": {}, "clicked": {}, "clicking": {},
	"button": {}, "link": {}, "menu": {},
	"redirected": {}, "redirect": {}, "redirecting": {},
	"page": {}, "pages": {}, "website": {}, "site": {},
	"home": {}, "homepage": {},
	"search": {}, "searching": {}, "searched": {},
	"loading": {}, "loaded": {}, "load": {}, "loads": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// Frequency counts tokens and remembers the order in which each distinct token
// was first seen.
type Frequency struct {
	counts map[string]int
	order  []string
}

func NewFrequency() *Frequency {
	return &Frequency{counts: make(map[string]int)}
}

// Add records n more occurrences of word.
func (f *Frequency) Add(word string, n int) {
	if _, ok := f.counts[word]; !ok {
		f.order = append(f.order, word)
	}
	f.counts[word] += n
}

// Count returns how often word was seen.
func (f *Frequency) Count(word string) int {
	return f.counts[word]
}

// Len is the number of distinct tokens.
func (f *Frequency) Len() int {
	return len(f.order)
}

// Total is the sum of all counts.
func (f *Frequency) Total() int {
	total := 0
	for _, c := range f.counts {
		total += c
	}
	return total
}

// Each visits distinct tokens in first-seen order.
func (f *Frequency) Each(fn func(word string, count int)) {
	for _, w := range f.order {
		fn(w, f.counts[w])
	}
}

// Options tune which tokens are counted.
type Options struct {
	MinLength     int
	SkipStopwords bool
}

// WordFrequency counts tokens at least MinLength bytes long. Matching is exact
// and case-sensitive.
func WordFrequency(tokens []string, opts Options) *Frequency {
	freq := NewFrequency()
	for _, token := range tokens {
		if len(token) < opts.MinLength {
			continue
		}
		if opts.SkipStopwords && IsStopword(token) {
			continue
		}
		freq.Add(token, 1)
	}
	return freq
}

// Rank orders the counted tokens by count, highest first. Equal counts keep
// first-seen order.
func Rank(freq *Frequency) []models.WordCount {
	ranked := make([]models.WordCount, 0, freq.Len())
	freq.Each(func(word string, count int) {
		ranked = append(ranked, models.WordCount{Word: word, Count: count})
	})

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// TopWords counts and ranks tokens, keeping at most n entries. n <= 0 keeps all.
func TopWords(tokens []string, opts Options, n int) []models.WordCount {
	return Limit(Rank(WordFrequency(tokens, opts)), n)
}

// Limit truncates a ranked list to n entries. n <= 0 keeps all.
func Limit(ranked []models.WordCount, n int) []models.WordCount {
	if n <= 0 || len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}

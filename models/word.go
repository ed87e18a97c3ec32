package models

// WordCount is a single ranked entry: a token and how often it occurred.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Words drops the counts and returns the tokens in ranked order.
func Words(ranked []WordCount) []string {
	words := make([]string, len(ranked))
	for i, wc := range ranked {
		words[i] = wc.Word
	}
	return words
}

// Report is what gets presented at the end of a run.
// Passwords is nil when password mutation was not requested.
type Report struct {
	Words     []string `json:"top_words" yaml:"top_words"`
	Passwords []string `json:"possible_passwords,omitempty" yaml:"possible_passwords,omitempty"`
}

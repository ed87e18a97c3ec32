package mapreduce

import (
	"fmt"

	"github.com/dtnitsch/wordharvest/models"
)

// TopKeywords formats the first n ranked entries as "word:count" strings
// (e.g., "learning:1153"). n <= 0 formats all of them.
func TopKeywords(ranked []models.WordCount, n int) []string {
	limit := n
	if limit <= 0 || len(ranked) < limit {
		limit = len(ranked)
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ranked[i].Word, ranked[i].Count)
	}

	return keywords
}

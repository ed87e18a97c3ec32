package mapreduce

import (
	"github.com/dtnitsch/wordharvest/models"
	"github.com/dtnitsch/wordharvest/pkg/analytics"
)

// Map generates a word frequency table for a single page's tokens.
func Map(page models.Page, opts analytics.Options) *analytics.Frequency {
	return analytics.WordFrequency(page.Tokens, opts)
}

// Reduce merges per-page tables in page order. First-seen order carries over,
// so reducing the pages of a crawl equals counting their concatenated tokens.
func Reduce(intermediate []*analytics.Frequency) *analytics.Frequency {
	final := analytics.NewFrequency()

	for _, freq := range intermediate {
		if freq == nil {
			continue
		}
		freq.Each(func(word string, count int) {
			final.Add(word, count)
		})
	}

	return final
}

// MapPages runs Map over every page of a crawl result.
func MapPages(result *models.CrawlResult, opts analytics.Options) []*analytics.Frequency {
	intermediate := make([]*analytics.Frequency, 0, len(result.Pages))
	for _, page := range result.Pages {
		intermediate = append(intermediate, Map(page, opts))
	}
	return intermediate
}

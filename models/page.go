package models

// Page represents a single fetched document reduced to what the crawl needs.
type Page struct {
	URL    string   `json:"url" yaml:"url"`
	Links  []string `json:"links" yaml:"links"`
	Tokens []string `json:"-" yaml:"-"`
}

// CrawlResult holds every page visited by one crawl, seed first.
type CrawlResult struct {
	Seed  string `json:"seed" yaml:"seed"`
	Pages []Page `json:"pages" yaml:"pages"`
}

// Tokens concatenates the tokens of all pages in visit order.
func (r *CrawlResult) Tokens() []string {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Tokens)
	}
	tokens := make([]string, 0, n)
	for _, p := range r.Pages {
		tokens = append(tokens, p.Tokens...)
	}
	return tokens
}

// Visited returns the URLs fetched, in visit order.
func (r *CrawlResult) Visited() []string {
	urls := make([]string, len(r.Pages))
	for i, p := range r.Pages {
		urls[i] = p.URL
	}
	return urls
}

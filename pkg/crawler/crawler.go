// Package crawler fetches a seed page and a bounded number of the absolute
// links found on it, collecting the tokens of every visited page.
package crawler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/wordharvest/models"
	"github.com/dtnitsch/wordharvest/pkg/parser"
)

// DocumentFetcher retrieves and parses one page. *fetcher.Fetcher satisfies it.
type DocumentFetcher interface {
	GetHtml(ctx context.Context, url string) (*goquery.Document, error)
}

type Crawler struct {
	fetcher DocumentFetcher
	logger  *slog.Logger
}

func New(f DocumentFetcher, logger *slog.Logger) *Crawler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Crawler{fetcher: f, logger: logger}
}

// EffectiveDepth is the number of linked pages visited for a requested depth
// when the seed has linkCount outbound links.
//
// When depth is at least linkCount the result is linkCount-1, one short of
// every available link.
func EffectiveDepth(depth, linkCount int) int {
	effective := depth
	if depth >= linkCount {
		effective = min(depth, linkCount-1)
	}
	return max(effective, 0)
}

// Crawl visits seed and then the first EffectiveDepth links of the seed page,
// in link order. The first failing fetch aborts the crawl; nothing partial is
// returned.
func (c *Crawler) Crawl(ctx context.Context, seed string, depth int) (*models.CrawlResult, error) {
	seedPage, err := c.visit(ctx, seed, true)
	if err != nil {
		return nil, err
	}

	result := &models.CrawlResult{
		Seed:  seed,
		Pages: []models.Page{*seedPage},
	}

	effective := EffectiveDepth(depth, len(seedPage.Links))
	c.logger.Info("Seed page fetched", "url", seed, "links", len(seedPage.Links), "depth", depth, "effective_depth", effective)

	for _, link := range seedPage.Links[:effective] {
		page, err := c.visit(ctx, link, false)
		if err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, *page)
	}

	c.logger.Info("Crawl finished", "seed", seed, "pages", len(result.Pages))
	return result, nil
}

func (c *Crawler) visit(ctx context.Context, url string, withLinks bool) (*models.Page, error) {
	doc, err := c.fetcher.GetHtml(ctx, url)
	if err != nil {
		c.logger.Error("Error fetching page", "url", url, "error", err)
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	page := &models.Page{
		URL:    url,
		Tokens: parser.TokenizeDocument(doc),
	}
	if withLinks {
		page.Links = parser.ExtractLinks(doc)
	}

	c.logger.Info("Page tokenized", "url", url, "tokens", len(page.Tokens), "links", len(page.Links))
	return page, nil
}

// Package models defines data structures for configuration and crawl results.
package models

import "time"

// HarvestConfig holds runtime configuration for a single harvest run.
// All values come from CLI flags, not external config files.
type HarvestConfig struct {
	URL        string
	Depth      int
	MinLength  int
	Top        int
	Output     string
	Format     string
	Passwords  bool
	Capitalize bool
	SkipCommon bool
	Seed       int64
	Seeded     bool
	Timeout    time.Duration
	UserAgent  string
}

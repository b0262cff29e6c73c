// Package tags derives front matter product tags from announcement
// categories.
package tags

import (
	"sort"
	"strings"

	"github.com/mats16/daily-aws-news/internal/domain"
)

// productPrefix is the category namespace that maps to product tags in the
// announcement feed, e.g. "general:products/amazon-ec2".
const productPrefix = "general:products/"

// Collect flattens the items' categories into a duplicate-free, sorted set
// of product tags. The feed joins several categories into one string with
// commas, so each raw value is split before matching; entries outside the
// product namespace are dropped.
func Collect(items []domain.FeedItem) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, raw := range item.Categories {
			for _, part := range strings.Split(raw, ",") {
				name, ok := strings.CutPrefix(strings.TrimSpace(part), productPrefix)
				if !ok || name == "" {
					continue
				}
				seen[name] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

package advisor

import (
	"sort"
	"strings"

	"github.com/HerbHall/netadvisor/pkg/catalog"
)

// scored pairs a catalog record with its ranking signals.
type scored struct {
	product catalog.Product
	matches int
	// declaration index, preserved for the stable tie-break
	index int
}

// Recommend filters and ranks catalog records against the intent and returns
// at most maxResults records. Ranking is deterministic: feature-match count
// descending, then scale-tier agreement, then catalog declaration order. An
// empty result is a defined output state, not an error.
func Recommend(intent QueryIntent, products []catalog.Product, maxResults int) []catalog.Product {
	if maxResults < 1 || len(products) == 0 {
		return []catalog.Product{}
	}

	survivors := make([]scored, 0, len(products))
	for i := range products {
		p := products[i]

		if len(intent.Categories) > 0 && !intent.HasCategory(p.Category) {
			continue
		}

		// A record is eligible if its cheapest configuration fits the budget,
		// even when its top end exceeds it.
		if intent.BudgetCeiling > 0 && p.PriceLow > intent.BudgetCeiling {
			continue
		}

		survivors = append(survivors, scored{
			product: p,
			matches: featureMatchCount(&p, intent.RequiredFeatures),
			index:   i,
		})
	}

	// Feature filtering degrades gracefully: zero-match records are dropped
	// only when at least one record matched something.
	if len(intent.RequiredFeatures) > 0 && anyMatches(survivors) {
		filtered := survivors[:0]
		for _, s := range survivors {
			if s.matches > 0 {
				filtered = append(filtered, s)
			}
		}
		survivors = filtered
	}

	sort.SliceStable(survivors, func(a, b int) bool {
		if survivors[a].matches != survivors[b].matches {
			return survivors[a].matches > survivors[b].matches
		}
		sa := scaleRank(&survivors[a].product, intent.Scale)
		sb := scaleRank(&survivors[b].product, intent.Scale)
		if sa != sb {
			return sa < sb
		}
		return survivors[a].index < survivors[b].index
	})

	if len(survivors) > maxResults {
		survivors = survivors[:maxResults]
	}

	result := make([]catalog.Product, len(survivors))
	for i, s := range survivors {
		result[i] = s.product
	}
	return result
}

// featureMatchCount counts how many required features appear (case-insensitive
// substring) in the record's feature list or use-case text. A feature counts
// when its normalized keyword or any of its trigger terms is present.
func featureMatchCount(p *catalog.Product, features []string) int {
	if len(features) == 0 {
		return 0
	}

	var b strings.Builder
	for _, f := range p.Features {
		b.WriteString(f)
		b.WriteByte(' ')
	}
	b.WriteString(p.UseCase)
	corpus := strings.ToLower(b.String())

	count := 0
	for _, keyword := range features {
		for _, term := range featureMatchTerms(keyword) {
			if strings.Contains(corpus, term) {
				count++
				break
			}
		}
	}
	return count
}

// featureMatchTerms returns the corpus substrings that satisfy a feature
// keyword. Unknown keywords match on the keyword itself.
func featureMatchTerms(keyword string) []string {
	for _, ft := range featureTriggers {
		if ft.Keyword == keyword {
			return append([]string{strings.ToLower(keyword)}, ft.Terms...)
		}
	}
	return []string{strings.ToLower(keyword)}
}

// scaleRank orders records by agreement with the intent's scale tier. An
// absent intent scale is neutral: every record ranks equally.
func scaleRank(p *catalog.Product, scale catalog.ScaleTier) int {
	if scale == "" || p.ScaleTier == scale {
		return 0
	}
	return 1
}

func anyMatches(s []scored) bool {
	for i := range s {
		if s[i].matches > 0 {
			return true
		}
	}
	return false
}

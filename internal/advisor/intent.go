// Package advisor implements the query-to-recommendation pipeline: intent
// extraction, catalog filtering and ranking, and text rendering, plus the
// service module that exposes the pipeline over HTTP.
package advisor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/HerbHall/netadvisor/pkg/catalog"
)

// QueryIntent is the structured interpretation of a free-text query. It is
// derived purely from the input text and never mutated after construction.
type QueryIntent struct {
	// Categories detected in the query, in vocabulary order. Empty means
	// "no category filter". Detection is not mutually exclusive.
	Categories []catalog.Category `json:"categories,omitempty"`

	// Scale is the detected business size; empty means no opinion.
	Scale catalog.ScaleTier `json:"scale,omitempty"`

	// RequiredFeatures holds normalized feature keywords (e.g. "poe", "vpn").
	RequiredFeatures []string `json:"required_features,omitempty"`

	// BudgetCeiling is the detected upper price bound; 0 means absent.
	BudgetCeiling int `json:"budget_ceiling,omitempty"`

	// UserCount is informative only; it annotates output but never filters.
	UserCount int `json:"user_count,omitempty"`
}

// HasCategory reports whether c was detected in the query.
func (qi *QueryIntent) HasCategory(c catalog.Category) bool {
	for _, have := range qi.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// categoryTrigger maps a trigger substring to a product category.
type categoryTrigger struct {
	Term     string           `json:"term"`
	Category catalog.Category `json:"category"`
}

// categoryTriggers is the enumerable category vocabulary. A query may match
// triggers for several categories; all of them are kept.
var categoryTriggers = []categoryTrigger{
	{"router", catalog.CategoryRouter},
	{"routing", catalog.CategoryRouter},
	{"wan", catalog.CategoryRouter},
	{"internet", catalog.CategoryRouter},
	{"路由", catalog.CategoryRouter},
	{"switch", catalog.CategorySwitch},
	{"switching", catalog.CategorySwitch},
	{"lan", catalog.CategorySwitch},
	{"port", catalog.CategorySwitch},
	{"交换机", catalog.CategorySwitch},
	{"firewall", catalog.CategoryFirewall},
	{"security", catalog.CategoryFirewall},
	{"vpn", catalog.CategoryFirewall},
	{"protection", catalog.CategoryFirewall},
	{"防火墙", catalog.CategoryFirewall},
	{"wifi", catalog.CategoryWireless},
	{"wireless", catalog.CategoryWireless},
	{"access point", catalog.CategoryWireless},
	{"无线", catalog.CategoryWireless},
}

// scaleTrigger maps a trigger substring to a scale tier. Explicit words are
// checked before any numeric user-count inference.
type scaleTrigger struct {
	Term string            `json:"term"`
	Tier catalog.ScaleTier `json:"tier"`
}

var scaleTriggers = []scaleTrigger{
	{"enterprise", catalog.TierEnterprise},
	{"large", catalog.TierEnterprise},
	{"corporation", catalog.TierEnterprise},
	{"campus", catalog.TierEnterprise},
	{"data center", catalog.TierEnterprise},
	{"企业", catalog.TierEnterprise},
	{"small", catalog.TierSmallBusiness},
	{"soho", catalog.TierSmallBusiness},
	{"home office", catalog.TierSmallBusiness},
	{"startup", catalog.TierSmallBusiness},
	{"小公司", catalog.TierSmallBusiness},
	{"小型", catalog.TierSmallBusiness},
}

// featureTrigger maps trigger substrings to a normalized feature keyword.
type featureTrigger struct {
	Keyword string   `json:"keyword"`
	Terms   []string `json:"terms"`
}

var featureTriggers = []featureTrigger{
	{"poe", []string{"poe"}},
	{"vpn", []string{"vpn", "remote"}},
	{"stacking", []string{"stack"}},
	{"10g", []string{"10g", "10 gig", "10 gigabit"}},
	{"wifi6", []string{"wifi 6", "wifi6", "802.11ax"}},
	{"sdwan", []string{"sd-wan", "sdwan"}},
}

// smallBusinessUserLimit is the user count at or below which a numeric
// "N users" mention implies a small business.
const smallBusinessUserLimit = 50

var (
	userCountPattern = regexp.MustCompile(`(\d+)\s*(?:users?|people|persons?|employees?|人)`)

	// Budget patterns, tried in order. Each captures the numeric token.
	budgetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\$\s*([\d,]+)`),
		regexp.MustCompile(`([\d,]+)\s*(?:dollars?|usd|美元|元)`),
		regexp.MustCompile(`(?:budget|预算)\D{0,12}?([\d,]+)`),
		regexp.MustCompile(`(?:under|below|within|max)\s+([\d,]+)`),
	}
)

// ExtractIntent derives a QueryIntent from free text. It is total: on
// unrecognized input it returns the neutral intent, which downstream ranking
// treats as "no filter".
func ExtractIntent(query string) QueryIntent {
	q := strings.ToLower(query)
	intent := QueryIntent{}

	seen := map[catalog.Category]bool{}
	for _, t := range categoryTriggers {
		if seen[t.Category] {
			continue
		}
		if strings.Contains(q, t.Term) {
			seen[t.Category] = true
			intent.Categories = append(intent.Categories, t.Category)
		}
	}

	for _, t := range scaleTriggers {
		if strings.Contains(q, t.Term) {
			intent.Scale = t.Tier
			break
		}
	}

	seenFeature := map[string]bool{}
	for _, ft := range featureTriggers {
		for _, term := range ft.Terms {
			if strings.Contains(q, term) && !seenFeature[ft.Keyword] {
				seenFeature[ft.Keyword] = true
				intent.RequiredFeatures = append(intent.RequiredFeatures, ft.Keyword)
				break
			}
		}
	}

	if m := userCountPattern.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.UserCount = n
		}
	}

	// Numeric inference only applies when no explicit scale word matched.
	if intent.Scale == "" && intent.UserCount > 0 {
		if intent.UserCount <= smallBusinessUserLimit {
			intent.Scale = catalog.TierSmallBusiness
		} else {
			intent.Scale = catalog.TierEnterprise
		}
	}

	intent.BudgetCeiling = extractBudget(q)

	return intent
}

// extractBudget finds a numeric token adjacent to a currency or budget
// marker. Parse failures leave the ceiling absent; extraction never errors.
func extractBudget(q string) int {
	for _, p := range budgetPatterns {
		m := p.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			continue
		}
		return n
	}
	return 0
}

// Vocabulary describes the full trigger-term tables, exposed so clients can
// inspect what the extractor understands.
type Vocabulary struct {
	Categories []categoryTrigger `json:"categories"`
	Scales     []scaleTrigger    `json:"scales"`
	Features   []featureTrigger  `json:"features"`
}

// CurrentVocabulary returns the extractor's trigger tables.
func CurrentVocabulary() Vocabulary {
	return Vocabulary{
		Categories: categoryTriggers,
		Scales:     scaleTriggers,
		Features:   featureTriggers,
	}
}

package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HerbHall/netadvisor/internal/search"
	"github.com/HerbHall/netadvisor/pkg/catalog"
)

// EmptyStateMarker is the designated line rendered when no catalog record
// matches the query. Tests and callers key off this string.
const EmptyStateMarker = "No matching network products found."

// RenderOptions controls optional sections of the rendered document.
type RenderOptions struct {
	IncludeSpecifications bool
}

// categoryLabels maps categories to their display headings.
var categoryLabels = map[catalog.Category]string{
	catalog.CategoryRouter:   "Router",
	catalog.CategorySwitch:   "Switch",
	catalog.CategoryFirewall: "Firewall",
	catalog.CategoryWireless: "Wireless",
}

// Render produces the recommendation document for a query. It is a pure
// function: identical inputs yield byte-identical output.
func Render(query string, intent QueryIntent, results []catalog.Product, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString("# Network Product Recommendations\n\n")
	renderAnalysis(&b, query, intent)

	if len(results) == 0 {
		b.WriteString(EmptyStateMarker)
		b.WriteString("\n\n")
		b.WriteString("Try a broader query, or name the equipment type (router, switch, firewall, wireless) and your business size.\n")
		return b.String()
	}

	for i := range results {
		renderProduct(&b, i+1, &results[i], opts)
	}

	renderBuyingGuide(&b, intent, results)
	renderFooter(&b)

	return b.String()
}

// renderAnalysis echoes the detected intent back to the user.
func renderAnalysis(b *strings.Builder, query string, intent QueryIntent) {
	fmt.Fprintf(b, "**Query:** %s\n\n", query)

	if len(intent.Categories) > 0 {
		labels := make([]string, len(intent.Categories))
		for i, c := range intent.Categories {
			labels[i] = categoryLabels[c]
		}
		fmt.Fprintf(b, "**Detected Categories:** %s\n", strings.Join(labels, ", "))
	}
	if intent.Scale != "" {
		fmt.Fprintf(b, "**Business Size:** %s\n", scaleLabel(intent.Scale))
	}
	if len(intent.RequiredFeatures) > 0 {
		fmt.Fprintf(b, "**Key Requirements:** %s\n", strings.Join(intent.RequiredFeatures, ", "))
	}
	if intent.BudgetCeiling > 0 {
		fmt.Fprintf(b, "**Budget Ceiling:** $%d\n", intent.BudgetCeiling)
	}
	if intent.UserCount > 0 {
		fmt.Fprintf(b, "**Users to Support:** %d\n", intent.UserCount)
	}
	b.WriteString("\n")
}

// renderProduct writes one result subsection.
func renderProduct(b *strings.Builder, rank int, p *catalog.Product, opts RenderOptions) {
	fmt.Fprintf(b, "## %d. %s\n", rank, p.DisplayName())
	fmt.Fprintf(b, "**Type:** %s\n", p.Type)
	fmt.Fprintf(b, "**Price Range:** %s\n", p.PriceRange())
	fmt.Fprintf(b, "**Best For:** %s\n\n", p.UseCase)

	b.WriteString("**Key Features:**\n")
	for _, f := range p.Features {
		fmt.Fprintf(b, "- %s\n", f)
	}

	if opts.IncludeSpecifications && len(p.Specifications) > 0 {
		b.WriteString("\n**Technical Specifications:**\n")
		// Map order is not deterministic; sort keys so output is.
		keys := make([]string, 0, len(p.Specifications))
		for k := range p.Specifications {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, "- %s: %s\n", specLabel(k), p.Specifications[k])
		}
	}

	b.WriteString("\n---\n\n")
}

// renderBuyingGuide appends the fixed selection-criteria and timeline
// template, plus category-specific tips for detected or served categories.
func renderBuyingGuide(b *strings.Builder, intent QueryIntent, results []catalog.Product) {
	b.WriteString("## Buying Guide\n\n")

	b.WriteString("### Key Selection Criteria\n\n")
	b.WriteString("**1. Performance Requirements**\n")
	b.WriteString("- Bandwidth needs (current and 3-year projection)\n")
	b.WriteString("- Number of concurrent users and devices\n")
	b.WriteString("- Application requirements (video, VoIP, file sharing)\n\n")

	b.WriteString("**2. Scalability Planning**\n")
	b.WriteString("- Growth projection for the next 3-5 years\n")
	b.WriteString("- Modular vs fixed-configuration options\n")
	b.WriteString("- Stackability and clustering capabilities\n\n")

	b.WriteString("**3. Management and Support**\n")
	b.WriteString("- IT team technical expertise level\n")
	b.WriteString("- Centralized vs distributed management\n")
	b.WriteString("- Vendor support quality and availability\n\n")

	for _, c := range guideCategories(intent, results) {
		switch c {
		case catalog.CategoryRouter:
			b.WriteString("### Router Considerations\n")
			b.WriteString("- WAN connection types and redundancy\n")
			b.WriteString("- SD-WAN capabilities for multi-site deployments\n")
			b.WriteString("- Built-in security features (firewall, VPN)\n\n")
		case catalog.CategorySwitch:
			b.WriteString("### Switch Considerations\n")
			b.WriteString("- Port density with a 20% growth buffer\n")
			b.WriteString("- PoE requirements for phones, cameras, and access points\n")
			b.WriteString("- Uplink bandwidth to avoid bottlenecks\n\n")
		case catalog.CategoryFirewall:
			b.WriteString("### Firewall Considerations\n")
			b.WriteString("- Size the firewall to your internet bandwidth\n")
			b.WriteString("- VPN capacity for remote users\n")
			b.WriteString("- SSL inspection for sensitive data\n\n")
		case catalog.CategoryWireless:
			b.WriteString("### Wireless Considerations\n")
			b.WriteString("- Coverage area and access point density\n")
			b.WriteString("- WiFi 6/6E for future-proofing\n")
			b.WriteString("- PoE availability for access point placement\n\n")
		}
	}

	b.WriteString("### Implementation Timeline\n\n")
	b.WriteString("**Phase 1: Planning (2-4 weeks)** — requirements gathering, vendor evaluation, budget approval\n")
	b.WriteString("**Phase 2: Preparation (1-2 weeks)** — equipment staging, configuration, migration planning\n")
	b.WriteString("**Phase 3: Implementation (1-3 days)** — installation, deployment, testing and cutover\n")
	b.WriteString("**Phase 4: Optimization (1-2 weeks)** — monitoring, tuning, user training\n\n")
}

// renderFooter appends the consultation prompt.
func renderFooter(b *strings.Builder) {
	b.WriteString("## Need More Specific Recommendations?\n\n")
	b.WriteString("Please provide:\n")
	b.WriteString("- Number of users and devices to support\n")
	b.WriteString("- Current network infrastructure, if any\n")
	b.WriteString("- Specific requirements (VPN users, IP cameras, PoE, etc.)\n")
	b.WriteString("- Budget range and implementation timeline\n")
}

// RenderSearchSection formats augmenter results as a market-information
// section appended to the main document.
func RenderSearchSection(results []search.Result) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n## Latest Market Information\n\n")
	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, r.Title)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", truncate(r.Snippet, 200))
		}
		if r.URL != "" {
			fmt.Fprintf(&b, "   %s\n", r.URL)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderDegradedNote formats the note appended when the augmenter failed.
func RenderDegradedNote(reason string) string {
	return fmt.Sprintf("\n_Real-time market information is unavailable (%s); showing catalog results only._\n", reason)
}

// guideCategories returns the categories to include tips for: the detected
// ones, or the served ones when no category was detected.
func guideCategories(intent QueryIntent, results []catalog.Product) []catalog.Category {
	if len(intent.Categories) > 0 {
		return intent.Categories
	}

	seen := map[catalog.Category]bool{}
	var out []catalog.Category
	for i := range results {
		c := results[i].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func scaleLabel(t catalog.ScaleTier) string {
	switch t {
	case catalog.TierSmallBusiness:
		return "Small Business"
	case catalog.TierEnterprise:
		return "Enterprise"
	}
	return string(t)
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// specLabel converts a snake_case spec key to a display label.
func specLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

package pricing

import "strings"

// Category is a domain tag detected in a free-text project description.
type Category string

const (
	CategoryAI          Category = "ai"
	CategoryPayments    Category = "payments"
	CategoryRealtime    Category = "realtime"
	CategoryMobile      Category = "mobile"
	CategoryMarketplace Category = "marketplace"
	CategoryEcommerce   Category = "ecommerce"
	CategoryAuth        Category = "auth"
	CategoryData        Category = "data"
)

// categoryKeywords maps each category to the substrings that trigger it.
// Declaration order is the output order; a category contributes at most once
// no matter how many of its keywords match.
var categoryKeywords = []struct {
	Category Category
	Keywords []string
}{
	{CategoryAI, []string{"ai", "chatbot", "gpt", "llm", "machine learning", "artificial intelligence", "recommendation"}},
	{CategoryPayments, []string{"payment", "stripe", "billing", "subscription", "checkout", "invoice"}},
	{CategoryRealtime, []string{"realtime", "real-time", "real time", "websocket", "live updates", "streaming", "collaborative"}},
	{CategoryMobile, []string{"mobile", "ios", "android", "app store", "iphone"}},
	{CategoryMarketplace, []string{"marketplace", "two-sided", "buyers and sellers", "vendors", "listings"}},
	{CategoryEcommerce, []string{"ecommerce", "e-commerce", "online store", "shop", "cart", "storefront"}},
	{CategoryAuth, []string{"login", "auth", "sign up", "signup", "sso", "user account", "permission"}},
	{CategoryData, []string{"dashboard", "analytics", "report", "database", "metrics", "admin panel", "crm"}},
}

// DetectCategories scans a free-text description for domain keywords and
// returns the matched categories in declaration order. Pure and idempotent;
// an empty description yields an empty set.
func DetectCategories(description string) []Category {
	text := strings.ToLower(description)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var matched []Category
	for _, entry := range categoryKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, entry.Category)
				break
			}
		}
	}
	return matched
}

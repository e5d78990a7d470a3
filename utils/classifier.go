package utils

import (
	"regexp"
	"strings"
)

// Rule tables for menu text classification. These are tuning data, not
// algorithm: keyword lists and category priorities can be edited without
// touching the matching code below.

// foodPatterns accept a line as a probable dish when any group matches as a
// whole word: protein nouns, dish nouns, breakfast nouns, cooking verbs.
var foodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(chicken|beef|pork|fish|salmon|tofu|turkey)\b`),
	regexp.MustCompile(`(?i)\b(pizza|pasta|burger|sandwich|wrap|salad|soup|rice|curry)\b`),
	regexp.MustCompile(`(?i)\b(eggs?|pancakes?|waffles?|oatmeal|bacon)\b`),
	regexp.MustCompile(`(?i)\b(grilled|roasted|baked|fried|steamed)\b`),
}

// categoryRules are checked top to bottom; the first substring hit wins.
type categoryRule struct {
	substrings []string
	category   string
}

var categoryRules = []categoryRule{
	{[]string{"grill"}, "Grill"},
	{[]string{"pizza"}, "Pizza"},
	{[]string{"pasta", "italian"}, "Pasta"},
	{[]string{"salad"}, "Salad Bar"},
	{[]string{"deli"}, "Deli"},
	{[]string{"dessert", "bakery"}, "Desserts"},
	{[]string{"international", "global"}, "Global"},
}

var meatKeywords = []string{
	"beef", "chicken", "pork", "bacon", "ham", "sausage", "pepperoni",
	"turkey", "lamb", "steak", "meatball", "prosciutto", "salami",
}

var seafoodKeywords = []string{
	"fish", "salmon", "tuna", "shrimp", "crab", "lobster", "clam",
}

var dairyKeywords = []string{
	"milk", "cheese", "butter", "cream", "yogurt", "mozzarella", "cheddar",
}

// gfToken matches "gf" only as a standalone token, so "GF" labels count but
// words that merely contain the letters do not.
var gfToken = regexp.MustCompile(`(?i)\bgf\b`)

// IsLikelyFoodItem reports whether a line of page text looks like a dish
// name rather than a heading, date or navigation fragment.
func IsLikelyFoodItem(text string) bool {
	if len(text) < 4 || len(text) > 80 {
		return false
	}
	for _, p := range foodPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// DetectCategory returns the station category implied by the text, or the
// current category unchanged when the line carries no category marker. The
// caller threads the result through consecutive lines so a station heading
// sticks until the next one.
func DetectCategory(text, current string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.category
			}
		}
	}
	return current
}

// InferDietaryTags derives dietary tags from the item text alone. Absence of
// meat and seafood keywords implies vegetarian; additionally no dairy
// keywords and no "egg" implies vegan and dairy-free.
func InferDietaryTags(text string) []string {
	lower := strings.ToLower(text)

	hasMeat := containsAny(lower, meatKeywords...)
	hasSeafood := containsAny(lower, seafoodKeywords...)
	hasDairy := containsAny(lower, dairyKeywords...)

	var tags []string
	if !hasMeat && !hasSeafood {
		tags = append(tags, "vegetarian")
		if !hasDairy && !strings.Contains(lower, "egg") {
			tags = append(tags, "vegan", "dairy-free")
		}
	}

	if strings.Contains(lower, "gluten-free") || gfToken.MatchString(text) {
		tags = append(tags, "gluten-free")
	}

	return tags
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

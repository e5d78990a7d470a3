package services

import (
	"strings"
	"time"

	"github.com/JManoj01/UMassDining/models"
	"github.com/JManoj01/UMassDining/utils"
)

// extractState is the accumulator threaded through one hall's block walk.
// Meal and category stick across lines until a later block overrides them.
type extractState struct {
	meal     string
	category string
	seen     map[string]struct{}
	items    []models.MenuItem
}

// ExtractMenuItems walks a page's text blocks in order and emits the menu
// items found for one hall and date. A block may both switch context (meal
// heading, station heading) and name a dish; context updates are applied
// before the food check. Duplicate dish names under the same meal are
// emitted once per run; the same dish at another hall is a separate item.
func ExtractMenuItems(hallID string, blocks []string, date time.Time) []models.MenuItem {
	st := extractState{
		meal:     models.MealDinner,
		category: "Entrees",
		seen:     make(map[string]struct{}),
	}

	for _, block := range blocks {
		st = extractBlock(st, hallID, block, date)
	}
	return st.items
}

func extractBlock(st extractState, hallID, block string, date time.Time) extractState {
	text := strings.TrimSpace(block)
	if text == "" {
		return st
	}
	lower := strings.ToLower(text)

	// Checked in this order so "dinner" wins when a block names several
	// meal periods.
	if strings.Contains(lower, "breakfast") {
		st.meal = models.MealBreakfast
	}
	if strings.Contains(lower, "lunch") {
		st.meal = models.MealLunch
	}
	if strings.Contains(lower, "dinner") {
		st.meal = models.MealDinner
	}

	st.category = utils.DetectCategory(text, st.category)

	if !utils.IsLikelyFoodItem(text) {
		return st
	}

	key := hallID + "-" + st.meal + "-" + lower
	if _, dup := st.seen[key]; dup {
		return st
	}
	st.seen[key] = struct{}{}

	item := models.MenuItem{
		Name:         text,
		NameKey:      lower,
		DiningHallID: hallID,
		MealType:     st.meal,
		Category:     st.category,
		MenuDate:     date,
	}
	item.SetTags(utils.InferDietaryTags(text))
	st.items = append(st.items, item)
	return st
}

package services

import (
	"testing"
	"time"

	"github.com/JManoj01/UMassDining/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var extractDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func TestExtractMenuItemsWalk(t *testing.T) {
	blocks := []string{
		"Breakfast Menu",
		"Blueberry Pancakes",
		"Lunch",
		"Grill Station",
		"Grilled Chicken Sandwich",
		"Dinner Specials",
		"Baked Salmon Fillet",
	}

	items := ExtractMenuItems("worcester", blocks, extractDate)
	require.Len(t, items, 3)

	assert.Equal(t, "Blueberry Pancakes", items[0].Name)
	assert.Equal(t, models.MealBreakfast, items[0].MealType)
	assert.Equal(t, "Entrees", items[0].Category) // default until a station heading appears

	assert.Equal(t, "Grilled Chicken Sandwich", items[1].Name)
	assert.Equal(t, models.MealLunch, items[1].MealType)
	assert.Equal(t, "Grill", items[1].Category)

	assert.Equal(t, "Baked Salmon Fillet", items[2].Name)
	assert.Equal(t, models.MealDinner, items[2].MealType)
	// "Dinner Specials" carries no station marker, so the category sticks.
	assert.Equal(t, "Grill", items[2].Category)

	for _, item := range items {
		assert.Equal(t, "worcester", item.DiningHallID)
		assert.True(t, item.MenuDate.Equal(extractDate))
	}
}

func TestExtractMenuItemsStartsAtDinnerEntrees(t *testing.T) {
	items := ExtractMenuItems("franklin", []string{"Roasted Turkey Breast"}, extractDate)
	require.Len(t, items, 1)
	assert.Equal(t, models.MealDinner, items[0].MealType)
	assert.Equal(t, "Entrees", items[0].Category)
}

func TestExtractMenuItemsDinnerWinsWithinBlock(t *testing.T) {
	blocks := []string{
		"Served for Breakfast, Lunch and Dinner",
		"Steamed Rice",
	}
	items := ExtractMenuItems("franklin", blocks, extractDate)
	require.Len(t, items, 1)
	assert.Equal(t, models.MealDinner, items[0].MealType)
}

func TestExtractMenuItemsDedup(t *testing.T) {
	blocks := []string{
		"Lunch",
		"Grilled Chicken Sandwich",
		"  Grilled Chicken Sandwich  ", // same dish, stray whitespace
		"grilled chicken sandwich",     // case difference collapses too
	}
	items := ExtractMenuItems("berkshire", blocks, extractDate)
	require.Len(t, items, 1)
	assert.Equal(t, "Grilled Chicken Sandwich", items[0].Name)
	assert.Equal(t, "grilled chicken sandwich", items[0].NameKey)
}

func TestExtractMenuItemsSameDishAcrossMeals(t *testing.T) {
	blocks := []string{
		"Lunch",
		"Steamed Rice",
		"Dinner",
		"Steamed Rice",
	}
	items := ExtractMenuItems("hampshire", blocks, extractDate)
	require.Len(t, items, 2)
	assert.Equal(t, models.MealLunch, items[0].MealType)
	assert.Equal(t, models.MealDinner, items[1].MealType)
}

func TestExtractMenuItemsTagging(t *testing.T) {
	blocks := []string{
		"Dinner",
		"Garden Vegetable Fried Rice",
		"Grilled Chicken Breast with Rice",
	}
	items := ExtractMenuItems("worcester", blocks, extractDate)
	require.Len(t, items, 2)
	assert.ElementsMatch(t, []string{"vegetarian", "vegan", "dairy-free"}, items[0].TagList())
	assert.Empty(t, items[1].TagList())
}

func TestExtractMenuItemsSkipsNonFoodBlocks(t *testing.T) {
	blocks := []string{
		"Open 7am to 9pm",
		"",
		"Visit us on the concourse",
	}
	items := ExtractMenuItems("worcester", blocks, extractDate)
	assert.Empty(t, items)
}

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLikelyFoodItem(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"protein and cooking method", "Grilled Chicken Breast with Rice", true},
		{"dish noun", "Margherita Pizza", true},
		{"breakfast noun", "Blueberry Pancakes", true},
		{"cooking verb only", "Steamed Broccoli", true},
		{"heading without food terms", "Hours of Operation", false},
		{"too short", "BBQ", false},
		{"too long", "Chicken " + strings.Repeat("x", 80), false},
		{"empty", "", false},
		{"partial word does not count", "Chickpea Stew", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLikelyFoodItem(tt.text))
		})
	}
}

func TestIsLikelyFoodItemDeterministic(t *testing.T) {
	text := "Roasted Turkey Sandwich"
	first := IsLikelyFoodItem(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, IsLikelyFoodItem(text))
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		current string
		want    string
	}{
		{"grill station", "Grill Station", "Entrees", "Grill"},
		{"pizza", "Pizza Oven", "Entrees", "Pizza"},
		{"italian maps to pasta", "Italian Corner", "Entrees", "Pasta"},
		{"salad bar", "Fresh Salad Bar", "Entrees", "Salad Bar"},
		{"deli", "Deli Counter", "Entrees", "Deli"},
		{"bakery maps to desserts", "Bakery Case", "Entrees", "Desserts"},
		{"global", "Global Flavors", "Entrees", "Global"},
		{"grill outranks pizza", "Grilled Pizza Special", "Entrees", "Grill"},
		{"no marker keeps current", "Mashed Potatoes", "Grill", "Grill"},
		{"case insensitive", "GRILL HOUSE", "Entrees", "Grill"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCategory(tt.text, tt.current))
		})
	}
}

func TestInferDietaryTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"meat item gets no tags", "Grilled Chicken Breast with Rice", nil},
		{"seafood item gets no tags", "Baked Salmon Fillet", nil},
		{"plain vegetable is vegan", "Garden Vegetable Stir Fry", []string{"vegetarian", "vegan", "dairy-free"}},
		{"dairy blocks vegan", "Cheese Ravioli", []string{"vegetarian"}},
		{"egg blocks vegan", "Veggie Egg Scramble", []string{"vegetarian"}},
		{"gluten-free label", "Gluten-Free Penne Marinara", []string{"vegetarian", "vegan", "dairy-free", "gluten-free"}},
		{"standalone gf token", "Rice Noodle Bowl (GF)", []string{"vegetarian", "vegan", "dairy-free", "gluten-free"}},
		{"gf inside a word does not count", "Stir Fry Gfreench", []string{"vegetarian", "vegan", "dairy-free"}},
		{"meat with gf label still gluten-free", "Gluten-Free Chicken Tenders", []string{"gluten-free"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferDietaryTags(tt.text))
		})
	}
}

package models

import (
	"gorm.io/gorm"
)

// UserPreference holds one user's dining preferences. The list columns are
// comma-separated ("vegan,gluten-free", "peanut,mushroom", "worcester").
type UserPreference struct {
	gorm.Model
	UserID              uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	DietaryPreferences  string `json:"dietary_preferences"`
	DislikedIngredients string `json:"disliked_ingredients"`
	FavoriteHalls       string `json:"favorite_halls"`
}

func (p *UserPreference) DietaryList() []string {
	return SplitList(p.DietaryPreferences)
}

func (p *UserPreference) DislikedList() []string {
	return SplitList(p.DislikedIngredients)
}

func (p *UserPreference) FavoriteHallList() []string {
	return SplitList(p.FavoriteHalls)
}

package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Meal types as stored on MenuItem and used in queries.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// MenuItem is one dish on one hall's menu for one day. Items are written in
// bulk by the scraper and never mutated afterwards, so NameKey carries the
// dedup identity: at most one row per (hall, date, meal, normalized name).
type MenuItem struct {
	gorm.Model
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description,omitempty"`
	DiningHallID string    `gorm:"size:32;index;uniqueIndex:idx_menu_dedup" json:"dining_hall_id"`
	MealType     string    `gorm:"size:16;uniqueIndex:idx_menu_dedup" json:"meal_type"`
	MenuDate     time.Time `gorm:"index;uniqueIndex:idx_menu_dedup" json:"menu_date"`
	Category     string    `json:"category"`
	NameKey      string    `gorm:"uniqueIndex:idx_menu_dedup" json:"-"`

	// Nutrition is unknown for most scraped items; nil means unset.
	Calories *int `json:"calories,omitempty"`
	Protein  *int `json:"protein,omitempty"`
	Carbs    *int `json:"carbs,omitempty"`
	Fat      *int `json:"fat,omitempty"`

	Tags string `json:"tags"` // comma-separated dietary tags
}

func (m *MenuItem) TagList() []string {
	return SplitList(m.Tags)
}

func (m *MenuItem) SetTags(tags []string) {
	m.Tags = strings.Join(tags, ",")
}

// SplitList splits a comma-separated column into trimmed entries.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

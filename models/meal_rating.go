package models

import (
	"gorm.io/gorm"
)

// MealRating is one user's 1-5 rating of a menu item. One rating per
// (user, item); re-rating updates the existing row.
type MealRating struct {
	gorm.Model
	UserID     uint `gorm:"index;uniqueIndex:idx_user_item;not null" json:"user_id"`
	MenuItemID uint `gorm:"index;uniqueIndex:idx_user_item;not null" json:"menu_item_id"`
	Rating     int  `gorm:"not null" json:"rating"`
}

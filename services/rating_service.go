package services

import (
	"errors"
	"fmt"

	"github.com/JManoj01/UMassDining/config"
	"github.com/JManoj01/UMassDining/models"

	"gorm.io/gorm"
)

type RatingService struct{}

func NewRatingService() *RatingService {
	return &RatingService{}
}

// RateMenuItem records a 1-5 rating, replacing the user's previous rating of
// the same item if there is one.
func (s *RatingService) RateMenuItem(userID, menuItemID uint, rating int) (*models.MealRating, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	var item models.MenuItem
	if err := config.DB.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d not found", menuItemID)
		}
		return nil, err
	}

	var mr models.MealRating
	err := config.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&mr).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mr.UserID = userID
	mr.MenuItemID = menuItemID
	mr.Rating = rating
	if err := config.DB.Save(&mr).Error; err != nil {
		return nil, err
	}
	return &mr, nil
}

func (s *RatingService) ListUserRatings(userID uint) ([]models.MealRating, error) {
	var ratings []models.MealRating
	err := config.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&ratings).Error
	return ratings, err
}

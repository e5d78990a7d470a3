package services

import (
	"errors"
	"strings"

	"github.com/JManoj01/UMassDining/config"
	"github.com/JManoj01/UMassDining/models"

	"gorm.io/gorm"
)

type PreferenceService struct{}

func NewPreferenceService() *PreferenceService {
	return &PreferenceService{}
}

// GetPreferences returns the user's stored preferences, or nil when none
// exist yet (not an error; scoring falls back to popularity).
func (s *PreferenceService) GetPreferences(userID uint) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := config.DB.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpsertPreferences creates or replaces the single preference row per user.
func (s *PreferenceService) UpsertPreferences(userID uint, dietary, disliked, favoriteHalls []string) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := config.DB.Where("user_id = ?", userID).First(&pref).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pref.UserID = userID
	pref.DietaryPreferences = joinList(dietary)
	pref.DislikedIngredients = joinList(disliked)
	pref.FavoriteHalls = joinList(favoriteHalls)

	if err := config.DB.Save(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func joinList(items []string) string {
	clean := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			clean = append(clean, item)
		}
	}
	return strings.Join(clean, ",")
}

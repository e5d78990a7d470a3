package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/JManoj01/UMassDining/config"
	"github.com/JManoj01/UMassDining/models"

	"gorm.io/gorm"
)

const maxRecommendations = 10

// RecommendationDTO is one ranked entry returned to the client. It is never
// persisted; rank order in the slice is the contract.
type RecommendationDTO struct {
	MenuItemID   uint     `json:"menu_item_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	DiningHallID string   `json:"dining_hall_id"`
	MealType     string   `json:"meal_type"`
	Category     string   `json:"category"`
	Calories     *int     `json:"calories,omitempty"`
	Protein      *int     `json:"protein,omitempty"`
	Tags         []string `json:"tags"`
	Score        float64  `json:"score"`
	Reason       string   `json:"reason"`
}

type RecommendationService struct{}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

// CurrentMealType maps wall-clock time to the active meal window.
func CurrentMealType(now time.Time) string {
	mins := now.Hour()*60 + now.Minute()
	switch {
	case mins < 10*60+30:
		return models.MealBreakfast
	case mins < 16*60+30:
		return models.MealLunch
	default:
		return models.MealDinner
	}
}

// ScoreItem computes the personalized score for one item, clamped to
// [0, 100]. Nil rating averages mean "no history" and contribute nothing.
func ScoreItem(item models.MenuItem, prefs *models.UserPreference, userCategoryAvg, itemAvg *float64) float64 {
	score := 50.0

	tags := item.TagList()
	for _, pref := range prefs.DietaryList() {
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), strings.ToLower(pref)) {
				score += 10
				break
			}
		}
	}

	name := strings.ToLower(item.Name)
	desc := strings.ToLower(item.Description)
	for _, disliked := range prefs.DislikedList() {
		d := strings.ToLower(disliked)
		if strings.Contains(name, d) || strings.Contains(desc, d) {
			score -= 30
		}
	}

	for _, hall := range prefs.FavoriteHallList() {
		if hall == item.DiningHallID {
			score += 15
			break
		}
	}

	if userCategoryAvg != nil {
		score += (*userCategoryAvg - 3) * 10
	}

	if itemAvg != nil {
		score += *itemAvg * 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// RecommendationReason buckets a final score into the phrase shown to users.
func RecommendationReason(score float64) string {
	switch {
	case score >= 80:
		return "Highly recommended based on your preferences"
	case score >= 60:
		return "Good match for your dietary preferences"
	case score >= 40:
		return "Popular choice at this dining hall"
	default:
		return "Available option"
	}
}

// RankItems scores and orders the candidate items for one user. Sorting is
// stable so equal scores keep menu order. At most maxRecommendations entries
// are returned.
func RankItems(items []models.MenuItem, prefs *models.UserPreference, userCategoryAvg map[string]float64, itemAvg map[uint]float64, itemCount map[uint]int64) []RecommendationDTO {
	recs := make([]RecommendationDTO, 0, len(items))
	for _, item := range items {
		var score float64
		if prefs == nil {
			score = popularityScore(item.ID, itemAvg, itemCount)
		} else {
			score = ScoreItem(item, prefs, avgPtr(userCategoryAvg, item.Category), avgPtr(itemAvg, item.ID))
		}
		recs = append(recs, toRecommendationDTO(item, score))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// popularityScore is the guest ranking: aggregate rating scaled up, plus a
// bonus per rating received.
func popularityScore(itemID uint, itemAvg map[uint]float64, itemCount map[uint]int64) float64 {
	score := 50.0
	if avg, ok := itemAvg[itemID]; ok {
		score = avg * 10
	}
	return score + float64(itemCount[itemID])*2
}

// GetRecommendations ranks today's menu in the current meal window for a
// user. A nil userID (or a user without stored preferences) takes the
// popularity path.
func (s *RecommendationService) GetRecommendations(userID *uint) ([]RecommendationDTO, error) {
	now := time.Now()
	today := MenuDate(now)
	mealType := CurrentMealType(now)

	var items []models.MenuItem
	if err := config.DB.
		Where("menu_date = ? AND meal_type = ?", today, mealType).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []RecommendationDTO{}, nil
	}

	itemAvg, itemCount, err := ratingAggregates(items)
	if err != nil {
		return nil, err
	}

	var prefs *models.UserPreference
	var catAvg map[string]float64
	if userID != nil {
		var p models.UserPreference
		err := config.DB.Where("user_id = ?", *userID).First(&p).Error
		switch {
		case err == nil:
			prefs = &p
		case errors.Is(err, gorm.ErrRecordNotFound):
			// popularity fallback
		default:
			return nil, err
		}

		if prefs != nil {
			if catAvg, err = userCategoryAverages(*userID); err != nil {
				return nil, err
			}
		}
	}

	return RankItems(items, prefs, catAvg, itemAvg, itemCount), nil
}

// ratingAggregates loads per-item average rating and rating count for the
// candidate set in one query.
func ratingAggregates(items []models.MenuItem) (map[uint]float64, map[uint]int64, error) {
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	var rows []struct {
		MenuItemID uint
		Avg        float64
		Cnt        int64
	}
	err := config.DB.Model(&models.MealRating{}).
		Select("menu_item_id, AVG(rating) AS avg, COUNT(*) AS cnt").
		Where("menu_item_id IN ?", ids).
		Group("menu_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	avg := make(map[uint]float64, len(rows))
	count := make(map[uint]int64, len(rows))
	for _, r := range rows {
		avg[r.MenuItemID] = r.Avg
		count[r.MenuItemID] = r.Cnt
	}
	return avg, count, nil
}

// userCategoryAverages is the user's historical average rating per menu
// category, across all dates.
func userCategoryAverages(userID uint) (map[string]float64, error) {
	var rows []struct {
		Category string
		Avg      float64
	}
	err := config.DB.Table("meal_ratings").
		Select("menu_items.category, AVG(meal_ratings.rating) AS avg").
		Joins("JOIN menu_items ON menu_items.id = meal_ratings.menu_item_id").
		Where("meal_ratings.user_id = ? AND meal_ratings.deleted_at IS NULL", userID).
		Group("menu_items.category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.Category] = r.Avg
	}
	return out, nil
}

func toRecommendationDTO(item models.MenuItem, score float64) RecommendationDTO {
	return RecommendationDTO{
		MenuItemID:   item.ID,
		Name:         item.Name,
		Description:  item.Description,
		DiningHallID: item.DiningHallID,
		MealType:     item.MealType,
		Category:     item.Category,
		Calories:     item.Calories,
		Protein:      item.Protein,
		Tags:         item.TagList(),
		Score:        score,
		Reason:       RecommendationReason(score),
	}
}

func avgPtr[K comparable](m map[K]float64, key K) *float64 {
	if v, ok := m[key]; ok {
		return &v
	}
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JManoj01/UMassDining/config"
	"github.com/JManoj01/UMassDining/models"
)

const menuCacheTTL = 10 * time.Minute

type MenuService struct{}

func NewMenuService() *MenuService {
	return &MenuService{}
}

// GormMenuStore backs MenuStore with the shared database handle.
type GormMenuStore struct{}

func NewGormMenuStore() *GormMenuStore {
	return &GormMenuStore{}
}

func (s *GormMenuStore) ExistsByDate(date time.Time) (bool, error) {
	var count int64
	err := config.DB.Model(&models.MenuItem{}).
		Where("menu_date = ?", date).
		Count(&count).Error
	return count > 0, err
}

// SaveAll writes one run's items in a single transaction so a failed run
// leaves no partial menu behind.
func (s *GormMenuStore) SaveAll(items []models.MenuItem) error {
	return config.DB.Create(&items).Error
}

func menuCacheKey(date time.Time) string {
	return "menu:today:" + date.Format("2006-01-02")
}

// GetTodaysMenu returns today's full menu, served from Redis when the cache
// is warm. Cache misses and Redis outages both fall through to the DB.
func (s *MenuService) GetTodaysMenu() ([]models.MenuItem, error) {
	today := Today()

	if config.Redis != nil {
		ctx := context.Background()
		if cached, err := config.Redis.Get(ctx, menuCacheKey(today)).Result(); err == nil {
			var items []models.MenuItem
			if json.Unmarshal([]byte(cached), &items) == nil {
				return items, nil
			}
		}
	}

	var items []models.MenuItem
	if err := config.DB.
		Where("menu_date = ?", today).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}

	if config.Redis != nil {
		if data, err := json.Marshal(items); err == nil {
			config.Redis.Set(context.Background(), menuCacheKey(today), data, menuCacheTTL)
		}
	}
	return items, nil
}

// InvalidateMenuCache drops the cached menu for a date, called after a
// scrape run writes new items.
func InvalidateMenuCache(date time.Time) {
	if config.Redis != nil {
		config.Redis.Del(context.Background(), menuCacheKey(date))
	}
}

// GetMenuItems queries a date's menu with optional hall and meal filters.
func (s *MenuService) GetMenuItems(date time.Time, hallID, mealType string) ([]models.MenuItem, error) {
	q := config.DB.Where("menu_date = ?", date)
	if hallID != "" {
		q = q.Where("dining_hall_id = ?", hallID)
	}
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}

	var items []models.MenuItem
	err := q.Order("id").Find(&items).Error
	return items, err
}

// SearchMenu matches today's item names case-insensitively.
func (s *MenuService) SearchMenu(query string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := config.DB.
		Where("menu_date = ? AND name ILIKE ?", Today(), "%"+query+"%").
		Order("id").
		Find(&items).Error
	return items, err
}

// CleanupBefore deletes menu items older than the retention cutoff.
func (s *MenuService) CleanupBefore(cutoff time.Time) (int64, error) {
	res := config.DB.
		Where("menu_date < ?", cutoff).
		Delete(&models.MenuItem{})
	return res.RowsAffected, res.Error
}

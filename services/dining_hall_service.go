package services

import (
	"github.com/JManoj01/UMassDining/config"
	"github.com/JManoj01/UMassDining/models"

	"gorm.io/gorm/clause"
)

type DiningHallService struct{}

func NewDiningHallService() *DiningHallService {
	return &DiningHallService{}
}

func (s *DiningHallService) ListHalls() ([]models.DiningHall, error) {
	var halls []models.DiningHall
	err := config.DB.Order("id").Find(&halls).Error
	return halls, err
}

// SeedHalls upserts the configured hall set at startup so fresh databases
// have the four commons before the first scrape.
func (s *DiningHallService) SeedHalls(halls []models.DiningHall) error {
	if len(halls) == 0 {
		return nil
	}
	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&halls).Error
}

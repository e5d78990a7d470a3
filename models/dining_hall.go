package models

// DiningHall is keyed by its URL slug ("worcester", "franklin", …) so the
// scraper and the preference lists can refer to halls without a join.
type DiningHall struct {
	ID        string `gorm:"primaryKey;size:32" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Location  string `json:"location"`
	Specialty string `json:"specialty"`
	MenuURL   string `json:"menu_url"`
}

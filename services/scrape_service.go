package services

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/JManoj01/UMassDining/models"

	"github.com/PuerkitoBio/goquery"
)

const (
	scrapeUserAgent = "UMass Dining Recommendation Bot/1.0"
	scrapeTimeout   = 30 * time.Second
	hallPause       = 2 * time.Second
	blockSelector   = ".menu-section, .meal-section, .food-item, p, li"
	diningBaseURL   = "https://umassdining.com/locations-menus"
)

// MenuStore is the slice of persistence the coordinator needs.
type MenuStore interface {
	ExistsByDate(date time.Time) (bool, error)
	SaveAll(items []models.MenuItem) error
}

// ScrapeService fetches every configured hall's menu page once a day and
// persists the extracted items in one batch.
type ScrapeService struct {
	client *http.Client
	store  MenuStore
	halls  []models.DiningHall
	pause  time.Duration
	hub    *RealtimeHub

	mu sync.Mutex // serializes runs; overlapping triggers fall into the idempotence guard
}

func NewScrapeService(store MenuStore, halls []models.DiningHall, hub *RealtimeHub) *ScrapeService {
	return &ScrapeService{
		client: &http.Client{Timeout: scrapeTimeout},
		store:  store,
		halls:  halls,
		pause:  hallPause,
		hub:    hub,
	}
}

// DefaultDiningHalls is the configured hall set, seeded into the store at
// startup and used for every scrape run.
func DefaultDiningHalls() []models.DiningHall {
	return []models.DiningHall{
		{ID: "worcester", Name: "Worcester Dining Commons", Location: "Northeast", Specialty: "International cuisine", MenuURL: diningBaseURL + "/worcester"},
		{ID: "franklin", Name: "Franklin Dining Commons", Location: "Central", Specialty: "Comfort food", MenuURL: diningBaseURL + "/franklin"},
		{ID: "berkshire", Name: "Berkshire Dining Commons", Location: "Southwest", Specialty: "Late night dining", MenuURL: diningBaseURL + "/berkshire"},
		{ID: "hampshire", Name: "Hampshire Dining Commons", Location: "Southwest", Specialty: "Healthy and sustainable", MenuURL: diningBaseURL + "/hampshire"},
	}
}

// ScrapeAllHalls runs one extraction pass for today. If today's menu already
// exists the run is a no-op. A hall that fails to fetch or parse is logged
// and skipped; the remaining halls still run. The batch save at the end is
// all-or-nothing and its failure aborts the run.
func (s *ScrapeService) ScrapeAllHalls() ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := Today()

	exists, err := s.store.ExistsByDate(today)
	if err != nil {
		return nil, fmt.Errorf("checking existing menu: %w", err)
	}
	if exists {
		log.Println("Menu already exists for today, skipping scrape")
		return nil, nil
	}

	var allItems []models.MenuItem
	for _, hall := range s.halls {
		items, err := s.scrapeHall(hall, today)
		if err != nil {
			log.Printf("Error scraping %s: %v", hall.ID, err)
		} else {
			allItems = append(allItems, items...)
			log.Printf("Scraped %d items from %s", len(items), hall.ID)
		}

		// Rate limiting, applied after failures too.
		time.Sleep(s.pause)
	}

	if len(allItems) == 0 {
		return nil, nil
	}

	if err := s.store.SaveAll(allItems); err != nil {
		return nil, fmt.Errorf("saving menu items: %w", err)
	}
	log.Printf("Saved %d total menu items", len(allItems))

	InvalidateMenuCache(today)
	if s.hub != nil {
		s.hub.BroadcastMenuUpdate(today, len(allItems))
	}

	return allItems, nil
}

func (s *ScrapeService) scrapeHall(hall models.DiningHall, date time.Time) ([]models.MenuItem, error) {
	blocks, err := s.fetchBlocks(hall.MenuURL)
	if err != nil {
		return nil, err
	}
	return ExtractMenuItems(hall.ID, blocks, date), nil
}

// fetchBlocks downloads a menu page and flattens it into the ordered text
// blocks the extractor walks.
func (s *ScrapeService) fetchBlocks(url string) ([]string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks, nil
}

// MenuDate truncates a moment to midnight in its own location, the form
// every MenuItem.MenuDate is stored and queried in. Callers that also derive
// a meal window must derive it from the same moment, or the window and the
// date disagree near the UTC day rollover.
func MenuDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Today is MenuDate of the current wall clock.
func Today() time.Time {
	return MenuDate(time.Now())
}

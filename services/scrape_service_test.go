package services

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JManoj01/UMassDining/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMenuStore struct {
	exists    bool
	existsErr error
	saveErr   error
	saved     [][]models.MenuItem
}

func (f *fakeMenuStore) ExistsByDate(time.Time) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeMenuStore) SaveAll(items []models.MenuItem) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, items)
	f.exists = true // a saved batch is what ExistsByDate would find
	return nil
}

func menuPage(blocks ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><ul>"))
		for _, b := range blocks {
			_, _ = w.Write([]byte("<li>" + b + "</li>"))
		}
		_, _ = w.Write([]byte("</ul></body></html>"))
	}
}

func newTestScraper(store MenuStore, halls []models.DiningHall) *ScrapeService {
	s := NewScrapeService(store, halls, nil)
	s.pause = 0
	return s
}

func TestScrapeAllHalls(t *testing.T) {
	worcester := httptest.NewServer(menuPage("Lunch", "Grilled Chicken Sandwich", "Garden Vegetable Fried Rice"))
	defer worcester.Close()
	franklin := httptest.NewServer(menuPage("Dinner", "Baked Salmon Fillet"))
	defer franklin.Close()

	store := &fakeMenuStore{}
	scraper := newTestScraper(store, []models.DiningHall{
		{ID: "worcester", MenuURL: worcester.URL},
		{ID: "franklin", MenuURL: franklin.URL},
	})

	items, err := scraper.ScrapeAllHalls()
	require.NoError(t, err)
	require.Len(t, items, 3)

	// One batch write containing the union of both halls.
	require.Len(t, store.saved, 1)
	assert.Equal(t, items, store.saved[0])

	assert.Equal(t, "worcester", items[0].DiningHallID)
	assert.Equal(t, models.MealLunch, items[0].MealType)
	assert.Equal(t, "franklin", items[2].DiningHallID)
	assert.Equal(t, models.MealDinner, items[2].MealType)
}

func TestScrapeAllHallsIdempotent(t *testing.T) {
	var fetches int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&fetches, 1)
		menuPage("Steamed Rice")(w, r)
	}))
	defer server.Close()

	store := &fakeMenuStore{exists: true}
	scraper := newTestScraper(store, []models.DiningHall{{ID: "worcester", MenuURL: server.URL}})

	items, err := scraper.ScrapeAllHalls()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, store.saved, "no writes when today's menu already exists")
	assert.Zero(t, atomic.LoadInt64(&fetches), "no network work when today's menu already exists")
}

func TestScrapeAllHallsIsolatesHallFailures(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()
	healthy := httptest.NewServer(menuPage("Dinner", "Roasted Turkey Breast"))
	defer healthy.Close()

	store := &fakeMenuStore{}
	scraper := newTestScraper(store, []models.DiningHall{
		{ID: "worcester", MenuURL: broken.URL},
		{ID: "franklin", MenuURL: healthy.URL},
	})

	items, err := scraper.ScrapeAllHalls()
	require.NoError(t, err, "one hall failing must not abort the run")
	require.Len(t, items, 1)
	assert.Equal(t, "franklin", items[0].DiningHallID)
	require.Len(t, store.saved, 1)
}

func TestScrapeAllHallsNoWriteWhenNothingExtracted(t *testing.T) {
	empty := httptest.NewServer(menuPage("Open 7am to 9pm"))
	defer empty.Close()

	store := &fakeMenuStore{}
	scraper := newTestScraper(store, []models.DiningHall{{ID: "worcester", MenuURL: empty.URL}})

	items, err := scraper.ScrapeAllHalls()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, store.saved)
}

func TestScrapeAllHallsSaveFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(menuPage("Dinner", "Steamed Rice"))
	defer server.Close()

	store := &fakeMenuStore{saveErr: assert.AnError}
	scraper := newTestScraper(store, []models.DiningHall{{ID: "worcester", MenuURL: server.URL}})

	_, err := scraper.ScrapeAllHalls()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestScrapeAllHallsSerializesRuns(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		menuPage("Dinner", "Steamed Rice")(w, r)
	}))
	defer server.Close()

	store := &fakeMenuStore{}
	scraper := newTestScraper(store, []models.DiningHall{{ID: "worcester", MenuURL: server.URL}})

	first := make(chan struct{})
	go func() {
		_, _ = scraper.ScrapeAllHalls()
		close(first)
	}()

	second := make(chan struct{})
	go func() {
		_, _ = scraper.ScrapeAllHalls()
		close(second)
	}()

	close(release)
	<-first
	<-second

	// Two concurrent triggers produce exactly one batch write: the run that
	// lost the race finds nothing new to fetch once the winner saved.
	require.Len(t, store.saved, 1)
}

package discovery

import (
	"fmt"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(events []domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// musicAndTech is 4 Music events priced 100..400 followed by 6 Tech events.
func musicAndTech() []domain.Event {
	var events []domain.Event
	for i, price := range []float64{100, 200, 300, 400} {
		events = append(events, *domain.NewEvent(fmt.Sprintf("m%d", i+1), fmt.Sprintf("Concert %d", i+1), "Music", "Arena", "Pune", day(2025, 3, i+1), price))
	}
	for i := 0; i < 6; i++ {
		events = append(events, *domain.NewEvent(fmt.Sprintf("t%d", i+1), fmt.Sprintf("Meetup %d", i+1), "Tech", "Hub", "Bengaluru", day(2025, 4, i+1), float64(50*(i+1))))
	}
	return events
}

func TestApplyFilters_IdentityWhenInactive(t *testing.T) {
	events := musicAndTech()

	got := ApplyFilters(events, "", domain.AllCategories, domain.Filters{})

	require.Equal(t, ids(events), ids(got))
	got[0].Title = "changed"
	assert.Equal(t, "Concert 1", events[0].Title, "result must not alias the input")
}

func TestApplyFilters_WhitespaceSearchIsInactive(t *testing.T) {
	events := musicAndTech()
	got := ApplyFilters(events, "   ", "", domain.Filters{})
	assert.Len(t, got, len(events))
}

func TestApplyFilters_Criteria(t *testing.T) {
	events := []domain.Event{
		*domain.NewEvent("1", "Jazz Night", "Music", "Grand Hall", "Chennai", day(2025, 5, 10), 500),
		*domain.NewEvent("2", "Go Conference", "Tech", "Expo Centre", "Bengaluru", day(2025, 5, 11), 1500),
		*domain.NewEvent("3", "Street Food Fest", "Food", "Marina Beach", "Chennai", day(2025, 5, 10), 0),
		*domain.NewEvent("4", "Rock Concert", "Music", "Stadium", "Mumbai", day(2025, 6, 1), 900),
		*domain.NewEvent("5", "Untitled", "", "Town Hall", "Delhi", time.Time{}, 100),
	}

	tests := []struct {
		name       string
		searchText string
		category   string
		filters    domain.Filters
		want       []string
	}{
		{"text matches title", "jazz", "all", domain.Filters{}, []string{"1"}},
		{"text matches category", "MUSIC", "all", domain.Filters{}, []string{"1", "4"}},
		{"text matches venue", "marina", "all", domain.Filters{}, []string{"3"}},
		{"text matches city", "chennai", "all", domain.Filters{}, []string{"1", "3"}},
		{"text no match", "opera", "all", domain.Filters{}, []string{}},
		{"category exact", "", "Music", domain.Filters{}, []string{"1", "4"}},
		{"category is case sensitive", "", "music", domain.Filters{}, []string{}},
		{"category surrounding blanks ignored", "", " Music ", domain.Filters{}, []string{"1", "4"}},
		{"empty category is inactive", "", "", domain.Filters{}, []string{"1", "2", "3", "4", "5"}},
		{"text and category intersect", "chennai", "Food", domain.Filters{}, []string{"3"}},
		{"text match but category fails", "jazz", "Tech", domain.Filters{}, []string{}},
		{"date", "", "all", domain.Filters{Date: "2025-05-10"}, []string{"1", "3"}},
		{"invalid date is inactive", "", "all", domain.Filters{Date: "10/05/2025"}, []string{"1", "2", "3", "4", "5"}},
		{"location venue", "", "all", domain.Filters{Location: "grand"}, []string{"1"}},
		{"location city", "", "all", domain.Filters{Location: "chennai"}, []string{"1", "3"}},
		{"location ignores title", "", "all", domain.Filters{Location: "jazz"}, []string{}},
		{"price min only", "", "all", domain.Filters{PriceMin: "600"}, []string{"2", "4"}},
		{"price max only", "", "all", domain.Filters{PriceMax: "100"}, []string{"3", "5"}},
		{"price bounds inclusive", "", "all", domain.Filters{PriceMin: "500", PriceMax: "900"}, []string{"1", "4"}},
		{"non-numeric bound is unbounded", "", "all", domain.Filters{PriceMin: "abc", PriceMax: "100"}, []string{"3", "5"}},
		{"empty bounds are unbounded", "", "all", domain.Filters{PriceMin: "", PriceMax: " "}, []string{"1", "2", "3", "4", "5"}},
		{"all criteria", "concert", "Music", domain.Filters{Date: "2025-06-01", Location: "mumbai", PriceMin: "800", PriceMax: "1000"}, []string{"4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(events, tt.searchText, tt.category, tt.filters)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyFilters_MusicPriceRange(t *testing.T) {
	got := ApplyFilters(musicAndTech(), "", "Music", domain.Filters{PriceMin: "150", PriceMax: "350"})

	require.Len(t, got, 2)
	assert.Equal(t, 200.0, got[0].Price)
	assert.Equal(t, 300.0, got[1].Price)
}

func TestApplyFilters_LocationCaseInsensitive(t *testing.T) {
	events := []domain.Event{*domain.NewEvent("hall", "Gala", "Art", "Grand Hall", "Chennai", day(2025, 1, 1), 10)}

	got := ApplyFilters(events, "", "all", domain.Filters{Location: "chennai"})

	assert.Equal(t, []string{"hall"}, ids(got))
}

func TestApplyFilters_DateIgnoresRuntimeZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	pst := time.FixedZone("PST", -8*3600)
	events := []domain.Event{
		*domain.NewEvent("ist-midnight", "A", "Art", "V", "C", time.Date(2025, 7, 4, 0, 0, 0, 0, ist), 1),
		*domain.NewEvent("pst-late", "B", "Art", "V", "C", time.Date(2025, 7, 4, 23, 30, 0, 0, pst), 1),
		*domain.NewEvent("utc-next", "C", "Art", "V", "C", time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC), 1),
	}

	prev := time.Local
	t.Cleanup(func() { time.Local = prev })
	for _, loc := range []*time.Location{time.UTC, ist, pst} {
		time.Local = loc
		got := ApplyFilters(events, "", "all", domain.Filters{Date: "2025-07-04"})
		assert.Equal(t, []string{"ist-midnight", "pst-late"}, ids(got), "local zone %s", loc)
	}
}

func TestApplyFilters_Subset(t *testing.T) {
	events := musicAndTech()
	member := make(map[string]bool)
	for _, e := range events {
		member[e.ID] = true
	}

	criteria := []struct {
		text, category string
		f              domain.Filters
	}{
		{"", "all", domain.Filters{}},
		{"concert", "all", domain.Filters{}},
		{"", "Tech", domain.Filters{PriceMax: "150"}},
		{"hub", "Music", domain.Filters{}},
		{"", "all", domain.Filters{Date: "2025-04-03", Location: "bengaluru"}},
	}
	for _, c := range criteria {
		got := ApplyFilters(events, c.text, c.category, c.f)
		assert.LessOrEqual(t, len(got), len(events))
		for _, e := range got {
			assert.True(t, member[e.ID])
		}
	}
}

func TestApplyFilters_EmptyInput(t *testing.T) {
	got := ApplyFilters(nil, "x", "Music", domain.Filters{PriceMin: "1"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByCategorySlug(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Category: "Music"},
		{ID: "2", Category: "music"},
		{ID: "3", Category: "Tech"},
		{ID: "4"},
	}
	assert.Equal(t, []string{"1", "2"}, ids(FilterByCategorySlug(events, "music")))
	assert.Empty(t, FilterByCategorySlug(events, "sports"))
}

func TestFilterByCategorySlug_OtherAgreesWithAggregate(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Category: "Other"},
		{ID: "2"},
		{ID: "3", Category: "  "},
		{ID: "4", Category: "Music"},
	}

	var other domain.CategorySummary
	for _, c := range AggregateCategories(events) {
		if c.Slug == "other" {
			other = c
		}
	}
	explored := FilterByCategorySlug(events, other.Slug)

	assert.Equal(t, []string{"1", "2", "3"}, ids(explored))
	assert.Equal(t, other.Count, len(explored))
}

func TestFilterByStatus(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Status: "approved"},
		{ID: "2", Status: "pending"},
		{ID: "3", Status: "approved"},
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterByStatus(events, "all")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterByStatus(events, "")))
	assert.Equal(t, []string{"1", "3"}, ids(FilterByStatus(events, "approved")))
	assert.Empty(t, FilterByStatus(events, "suspended"))
}

func TestFilterByOrganizer(t *testing.T) {
	events := []domain.Event{
		{ID: "1", OrganizerID: "org-1"},
		{ID: "2", OrganizerID: "org-2"},
		{ID: "3"},
	}
	assert.Equal(t, []string{"1"}, ids(FilterByOrganizer(events, "org-1")))
	assert.Empty(t, FilterByOrganizer(events, ""))
}

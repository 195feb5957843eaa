package ical

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"eventhub/internal/domain"
)

const productID = "-//eventhub//event discovery//EN"

// Export renders events as a published iCalendar feed. Events without a start date are skipped;
// events without a start time become all-day entries.
func Export(events []domain.Event, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	for _, e := range events {
		if e.StartDate.IsZero() {
			continue
		}
		ve := cal.AddEvent(e.ID + "@eventhub")
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		if loc := location(e); loc != "" {
			ve.SetLocation(loc)
		}
		if desc := description(e); desc != "" {
			ve.SetDescription(desc)
		}
		if e.StartTime == "" {
			ve.SetAllDayStartAt(e.StartDate)
		} else {
			ve.SetStartAt(e.StartsAt())
		}
		if e.Category != "" {
			ve.AddProperty(ics.ComponentPropertyCategories, e.Category)
		}
	}
	return cal.Serialize()
}

func location(e domain.Event) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{e.VenueName, e.City} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func description(e domain.Event) string {
	desc := strings.TrimSpace(e.Description)
	if e.Price <= 0 {
		return desc
	}
	price := fmt.Sprintf("Price: %.2f", e.Price)
	if desc == "" {
		return price
	}
	return desc + "\n" + price
}

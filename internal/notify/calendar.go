package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const calendarRenderURL = "https://calendar.google.com/calendar/render"

// CalendarEvent carries the slot and venue details for an invite link.
type CalendarEvent struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
	CourtName string
	Address   string
	Student   string
}

// CalendarLink builds a Google Calendar "add event" URL for the booked slot.
// Times are emitted as floating wall-clock values, matching how the schedule
// itself is expressed.
func CalendarLink(ev CalendarEvent) string {
	title := fmt.Sprintf("網球課 - %s", ev.Student)
	details := fmt.Sprintf("學員：%s\n地點：%s", ev.Student, ev.CourtName)

	location := ev.Address
	if location == "" {
		location = ev.CourtName
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", title)
	q.Set("dates", fmt.Sprintf("%s/%s",
		calendarStamp(ev.Date, ev.StartTime),
		calendarStamp(ev.Date, ev.EndTime)))
	q.Set("details", details)
	q.Set("location", location)

	return calendarRenderURL + "?" + q.Encode()
}

// calendarStamp converts "2026-01-05" + "18:00" into "20260105T180000".
// A "24:00" end rolls over to midnight of the next day.
func calendarStamp(date, clock string) string {
	if clock == "24:00" {
		if t, err := time.Parse("2006-01-02", date); err == nil {
			date = t.AddDate(0, 0, 1).Format("2006-01-02")
		}
		clock = "00:00"
	}
	d := strings.ReplaceAll(date, "-", "")
	c := strings.ReplaceAll(clock, ":", "")
	return d + "T" + c + "00"
}

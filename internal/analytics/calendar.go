package analytics

import (
	"fmt"
	"sort"
	"time"

	"CareerCompass-backend/internal/model"
)

var (
	// EventKindInterview tags calendar events coming from scheduled interviews
	EventKindInterview = "interview"
	// EventKindMilestone tags calendar events coming from career plan milestones
	EventKindMilestone = "milestone"
)

// CalendarEvent is one entry of the merged calendar view. Company and Status
// are set for interview events, Plan for milestone events.
type CalendarEvent struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Kind    string    `json:"kind"`
	Company string    `json:"company,omitempty"`
	Status  string    `json:"status,omitempty"`
	Plan    string    `json:"plan,omitempty"`
}

// ProjectCalendar merges scheduled interviews and incomplete plan milestones
// into a single date-sorted event list for calendar rendering.
func ProjectCalendar(apps []model.Application, plans []model.CareerPlan) []CalendarEvent {
	events := []CalendarEvent{}

	for _, a := range apps {
		if a.InterviewDate == nil {
			continue
		}
		events = append(events, CalendarEvent{
			ID:      fmt.Sprintf("application-%d", a.ID),
			Title:   fmt.Sprintf("Interview with %s", a.Company),
			Date:    *a.InterviewDate,
			Kind:    EventKindInterview,
			Company: a.Company,
			Status:  a.Status,
		})
	}

	for _, p := range plans {
		for _, m := range p.Milestones {
			if m.Completed {
				continue
			}
			events = append(events, CalendarEvent{
				ID:    fmt.Sprintf("milestone-%d", m.ID),
				Title: m.Title,
				Date:  m.TargetDate,
				Kind:  EventKindMilestone,
				Plan:  p.Title,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events
}

// SameCalendarDay reports whether two timestamps fall on the same calendar
// date, ignoring time of day. One millisecond across midnight is a different
// day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EventsOnDay filters events to those falling on the given calendar date.
func EventsOnDay(events []CalendarEvent, day time.Time) []CalendarEvent {
	matched := []CalendarEvent{}
	for _, e := range events {
		if SameCalendarDay(e.Date, day) {
			matched = append(matched, e)
		}
	}
	return matched
}

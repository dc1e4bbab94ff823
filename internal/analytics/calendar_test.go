package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"CareerCompass-backend/internal/model"
)

func interviewApp(id uint, company string, at time.Time) model.Application {
	return model.Application{
		ID: id,
		EditableApplicationInfo: model.EditableApplicationInfo{
			Company:       company,
			Position:      "Engineer",
			Status:        model.StatusTechnical,
			AppliedDate:   at.AddDate(0, 0, -14),
			InterviewDate: &at,
		},
	}
}

func TestProjectCalendar_MergesAndSorts(t *testing.T) {
	d1 := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 7, 3, 14, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)

	apps := []model.Application{
		interviewApp(1, "Acme", d2),
		interviewApp(2, "Beta", d1),
		{ID: 3, EditableApplicationInfo: model.EditableApplicationInfo{Company: "NoDate", Status: model.StatusApplied}},
	}
	plans := []model.CareerPlan{
		{
			Title: "Become a backend engineer",
			Milestones: []model.Milestone{
				{ID: 7, Title: "Finish Go course", TargetDate: d3},
				{ID: 8, Title: "Already done", TargetDate: d3, Completed: true},
			},
		},
	}

	events := ProjectCalendar(apps, plans)

	// application without interview date and completed milestone are excluded
	assert.Len(t, events, 3)
	assert.Equal(t, "application-2", events[0].ID)
	assert.Equal(t, "milestone-7", events[1].ID)
	assert.Equal(t, "application-1", events[2].ID)

	assert.Equal(t, EventKindInterview, events[0].Kind)
	assert.Equal(t, "Beta", events[0].Company)
	assert.Equal(t, model.StatusTechnical, events[0].Status)

	assert.Equal(t, EventKindMilestone, events[1].Kind)
	assert.Equal(t, "Become a backend engineer", events[1].Plan)
	assert.Equal(t, "Finish Go course", events[1].Title)
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, 7, 1, 23, 59, 59, 999000000, time.UTC)
	justPastMidnight := night.Add(time.Millisecond)

	assert.True(t, SameCalendarDay(morning, night))
	assert.False(t, SameCalendarDay(night, justPastMidnight))
}

func TestEventsOnDay_GroupsByCalendarDate(t *testing.T) {
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	events := ProjectCalendar([]model.Application{
		interviewApp(1, "Acme", day.Add(9*time.Hour)),
		interviewApp(2, "Beta", day.Add(17*time.Hour)),
		interviewApp(3, "Gamma", day.AddDate(0, 0, 1)),
	}, nil)

	sameDay := EventsOnDay(events, day.Add(12*time.Hour))
	assert.Len(t, sameDay, 2)

	nextDay := EventsOnDay(events, day.AddDate(0, 0, 1))
	assert.Len(t, nextDay, 1)
	assert.Equal(t, "Gamma", nextDay[0].Company)
}

func TestProjectCalendar_Empty(t *testing.T) {
	assert.Empty(t, ProjectCalendar(nil, nil))
	assert.Empty(t, EventsOnDay(nil, time.Now()))
}

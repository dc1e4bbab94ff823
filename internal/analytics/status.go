// Package analytics contains pure aggregation functions computing derived
// views over a snapshot of a user's applications and career plans. Nothing
// in this package touches the database or caches results; every view is
// recomputed from the collection passed in.
package analytics

import (
	"math"
	"time"

	"CareerCompass-backend/internal/model"
)

// StatusCounts maps an application status to the number of applications
// currently holding it. Missing statuses read as zero.
type StatusCounts map[string]int

// CountByStatus tallies the snapshot by status in a single pass.
// An empty snapshot yields an empty map.
func CountByStatus(apps []model.Application) StatusCounts {
	counts := StatusCounts{}
	for _, a := range apps {
		counts[a.Status]++
	}
	return counts
}

// WeeklyStats partitions applications by applied date into two week-wide
// windows anchored at the reference time.
type WeeklyStats struct {
	TotalThisWeek      int `json:"total_this_week"`
	TotalLastWeek      int `json:"total_last_week"`
	ChangePercent      int `json:"change_percent"`
	OffersThisWeek     int `json:"offers_this_week"`
	InterviewsThisWeek int `json:"interviews_this_week"`
	RejectionsThisWeek int `json:"rejections_this_week"`
}

// ComputeWeeklyStats derives weekly trend numbers from the snapshot.
// "This week" is applied_date within [now-7d, now], "last week" is the seven
// days before that. InterviewsThisWeek sums the phone-screen, technical and
// onsite counts of the this-week partition, there is no single "interview"
// status.
func ComputeWeeklyStats(apps []model.Application, now time.Time) WeeklyStats {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	thisWeek := StatusCounts{}
	lastWeekTotal := 0
	thisWeekTotal := 0

	for _, a := range apps {
		d := a.AppliedDate
		switch {
		case !d.Before(weekAgo) && !d.After(now):
			thisWeek[a.Status]++
			thisWeekTotal++
		case !d.Before(twoWeeksAgo) && d.Before(weekAgo):
			lastWeekTotal++
		}
	}

	return WeeklyStats{
		TotalThisWeek:      thisWeekTotal,
		TotalLastWeek:      lastWeekTotal,
		ChangePercent:      percentChange(thisWeekTotal, lastWeekTotal),
		OffersThisWeek:     thisWeek[model.StatusOffer],
		InterviewsThisWeek: thisWeek[model.StatusPhoneScreen] + thisWeek[model.StatusTechnical] + thisWeek[model.StatusOnsite],
		RejectionsThisWeek: thisWeek[model.StatusRejected],
	}
}

// InterviewSuccessRate returns offers over interviews for the current week
// as a rounded percentage, 0 when there were no interviews.
func InterviewSuccessRate(ws WeeklyStats) int {
	if ws.InterviewsThisWeek == 0 {
		return 0
	}
	return int(math.Round(float64(ws.OffersThisWeek) / float64(ws.InterviewsThisWeek) * 100))
}

// percentChange follows the dashboard convention: a jump from zero counts as
// 100%, and two empty weeks count as no change.
func percentChange(thisWeek, lastWeek int) int {
	if lastWeek == 0 {
		if thisWeek > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(thisWeek-lastWeek) / float64(lastWeek) * 100))
}

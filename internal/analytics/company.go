package analytics

import (
	"math"
	"sort"

	"CareerCompass-backend/internal/model"
)

// topCompanies caps the ranking length for the dashboard chart.
const topCompanies = 10

// displayNameMax caps the chart label length. FullName always keeps the raw
// company string for lookups.
const displayNameMax = 15

// CompanyStat aggregates one company's applications and responses.
type CompanyStat struct {
	Company      string `json:"company"`
	FullName     string `json:"full_name"`
	Total        int    `json:"total"`
	Responses    int    `json:"responses"`
	ResponseRate int    `json:"response_rate"`
}

// IsResponse reports whether an application's status counts as the company
// having responded: anything beyond "applied" that is not a rejection.
func IsResponse(status string) bool {
	return status != model.StatusApplied && status != model.StatusRejected
}

// RankCompanies groups applications by exact company string (case-sensitive,
// no normalization), computes a per-company response rate and returns at
// most topCompanies entries sorted descending by total. The sort is stable,
// ties keep encounter order.
func RankCompanies(apps []model.Application) []CompanyStat {
	byName := map[string]int{}
	stats := []CompanyStat{}

	for _, a := range apps {
		i, ok := byName[a.Company]
		if !ok {
			i = len(stats)
			byName[a.Company] = i
			stats = append(stats, CompanyStat{
				Company:  truncateName(a.Company),
				FullName: a.Company,
			})
		}
		stats[i].Total++
		if IsResponse(a.Status) {
			stats[i].Responses++
		}
	}

	for i := range stats {
		stats[i].ResponseRate = int(math.Round(float64(stats[i].Responses) / float64(stats[i].Total) * 100))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})

	if len(stats) > topCompanies {
		stats = stats[:topCompanies]
	}
	return stats
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= displayNameMax {
		return name
	}
	return string(runes[:displayNameMax]) + "..."
}

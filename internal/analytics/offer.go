package analytics

import (
	"math"

	"CareerCompass-backend/internal/model"
)

// OfferTiming reports how long one offer took from application to result.
type OfferTiming struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	DaysToOffer int    `json:"days_to_offer"`
}

// OfferTimings computes elapsed days between applied_date and updated_at for
// every application currently in offer status. The record's last-update
// timestamp stands in for "when the offer arrived"; editing an offer record
// later shifts the number, which is accepted. Days are floored and never
// reported below 1, even for identical or inverted timestamps.
func OfferTimings(apps []model.Application) []OfferTiming {
	timings := []OfferTiming{}
	for _, a := range apps {
		if a.Status != model.StatusOffer {
			continue
		}
		days := int(math.Floor(a.UpdatedAt.Sub(a.AppliedDate).Hours() / 24))
		if days < 1 {
			days = 1
		}
		timings = append(timings, OfferTiming{
			Company:     a.Company,
			Position:    a.Position,
			DaysToOffer: days,
		})
	}
	return timings
}

// AverageDaysToOffer returns the rounded mean over all offer timings,
// 0 when there are none.
func AverageDaysToOffer(timings []OfferTiming) int {
	if len(timings) == 0 {
		return 0
	}
	sum := 0
	for _, t := range timings {
		sum += t.DaysToOffer
	}
	return int(math.Round(float64(sum) / float64(len(timings))))
}

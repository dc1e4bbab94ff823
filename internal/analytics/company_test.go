package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"CareerCompass-backend/internal/model"
)

func companyApp(company, status string) model.Application {
	return model.Application{
		EditableApplicationInfo: model.EditableApplicationInfo{
			Company:     company,
			Position:    "Engineer",
			Status:      status,
			AppliedDate: time.Now(),
		},
	}
}

func TestRankCompanies_VolumeAndResponseRate(t *testing.T) {
	apps := []model.Application{}
	// 15 applications to Acme, 3 of which got a response
	for i := 0; i < 12; i++ {
		apps = append(apps, companyApp("Acme", model.StatusApplied))
	}
	for i := 0; i < 3; i++ {
		apps = append(apps, companyApp("Acme", model.StatusPhoneScreen))
	}
	// 5 applications to Beta, all responded
	for i := 0; i < 5; i++ {
		apps = append(apps, companyApp("Beta", model.StatusOffer))
	}

	stats := RankCompanies(apps)

	assert.Len(t, stats, 2)
	assert.Equal(t, "Acme", stats[0].FullName)
	assert.Equal(t, 15, stats[0].Total)
	assert.Equal(t, 3, stats[0].Responses)
	assert.Equal(t, 20, stats[0].ResponseRate)
	assert.Equal(t, "Beta", stats[1].FullName)
	assert.Equal(t, 5, stats[1].Total)
	assert.Equal(t, 100, stats[1].ResponseRate)
}

func TestRankCompanies_TiesKeepEncounterOrder(t *testing.T) {
	apps := []model.Application{
		companyApp("Zeta", model.StatusApplied),
		companyApp("Alpha", model.StatusApplied),
		companyApp("Mid", model.StatusApplied),
		companyApp("Mid", model.StatusApplied),
	}

	stats := RankCompanies(apps)

	assert.Equal(t, "Mid", stats[0].FullName)
	assert.Equal(t, "Zeta", stats[1].FullName)
	assert.Equal(t, "Alpha", stats[2].FullName)
}

func TestRankCompanies_CaseSensitiveGrouping(t *testing.T) {
	apps := []model.Application{
		companyApp("acme", model.StatusApplied),
		companyApp("Acme", model.StatusApplied),
	}

	stats := RankCompanies(apps)
	assert.Len(t, stats, 2)
}

func TestRankCompanies_TruncatesToTopTen(t *testing.T) {
	apps := []model.Application{}
	for i := 0; i < 12; i++ {
		apps = append(apps, companyApp(fmt.Sprintf("Company %d", i), model.StatusApplied))
	}

	stats := RankCompanies(apps)
	assert.Len(t, stats, 10)
}

func TestRankCompanies_LongNameKeepsFullName(t *testing.T) {
	name := "Extremely Long Company Name Incorporated"
	stats := RankCompanies([]model.Application{companyApp(name, model.StatusApplied)})

	assert.Equal(t, name, stats[0].FullName)
	assert.NotEqual(t, name, stats[0].Company)
	assert.Equal(t, "Extremely Long ...", stats[0].Company)
}

func TestRankCompanies_Empty(t *testing.T) {
	assert.Empty(t, RankCompanies(nil))
}

func TestIsResponse(t *testing.T) {
	assert.False(t, IsResponse(model.StatusApplied))
	assert.False(t, IsResponse(model.StatusRejected))
	assert.True(t, IsResponse(model.StatusPhoneScreen))
	assert.True(t, IsResponse(model.StatusTechnical))
	assert.True(t, IsResponse(model.StatusOnsite))
	assert.True(t, IsResponse(model.StatusOffer))
}

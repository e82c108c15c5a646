package pages

import (
	"net/url"
	"testing"

	"lull-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
)

func contractID(r ContractRow) string { return r.ID }

func TestBuildContractsUnfiltered(t *testing.T) {
	view := BuildContracts(loadSeed(t).Contracts, ParseContractQuery(url.Values{}), refDate)

	assert.Len(t, view.Rows, 4)
	assert.Equal(t, map[models.ContractStatus]int{
		models.ContractActive:   2,
		models.ContractExpiring: 1,
		models.ContractDraft:    1,
	}, view.Summary.ByStatus)
	assert.Equal(t, "￥4,900,000", view.Summary.ActiveMonthlyLabel)
	assert.Equal(t, "更新期限接近", view.Rows[1].Status.Label)
}

func TestBuildContractsStatusList(t *testing.T) {
	view := BuildContracts(loadSeed(t).Contracts, ParseContractQuery(url.Values{"status": {"expiring,draft"}}), refDate)
	assert.Equal(t, []string{"CT-2407-0003", "CT-2409-0008"}, ids(view.Rows, contractID))
	assert.True(t, view.Summary.ActiveMonthlyTotal.IsZero())
}

func TestBuildContractsPlannedFuture(t *testing.T) {
	q := ParseContractQuery(url.Values{"status": {"active,expiring,draft"}, "planned": {"future"}})
	view := BuildContracts(loadSeed(t).Contracts, q, refDate)

	// CT-2404-0001 ended on 2025-03-31.
	assert.Equal(t, []string{"CT-2407-0003", "CT-2409-0006", "CT-2409-0008"}, ids(view.Rows, contractID))
}

func TestFilterContractsEndDateInclusive(t *testing.T) {
	records := []models.ContractRecord{{ID: "a", EndDate: "2025-05-01"}, {ID: "b", EndDate: "2025-04-30"}}
	got := FilterContracts(records, ContractQuery{Planned: PlannedFuture}, refDate)
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

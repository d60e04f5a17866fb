package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"creditlens/pkg/contracts/domain"
)

func TestComputeFindings(t *testing.T) {
	f := ComputeFindings(sampleView())

	assert.Equal(t, 45.2, f.Profile.AverageAge)
	assert.Equal(t, 4, f.Profile.MaleCount)
	assert.Equal(t, 66.7, f.Profile.MalePercent)
	assert.Equal(t, 2, f.Profile.FemaleCount)
	assert.Equal(t, 33.3, f.Profile.FemalePercent)
	assert.Equal(t, "own", f.Profile.MostCommonHousing)

	assert.Equal(t, 4171.2, f.Credit.AverageCreditAmount)
	assert.Equal(t, 3964.5, f.Credit.MedianCreditAmount)
	assert.Equal(t, 25.0, f.Credit.AverageDuration)
	assert.Equal(t, "car", f.Credit.MostCommonPurpose)

	assert.Equal(t, 4, f.Risk.WithSavings)
	assert.Equal(t, 4, f.Risk.WithChecking)
	assert.Equal(t, 3, f.Risk.OwnHousingCount)
	assert.Equal(t, 50.0, f.Risk.OwnHousingPercent)
}

func TestComputeFindingsEmptyView(t *testing.T) {
	f := ComputeFindings(nil)

	assert.Zero(t, f.Profile.MaleCount)
	assert.Empty(t, f.Profile.MostCommonHousing)
	assert.Empty(t, f.Credit.MostCommonPurpose)
	assert.Zero(t, f.Risk.OwnHousingPercent)
}

func TestComputeFindingsUnknownAccountsExcluded(t *testing.T) {
	view := []domain.CreditRecord{
		{Sex: "male", Housing: "rent", SavingAccounts: domain.AccountUnknown, CheckingAccount: ""},
		{Sex: "male", Housing: "rent", SavingAccounts: "rich", CheckingAccount: "moderate"},
	}
	f := ComputeFindings(view)

	assert.Equal(t, 1, f.Risk.WithSavings)
	assert.Equal(t, 1, f.Risk.WithChecking)
	assert.Zero(t, f.Risk.OwnHousingCount)
}

func TestModeTieBreaksLexicographically(t *testing.T) {
	assert.Equal(t, "a", mode(map[string]int{"b": 2, "a": 2, "c": 1}))
}

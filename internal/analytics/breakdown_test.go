package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditlens/pkg/contracts/domain"
)

func TestBreakdownBySex(t *testing.T) {
	b, err := BreakdownBy(sampleView(), BySex)
	require.NoError(t, err)

	assert.Equal(t, BySex, b.Field)
	require.Len(t, b.Groups, 2)

	male := b.Groups[0]
	assert.Equal(t, "male", male.Value)
	assert.Equal(t, 4, male.Count)
	assert.Equal(t, 66.7, male.Share)
	assert.Equal(t, 4004.3, male.MeanCreditAmount)
	assert.Equal(t, 21.0, male.MeanDuration)

	female := b.Groups[1]
	assert.Equal(t, "female", female.Value)
	assert.Equal(t, 2, female.Count)
	assert.Equal(t, 33.3, female.Share)
	assert.Equal(t, 4505.0, female.MeanCreditAmount)
	assert.Equal(t, 33.0, female.MeanDuration)
}

func TestBreakdownOrdering(t *testing.T) {
	b, err := BreakdownBy(sampleView(), ByHousing)
	require.NoError(t, err)

	require.Len(t, b.Groups, 3)
	assert.Equal(t, "own", b.Groups[0].Value)
	assert.Equal(t, 3, b.Groups[0].Count)
	assert.Equal(t, "free", b.Groups[1].Value)
	assert.Equal(t, 2, b.Groups[1].Count)
	assert.Equal(t, "rent", b.Groups[2].Value)
	assert.Equal(t, 1, b.Groups[2].Count)
}

func TestBreakdownTiesOrderedByValue(t *testing.T) {
	view := []domain.CreditRecord{
		{Purpose: "car"},
		{Purpose: "business"},
	}
	b, err := BreakdownBy(view, ByPurpose)
	require.NoError(t, err)

	require.Len(t, b.Groups, 2)
	assert.Equal(t, "business", b.Groups[0].Value)
	assert.Equal(t, "car", b.Groups[1].Value)
}

func TestBreakdownByJob(t *testing.T) {
	b, err := BreakdownBy(sampleView(), ByJob)
	require.NoError(t, err)

	require.Len(t, b.Groups, 2)
	assert.Equal(t, "2", b.Groups[0].Value)
	assert.Equal(t, 4, b.Groups[0].Count)
	assert.Equal(t, "1", b.Groups[1].Value)
	assert.Equal(t, 2, b.Groups[1].Count)
}

func TestBreakdownAccountsMapUnknown(t *testing.T) {
	b, err := BreakdownBy(sampleView(), BySavingAccounts)
	require.NoError(t, err)

	require.Len(t, b.Groups, 2)
	assert.Equal(t, "little", b.Groups[0].Value)
	assert.Equal(t, 4, b.Groups[0].Count)
	assert.Equal(t, domain.AccountUnknown, b.Groups[1].Value)
	assert.Equal(t, 2, b.Groups[1].Count)
}

func TestBreakdownUnknownField(t *testing.T) {
	_, err := BreakdownBy(sampleView(), BreakdownField("age"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown breakdown field")
}

func TestBreakdownEmptyView(t *testing.T) {
	b, err := BreakdownBy(nil, BySex)
	require.NoError(t, err)
	assert.Empty(t, b.Groups)
}

func TestBreakdownFieldsCoverAllAxes(t *testing.T) {
	for _, field := range BreakdownFields {
		_, err := BreakdownBy(sampleView(), field)
		assert.NoError(t, err, string(field))
	}
}

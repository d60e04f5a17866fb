package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditRecordRow(t *testing.T) {
	rec := CreditRecord{
		ID:              7,
		Age:             42,
		Sex:             SexFemale,
		Job:             2,
		Housing:         HousingRent,
		SavingAccounts:  "little",
		CheckingAccount: "",
		CreditAmount:    3500,
		Duration:        24,
		Purpose:         "car",
	}

	row := rec.Row()
	require.Len(t, row, len(Columns))
	assert.Equal(t, []string{"42", "female", "2", "rent", "little", "NA", "3500", "24", "car"}, row)
}

func TestCreditRecordRowUnknownAccounts(t *testing.T) {
	rec := CreditRecord{SavingAccounts: AccountUnknown, CheckingAccount: ""}

	row := rec.Row()
	assert.Equal(t, "NA", row[4])
	assert.Equal(t, "NA", row[5])
}

func TestHasSavings(t *testing.T) {
	assert.True(t, CreditRecord{SavingAccounts: "rich"}.HasSavings())
	assert.False(t, CreditRecord{SavingAccounts: ""}.HasSavings())
	assert.False(t, CreditRecord{SavingAccounts: AccountUnknown}.HasSavings())
}

func TestHasChecking(t *testing.T) {
	assert.True(t, CreditRecord{CheckingAccount: "moderate"}.HasChecking())
	assert.False(t, CreditRecord{CheckingAccount: ""}.HasChecking())
	assert.False(t, CreditRecord{CheckingAccount: AccountUnknown}.HasChecking())
}

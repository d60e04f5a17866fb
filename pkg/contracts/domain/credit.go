package domain

import "strconv"

// CreditRecord represents one loan applicant row from the German Credit dataset.
// Records are immutable once loaded; all downstream views are subsets.
type CreditRecord struct {
	ID              int    `json:"id" csv:"Id"`
	Age             int    `json:"age" csv:"Age" validate:"min=0"`
	Sex             string `json:"sex" csv:"Sex" validate:"required"`
	Job             int    `json:"job" csv:"Job" validate:"min=0,max=3"`
	Housing         string `json:"housing" csv:"Housing" validate:"required"`
	SavingAccounts  string `json:"saving_accounts,omitempty" csv:"Saving accounts"`
	CheckingAccount string `json:"checking_account,omitempty" csv:"Checking account"`
	CreditAmount    int64  `json:"credit_amount" csv:"Credit amount" validate:"min=0"`
	Duration        int    `json:"duration" csv:"Duration" validate:"min=1"`
	Purpose         string `json:"purpose" csv:"Purpose" validate:"required"`
}

// Well-known categorical values. The loader does not reject values outside
// these sets; they exist for defaults and for the dashboard filter UI.
const (
	SexMale   = "male"
	SexFemale = "female"

	HousingOwn  = "own"
	HousingRent = "rent"
	HousingFree = "free"

	// AccountUnknown is how absent saving/checking account status is
	// reported downstream. The raw file encodes it as "NA" or an empty cell.
	AccountUnknown = "unknown"
)

// Job category bounds as defined by the dataset codebook
// (0 = unskilled non-resident .. 3 = highly skilled).
const (
	JobMin = 0
	JobMax = 3
)

// Columns is the canonical column order of the dataset and of every
// exported snapshot.
var Columns = []string{
	"Age",
	"Sex",
	"Job",
	"Housing",
	"Saving accounts",
	"Checking account",
	"Credit amount",
	"Duration",
	"Purpose",
}

// HasSavings reports whether the applicant has a known saving account status.
func (r CreditRecord) HasSavings() bool {
	return r.SavingAccounts != "" && r.SavingAccounts != AccountUnknown
}

// HasChecking reports whether the applicant has a known checking account status.
func (r CreditRecord) HasChecking() bool {
	return r.CheckingAccount != "" && r.CheckingAccount != AccountUnknown
}

// Row renders the record in the canonical column order for CSV/Excel export.
// Unknown account fields are exported as "NA" to round-trip the source format.
func (r CreditRecord) Row() []string {
	return []string{
		strconv.Itoa(r.Age),
		r.Sex,
		strconv.Itoa(r.Job),
		r.Housing,
		exportAccount(r.SavingAccounts),
		exportAccount(r.CheckingAccount),
		strconv.FormatInt(r.CreditAmount, 10),
		strconv.Itoa(r.Duration),
		r.Purpose,
	}
}

func exportAccount(v string) string {
	if v == "" || v == AccountUnknown {
		return "NA"
	}
	return v
}

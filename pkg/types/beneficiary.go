package types

// Beneficiary is a loan recipient whose fund utilization is tracked. Phone is
// treated as the natural key but the store does not enforce uniqueness.
type Beneficiary struct {
	Phone      string   `json:"phone" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	State      *string  `json:"state"`
	District   *string  `json:"district"`
	Address    *string  `json:"address"`
	Scheme     *string  `json:"scheme"`
	Bank       *string  `json:"bank"`
	LoanID     *string  `json:"loan_id"`
	LoanAmount *float64 `json:"loan_amount"`
}

// BeneficiaryFilter holds the optional exact-match filters accepted when
// listing beneficiaries.
type BeneficiaryFilter struct {
	State    string `form:"state"`
	District string `form:"district"`
	Phone    string `form:"phone"`
}

func (f BeneficiaryFilter) Map() map[string]any {
	out := make(map[string]any)
	setIfPresent(out, "state", f.State)
	setIfPresent(out, "district", f.District)
	setIfPresent(out, "phone", f.Phone)
	return out
}

func setIfPresent(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

package report

import "sort"

// IRS 1099-NEC reporting thresholds, in dollars.
const (
	// Threshold1099 is the total at or above which a contractor payee
	// requires a 1099-NEC.
	Threshold1099 = 600.0
	// Approaching1099 is the lower inclusive bound of the warning band
	// [500, 600).
	Approaching1099 = 500.0
)

// PayeeFlag is a payee aggregate annotated with its compliance status.
type PayeeFlag struct {
	Payee            string  `json:"payee"`
	TaxID            string  `json:"taxId,omitempty"`
	TotalPayments    float64 `json:"totalPayments"`
	TransactionCount int     `json:"transactionCount"`
	Requires1099     bool    `json:"requires1099"`
	MissingTaxID     bool    `json:"missingTaxId,omitempty"`
}

// ThresholdReport classifies payee aggregates against the 1099 bands.
type ThresholdReport struct {
	Requires1099    []PayeeFlag `json:"requires1099"`
	Approaching1099 []PayeeFlag `json:"approaching1099"`
	MissingTaxIDs   []PayeeFlag `json:"missingTaxIds"`
}

// ClassifyThresholds applies the $600 requires band and the $500–$600
// approaching band to contractor payees. Wage payees never appear here; they
// are W-2, not 1099, and are carried separately by the assembler. Both output
// lists are sorted by total descending with first-seen order breaking ties.
func ClassifyThresholds(payees []*PayeeAggregate) ThresholdReport {
	var out ThresholdReport
	for _, p := range payees {
		if !p.IsContractor {
			continue
		}
		flag := PayeeFlag{
			Payee:            p.Name,
			TaxID:            p.TaxID,
			TotalPayments:    p.Total,
			TransactionCount: p.Count,
		}
		switch {
		case p.Total >= Threshold1099:
			flag.Requires1099 = true
			if p.TaxID == "" {
				flag.MissingTaxID = true
				out.MissingTaxIDs = append(out.MissingTaxIDs, flag)
			}
			out.Requires1099 = append(out.Requires1099, flag)
		case p.Total >= Approaching1099:
			out.Approaching1099 = append(out.Approaching1099, flag)
		}
	}

	sortFlagsByTotal(out.Requires1099)
	sortFlagsByTotal(out.Approaching1099)
	sortFlagsByTotal(out.MissingTaxIDs)
	return out
}

// sortFlagsByTotal sorts descending by total payments. The sort is stable so
// insertion order (first-seen payee) wins ties.
func sortFlagsByTotal(flags []PayeeFlag) {
	sort.SliceStable(flags, func(i, j int) bool {
		return flags[i].TotalPayments > flags[j].TotalPayments
	})
}

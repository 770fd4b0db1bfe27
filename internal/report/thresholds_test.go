package report

import "testing"

func contractor(name string, total float64, taxID string) *PayeeAggregate {
	return &PayeeAggregate{Key: name, Name: name, Total: total, TaxID: taxID, IsContractor: true, Count: 1}
}

func TestThresholdBoundaries(t *testing.T) {
	tests := []struct {
		name            string
		total           float64
		wantRequired    bool
		wantApproaching bool
	}{
		{"exactly 600 requires", 600.00, true, false},
		{"599.99 approaching", 599.99, false, true},
		{"500 lower inclusive bound", 500.00, false, true},
		{"499.99 unflagged", 499.99, false, false},
		{"well over", 15000, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := ClassifyThresholds([]*PayeeAggregate{contractor("P", tt.total, "12-3456789")})
			if got := len(rep.Requires1099) == 1; got != tt.wantRequired {
				t.Errorf("requires1099 presence = %v, want %v", got, tt.wantRequired)
			}
			if got := len(rep.Approaching1099) == 1; got != tt.wantApproaching {
				t.Errorf("approaching1099 presence = %v, want %v", got, tt.wantApproaching)
			}
		})
	}
}

func TestThresholdMissingTaxID(t *testing.T) {
	rep := ClassifyThresholds([]*PayeeAggregate{
		contractor("HasID", 700, "12-3456789"),
		contractor("NoID", 800, ""),
		contractor("UnderNoID", 550, ""), // approaching, so no taxId flag
	})

	if len(rep.MissingTaxIDs) != 1 || rep.MissingTaxIDs[0].Payee != "NoID" {
		t.Fatalf("MissingTaxIDs = %+v, want only NoID", rep.MissingTaxIDs)
	}
	if !rep.MissingTaxIDs[0].MissingTaxID {
		t.Error("MissingTaxID flag not set")
	}
}

func TestThresholdSortStable(t *testing.T) {
	// Descending by total; equal totals keep first-seen order.
	rep := ClassifyThresholds([]*PayeeAggregate{
		contractor("First", 700, "a"),
		contractor("Second", 900, "b"),
		contractor("Tied1", 800, "c"),
		contractor("Tied2", 800, "d"),
	})

	want := []string{"Second", "Tied1", "Tied2", "First"}
	if len(rep.Requires1099) != len(want) {
		t.Fatalf("got %d required payees, want %d", len(rep.Requires1099), len(want))
	}
	for i, name := range want {
		if rep.Requires1099[i].Payee != name {
			t.Errorf("requires1099[%d] = %q, want %q", i, rep.Requires1099[i].Payee, name)
		}
	}
}

func TestThresholdIgnoresNonContractors(t *testing.T) {
	agg := contractor("Employee", 5000, "")
	agg.IsContractor = false
	rep := ClassifyThresholds([]*PayeeAggregate{agg})

	if len(rep.Requires1099)+len(rep.Approaching1099)+len(rep.MissingTaxIDs) != 0 {
		t.Errorf("non-contractor payee was threshold-classified: %+v", rep)
	}
}

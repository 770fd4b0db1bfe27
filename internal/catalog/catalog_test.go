package catalog

import "testing"

func TestLookupKnownCategory(t *testing.T) {
	c := Default()

	meta := c.Lookup(CategoryContractLabor)
	if meta.Line != "11" {
		t.Errorf("Contract Labor line = %q, want 11", meta.Line)
	}
	if !meta.TaxDeductible || !meta.SpecialReporting || meta.SpecialForm != "1099-NEC" {
		t.Errorf("Contract Labor meta = %+v", meta)
	}

	if got := c.Lookup(CategoryWages).SpecialForm; got != "W-2" {
		t.Errorf("Wages special form = %q, want W-2", got)
	}
}

func TestLookupUnknownCategoryDefault(t *testing.T) {
	c := Default()
	meta := c.Lookup("Definitely Not Configured")
	if meta.Line != "N/A" {
		t.Errorf("unknown line = %q, want N/A", meta.Line)
	}
	if meta.TaxDeductible || meta.SpecialReporting || meta.SpecialForm != "" {
		t.Errorf("unknown category should get the zero default, got %+v", meta)
	}
}

func TestGroupMembership(t *testing.T) {
	c := Default()
	if !c.InGroup(GroupIncome, "Sales") {
		t.Error("Sales should be in the Income group")
	}
	if !c.InGroup(GroupPersonal, "Owner's Draw") {
		t.Error("Owner's Draw should be in the Personal group")
	}
	if c.InGroup(GroupPersonal, "Advertising") {
		t.Error("Advertising should not be in the Personal group")
	}
	if !c.InGroup(GroupEmployeeCosts, CategoryWages) {
		t.Error("Wages should be in the EmployeeCosts group")
	}
}

func TestNewCopiesInputs(t *testing.T) {
	meta := map[string]CategoryMeta{"Widgets": {Line: "8", TaxDeductible: true}}
	groups := map[string][]string{GroupIncome: {"Widgets"}}
	c := New(meta, groups)

	// Mutating the source maps must not leak into the catalog.
	meta["Widgets"] = CategoryMeta{Line: "99"}
	groups[GroupIncome] = nil

	if got := c.Lookup("Widgets").Line; got != "8" {
		t.Errorf("catalog mutated through source map: line = %q", got)
	}
	if !c.InGroup(GroupIncome, "Widgets") {
		t.Error("group membership mutated through source slice")
	}
}

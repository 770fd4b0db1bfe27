// Package catalog holds the static category configuration the report engine
// classifies against: per-category Schedule C metadata and category group
// membership. A Catalog is built once at startup and injected into the engine
// components, keeping the engine testable with alternate tables.
package catalog

import "sort"

// CategoryMeta describes the tax treatment of a single expense category.
type CategoryMeta struct {
	// Line is the Schedule C line identifier. Usually numeric ("8") but may
	// be alphanumeric ("27a"); "N/A" for categories with no line.
	Line             string `json:"line"`
	Description      string `json:"description"`
	TaxDeductible    bool   `json:"taxDeductible"`
	SpecialReporting bool   `json:"specialReporting"`
	// SpecialForm names the extra IRS form (1099-NEC, W-2) required when
	// SpecialReporting is set. Empty otherwise.
	SpecialForm string `json:"specialForm,omitempty"`
}

// Category group names.
const (
	GroupIncome        = "Income"
	GroupPersonal      = "Personal"
	GroupEmployeeCosts = "EmployeeCosts"
)

// Well-known category names the engine branches on.
const (
	CategoryContractLabor = "Contract Labor"
	CategoryWages         = "Wages"
)

// Catalog is an immutable lookup table of category metadata and group
// membership. Use Default or New to construct one; the maps are copied so a
// caller can never mutate shared state.
type Catalog struct {
	meta   map[string]CategoryMeta
	groups map[string]map[string]bool
}

// New builds a Catalog from a metadata table and group membership lists.
func New(meta map[string]CategoryMeta, groups map[string][]string) *Catalog {
	c := &Catalog{
		meta:   make(map[string]CategoryMeta, len(meta)),
		groups: make(map[string]map[string]bool, len(groups)),
	}
	for name, m := range meta {
		c.meta[name] = m
	}
	for group, members := range groups {
		set := make(map[string]bool, len(members))
		for _, m := range members {
			set[m] = true
		}
		c.groups[group] = set
	}
	return c
}

// Lookup returns the metadata for a category. Unknown categories get the
// non-deductible default with line "N/A".
func (c *Catalog) Lookup(category string) CategoryMeta {
	if m, ok := c.meta[category]; ok {
		return m
	}
	return CategoryMeta{Line: "N/A"}
}

// Has reports whether the category is in the table.
func (c *Catalog) Has(category string) bool {
	_, ok := c.meta[category]
	return ok
}

// InGroup reports whether category is a member of the named group.
func (c *Catalog) InGroup(group, category string) bool {
	return c.groups[group][category]
}

// Categories returns all configured category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.meta))
	for name := range c.meta {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the standard small-business catalog: the IRS Schedule C
// expense lines plus the income, personal and employee-cost groups.
func Default() *Catalog {
	return New(map[string]CategoryMeta{
		"Advertising":                   {Line: "8", Description: "Advertising", TaxDeductible: true},
		"Car and Truck Expenses":        {Line: "9", Description: "Car and truck expenses", TaxDeductible: true},
		"Commissions and Fees":          {Line: "10", Description: "Commissions and fees", TaxDeductible: true},
		CategoryContractLabor:           {Line: "11", Description: "Contract labor", TaxDeductible: true, SpecialReporting: true, SpecialForm: "1099-NEC"},
		"Depletion":                     {Line: "12", Description: "Depletion", TaxDeductible: true},
		"Depreciation":                  {Line: "13", Description: "Depreciation and section 179", TaxDeductible: true, SpecialReporting: true, SpecialForm: "4562"},
		"Employee Benefit Programs":     {Line: "14", Description: "Employee benefit programs", TaxDeductible: true},
		"Insurance":                     {Line: "15", Description: "Insurance (other than health)", TaxDeductible: true},
		"Mortgage Interest":             {Line: "16a", Description: "Interest: mortgage", TaxDeductible: true},
		"Other Interest":                {Line: "16b", Description: "Interest: other", TaxDeductible: true},
		"Legal and Professional Fees":   {Line: "17", Description: "Legal and professional services", TaxDeductible: true},
		"Office Expenses":               {Line: "18", Description: "Office expense", TaxDeductible: true},
		"Pension and Profit Sharing":    {Line: "19", Description: "Pension and profit-sharing plans", TaxDeductible: true},
		"Vehicle and Equipment Rental":  {Line: "20a", Description: "Rent: vehicles, machinery, equipment", TaxDeductible: true},
		"Rent":                          {Line: "20b", Description: "Rent: other business property", TaxDeductible: true},
		"Repairs and Maintenance":       {Line: "21", Description: "Repairs and maintenance", TaxDeductible: true},
		"Supplies":                      {Line: "22", Description: "Supplies", TaxDeductible: true},
		"Taxes and Licenses":            {Line: "23", Description: "Taxes and licenses", TaxDeductible: true},
		"Travel":                        {Line: "24a", Description: "Travel", TaxDeductible: true},
		"Meals":                         {Line: "24b", Description: "Deductible meals", TaxDeductible: true},
		"Utilities":                     {Line: "25", Description: "Utilities", TaxDeductible: true},
		CategoryWages:                   {Line: "26", Description: "Wages", TaxDeductible: true, SpecialReporting: true, SpecialForm: "W-2"},
		"Payroll Taxes":                 {Line: "23", Description: "Employer payroll taxes", TaxDeductible: true},
		"Other Expenses":                {Line: "27a", Description: "Other expenses", TaxDeductible: true},
		"Sales":                         {Line: "N/A", Description: "Gross receipts or sales"},
		"Service Income":                {Line: "N/A", Description: "Service revenue"},
		"Interest Income":               {Line: "N/A", Description: "Interest earned"},
		"Other Income":                  {Line: "N/A", Description: "Other business income"},
		"Personal":                      {Line: "N/A", Description: "Personal spending"},
		"Owner's Draw":                  {Line: "N/A", Description: "Owner's draw"},
	}, map[string][]string{
		GroupIncome:        {"Sales", "Service Income", "Interest Income", "Other Income"},
		GroupPersonal:      {"Personal", "Owner's Draw"},
		GroupEmployeeCosts: {CategoryWages, "Employee Benefit Programs", "Pension and Profit Sharing", "Payroll Taxes"},
	})
}

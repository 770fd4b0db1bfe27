// Package report implements the financial report aggregation engine: a pure,
// stateless transform from a transaction slice to one of the structured
// report shapes. It performs no I/O, holds no cache, and never mutates its
// input.
package report

import (
	"fmt"
	"time"
)

// Kind identifies a report shape. The set is closed: the assembler switches
// exhaustively over these values and rejects anything else, so adding a kind
// means extending the switch.
type Kind string

const (
	KindProfitLoss      Kind = "profit_loss"
	KindExpenseSummary  Kind = "expense_summary"
	KindEmployeeSummary Kind = "employee_summary"
	KindTaxSummary      Kind = "tax_summary"
	KindVendorSummary   Kind = "vendor_summary"
	KindPayeeSummary    Kind = "payee_summary"
	KindMonthlySummary  Kind = "monthly_summary"
)

// Kinds lists every report kind the engine can produce.
func Kinds() []Kind {
	return []Kind{
		KindProfitLoss,
		KindExpenseSummary,
		KindEmployeeSummary,
		KindTaxSummary,
		KindVendorSummary,
		KindPayeeSummary,
		KindMonthlySummary,
	}
}

// ParseKind validates a report kind string.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if s == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown report kind: %q", s)
}

// Period is the requested reporting window. Start and end are echoed back
// verbatim — they round-trip into filenames and UI labels, so the engine
// never reformats them.
type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Summary carries the headline totals for a report. Fields irrelevant to a
// kind stay at zero; an empty transaction set produces an all-zero summary,
// never an error. Dollar totals carry cent companions for exact arithmetic
// downstream.
type Summary struct {
	TotalIncome             float64 `json:"totalIncome"`
	TotalIncomeCents        int64   `json:"totalIncomeCents"`
	TotalExpenses           float64 `json:"totalExpenses"`
	TotalExpensesCents      int64   `json:"totalExpensesCents"`
	NetIncome               float64 `json:"netIncome"`
	NetIncomeCents          int64   `json:"netIncomeCents"`
	ProfitMargin            float64 `json:"profitMargin"`
	TotalDeductibleExpenses float64 `json:"totalDeductibleExpenses"`
	DeductibleCount         int     `json:"deductibleCount"`
	AverageTransaction      float64 `json:"averageTransaction"`
	TransactionCount        int     `json:"transactionCount"`
	PayeeCount              int     `json:"payeeCount,omitempty"`
	VendorCount             int     `json:"vendorCount,omitempty"`
	EmployeeCount           int     `json:"employeeCount,omitempty"`
}

// Report is the engine output: a tagged variant over the report kinds.
// Exactly one section pointer is non-nil, matching Kind.
type Report struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"type"`
	Period      Period    `json:"period"`
	Summary     Summary   `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`

	ProfitLoss      *ProfitLossSection `json:"profitLoss,omitempty"`
	ExpenseSummary  *ExpenseSection    `json:"expenseSummary,omitempty"`
	EmployeeSummary *EmployeeSection   `json:"employeeSummary,omitempty"`
	TaxSummary      *TaxSection        `json:"taxSummary,omitempty"`
	VendorSummary   *VendorSection     `json:"vendorSummary,omitempty"`
	PayeeSummary    *PayeeSection      `json:"payeeSummary,omitempty"`
	MonthlySummary  *MonthlySection    `json:"monthlySummary,omitempty"`
}

// ProfitLossSection breaks income and expenses down by category.
type ProfitLossSection struct {
	TotalIncome        float64          `json:"totalIncome"`
	TotalExpenses      float64          `json:"totalExpenses"`
	NetIncome          float64          `json:"netIncome"`
	ProfitMargin       float64          `json:"profitMargin"`
	IncomeByCategory   []CategoryAmount `json:"incomeByCategory"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"`
}

// ExpenseCategorySummary is one category row in the expense summary.
type ExpenseCategorySummary struct {
	Category         string  `json:"category"`
	Amount           float64 `json:"amount"`
	Percent          float64 `json:"percent"`
	TransactionCount int     `json:"transactionCount"`
}

// ExpenseSection is the expense summary body: per-category totals with
// percentages plus a month → category → amount trend matrix.
type ExpenseSection struct {
	Categories   []ExpenseCategorySummary      `json:"categories"`
	MonthlyTrend map[string]map[string]float64 `json:"monthlyTrend"`
}

// EmployeeCost buckets one employee's transactions into wages, benefits and
// general expenses.
type EmployeeCost struct {
	EmployeeID       string  `json:"employeeId"`
	Name             string  `json:"name"`
	Wages            float64 `json:"wages"`
	Benefits         float64 `json:"benefits"`
	OtherExpenses    float64 `json:"otherExpenses"`
	TotalCost        float64 `json:"totalCost"`
	TransactionCount int     `json:"transactionCount"`
}

// EmployeeSection lists per-employee cost breakdowns. Employees with zero
// total cost are omitted.
type EmployeeSection struct {
	Employees []EmployeeCost `json:"employees"`
}

// LaborPayee is one payee row in the tax summary labor lists.
type LaborPayee struct {
	Payee            string  `json:"payee"`
	TaxID            string  `json:"taxId,omitempty"`
	Amount           float64 `json:"amount"`
	TransactionCount int     `json:"transactionCount"`
	Line             string  `json:"line"`
	Requires1099     bool    `json:"requires1099,omitempty"`
	RequiresW2       bool    `json:"requiresW2,omitempty"`
	MissingTaxID     bool    `json:"missingTaxId,omitempty"`
}

// LaborGroup is either the contractor or the wage side of labor payments.
type LaborGroup struct {
	Total  float64      `json:"total"`
	Payees []LaborPayee `json:"payees"`
}

// LaborPayments splits labor spending into 1099 contractors and W-2 wages.
// The two never mix: wage payments are not subject to the $600 threshold.
type LaborPayments struct {
	Contractors LaborGroup `json:"contractors"`
	Wages       LaborGroup `json:"wages"`
}

// SpecialCategory flags a deductible category that carries extra IRS
// reporting requirements.
type SpecialCategory struct {
	Category string  `json:"category"`
	Line     string  `json:"line"`
	Form     string  `json:"form,omitempty"`
	Amount   float64 `json:"amount"`
}

// TaxSection is the Schedule C tax summary body.
type TaxSection struct {
	TotalDeductibleExpenses float64            `json:"totalDeductibleExpenses"`
	DeductibleCount         int                `json:"deductibleCount"`
	QuarterlyBreakdown      map[string]float64 `json:"quarterlyBreakdown"`
	ScheduleC               []LineGroup        `json:"scheduleC"`
	LaborPayments           LaborPayments      `json:"laborPayments"`
	SpecialCategories       []SpecialCategory  `json:"specialCategories"`
}

// VendorEntry is one vendor's rollup in the vendor summary.
type VendorEntry struct {
	Vendor           string             `json:"vendor"`
	Total            float64            `json:"total"`
	TransactionCount int                `json:"transactionCount"`
	Categories       map[string]float64 `json:"categories"`
}

// VendorSection lists per-vendor totals with category breakdowns.
type VendorSection struct {
	Vendors []VendorEntry `json:"vendors"`
}

// PayeeEntry is one payee's year-to-date rollup with 1099 compliance flags.
type PayeeEntry struct {
	Payee            string             `json:"payee"`
	TaxID            string             `json:"taxId,omitempty"`
	Total            float64            `json:"total"`
	TransactionCount int                `json:"transactionCount"`
	Categories       map[string]float64 `json:"categories"`
	Quarters         map[string]float64 `json:"quarters"`
	Requires1099     bool               `json:"requires1099,omitempty"`
	Approaching1099  bool               `json:"approaching1099,omitempty"`
	MissingTaxID     bool               `json:"missingTaxId,omitempty"`
}

// PayeeSection lists per-payee rollups plus the threshold classification.
type PayeeSection struct {
	Payees     []PayeeEntry    `json:"payees"`
	Thresholds ThresholdReport `json:"thresholds"`
}

// MonthSummary is one calendar month's rollup in the monthly summary.
type MonthSummary struct {
	Month              string             `json:"month"`
	Income             float64            `json:"income"`
	Expenses           float64            `json:"expenses"`
	Net                float64            `json:"net"`
	TransactionCount   int                `json:"transactionCount"`
	IncomeByCategory   map[string]float64 `json:"incomeByCategory"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}

// MonthlySection lists month rollups in ascending month order, the "unknown"
// bucket last.
type MonthlySection struct {
	Months []MonthSummary `json:"months"`
}

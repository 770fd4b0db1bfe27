package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bizledger/books/backend/internal/catalog"
	"github.com/bizledger/books/backend/internal/model"
)

// Assembler composes report shapes from a transaction slice. It is safe for
// concurrent use: every call builds a fresh report from its arguments with no
// shared accumulator.
type Assembler struct {
	catalog    *catalog.Catalog
	classifier *Classifier
}

// NewAssembler returns an Assembler bound to a category catalog.
func NewAssembler(c *catalog.Catalog) *Assembler {
	return &Assembler{catalog: c, classifier: NewClassifier(c)}
}

// Assemble builds the report of the requested kind. The employees slice is
// only consulted for the employee summary. Unknown kinds are the only error
// case; an empty transaction slice yields a valid zero-filled report.
func (a *Assembler) Assemble(kind Kind, txs []model.Transaction, employees []model.Employee, period Period) (*Report, error) {
	r := &Report{
		ID:          uuid.New().String(),
		Kind:        kind,
		Period:      period,
		GeneratedAt: time.Now().UTC(),
	}

	switch kind {
	case KindProfitLoss:
		a.buildProfitLoss(r, txs)
	case KindExpenseSummary:
		a.buildExpenseSummary(r, txs)
	case KindEmployeeSummary:
		a.buildEmployeeSummary(r, txs, employees)
	case KindTaxSummary:
		a.buildTaxSummary(r, txs)
	case KindVendorSummary:
		a.buildVendorSummary(r, txs)
	case KindPayeeSummary:
		a.buildPayeeSummary(r, txs)
	case KindMonthlySummary:
		a.buildMonthlySummary(r, txs)
	default:
		return nil, fmt.Errorf("unknown report kind: %q", kind)
	}
	return r, nil
}

func cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func filterByType(txs []model.Transaction, t model.TransactionType) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}

// sortedCategoryAmounts flattens category buckets into a slice sorted by
// amount descending, category name ascending on ties.
func sortedCategoryAmounts(buckets map[string]*Bucket) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(buckets))
	for cat, b := range buckets {
		out = append(out, CategoryAmount{Category: cat, Amount: b.Total, Count: b.Count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ============================================================================
// Profit / Loss
// ============================================================================

func (a *Assembler) buildProfitLoss(r *Report, txs []model.Transaction) {
	incomeTxs := filterByType(txs, model.TypeIncome)
	expenseTxs := filterByType(txs, model.TypeExpense)

	incomeBuckets := AggregateBy(incomeTxs, ByCategory, nil)
	expenseBuckets := AggregateBy(expenseTxs, ByCategory, nil)

	var totalIncome, totalExpenses float64
	for _, b := range incomeBuckets {
		totalIncome += b.Total
	}
	for _, b := range expenseBuckets {
		totalExpenses += b.Total
	}

	// The income breakdown only surfaces categories configured in the Income
	// group; stray income rows still count toward the total.
	incomeByCategory := make([]CategoryAmount, 0, len(incomeBuckets))
	for _, ca := range sortedCategoryAmounts(incomeBuckets) {
		if a.catalog.InGroup(catalog.GroupIncome, ca.Category) {
			incomeByCategory = append(incomeByCategory, ca)
		}
	}

	netIncome := totalIncome - totalExpenses
	margin := PercentOf(netIncome, totalIncome)

	r.ProfitLoss = &ProfitLossSection{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetIncome:          netIncome,
		ProfitMargin:       margin,
		IncomeByCategory:   incomeByCategory,
		ExpensesByCategory: sortedCategoryAmounts(expenseBuckets),
	}
	r.Summary = Summary{
		TotalIncome:        totalIncome,
		TotalIncomeCents:   cents(totalIncome),
		TotalExpenses:      totalExpenses,
		TotalExpensesCents: cents(totalExpenses),
		NetIncome:          netIncome,
		NetIncomeCents:     cents(netIncome),
		ProfitMargin:       margin,
		TransactionCount:   len(incomeTxs) + len(expenseTxs),
	}
}

// ============================================================================
// Expense Summary
// ============================================================================

func (a *Assembler) buildExpenseSummary(r *Report, txs []model.Transaction) {
	expenseTxs := filterByType(txs, model.TypeExpense)
	buckets := AggregateBy(expenseTxs, ByCategory, nil)

	var grandTotal float64
	for _, b := range buckets {
		grandTotal += b.Total
	}

	categories := make([]ExpenseCategorySummary, 0, len(buckets))
	for _, ca := range sortedCategoryAmounts(buckets) {
		categories = append(categories, ExpenseCategorySummary{
			Category:         ca.Category,
			Amount:           ca.Amount,
			Percent:          PercentOf(ca.Amount, grandTotal),
			TransactionCount: ca.Count,
		})
	}

	// Month → category → amount trend matrix.
	trend := make(map[string]map[string]float64)
	for month, mb := range AggregateBy(expenseTxs, ByMonth, nil) {
		row := make(map[string]float64)
		for cat, cb := range AggregateBy(mb.Items, ByCategory, nil) {
			row[cat] = cb.Total
		}
		trend[month] = row
	}

	var avg float64
	if len(expenseTxs) > 0 {
		avg = grandTotal / float64(len(expenseTxs))
	}

	r.ExpenseSummary = &ExpenseSection{Categories: categories, MonthlyTrend: trend}
	r.Summary = Summary{
		TotalExpenses:      grandTotal,
		TotalExpensesCents: cents(grandTotal),
		AverageTransaction: avg,
		TransactionCount:   len(expenseTxs),
	}
}

// ============================================================================
// Employee Summary
// ============================================================================

func (a *Assembler) buildEmployeeSummary(r *Report, txs []model.Transaction, employees []model.Employee) {
	byEmployee := make(map[string][]model.Transaction)
	for _, tx := range txs {
		if tx.EmployeeID != "" && tx.Type == model.TypeExpense {
			byEmployee[tx.EmployeeID] = append(byEmployee[tx.EmployeeID], tx)
		}
	}

	var totalCost float64
	var costs []EmployeeCost
	for _, emp := range employees {
		cost := EmployeeCost{EmployeeID: emp.ID, Name: emp.Name}
		for _, tx := range byEmployee[emp.ID] {
			amount := model.AbsAmount(tx)
			cat := model.ResolveCategory(tx)
			switch {
			case cat == catalog.CategoryWages:
				cost.Wages += amount
			case a.catalog.InGroup(catalog.GroupEmployeeCosts, cat):
				cost.Benefits += amount
			default:
				cost.OtherExpenses += amount
			}
			cost.TransactionCount++
		}
		cost.TotalCost = cost.Wages + cost.Benefits + cost.OtherExpenses
		totalCost += cost.TotalCost
		// Zero-cost employees are counted but not listed.
		if cost.TotalCost > 0 {
			costs = append(costs, cost)
		}
	}

	sort.SliceStable(costs, func(i, j int) bool {
		return costs[i].TotalCost > costs[j].TotalCost
	})

	r.EmployeeSummary = &EmployeeSection{Employees: costs}
	r.Summary = Summary{
		TotalExpenses:      totalCost,
		TotalExpensesCents: cents(totalCost),
		EmployeeCount:      len(employees),
		TransactionCount:   countTransactions(byEmployee),
	}
}

func countTransactions(m map[string][]model.Transaction) int {
	n := 0
	for _, txs := range m {
		n += len(txs)
	}
	return n
}

// ============================================================================
// Tax Summary
// ============================================================================

func (a *Assembler) buildTaxSummary(r *Report, txs []model.Transaction) {
	var deductible []model.Transaction
	for _, tx := range txs {
		if a.classifier.IsDeductibleExpense(tx) {
			deductible = append(deductible, tx)
		}
	}

	var totalDeductible float64
	for _, tx := range deductible {
		totalDeductible += model.AbsAmount(tx)
	}

	// Tax summaries trust the precomputed quarterlyPeriod label; rows without
	// a valid label are excluded from the quarterly buckets entirely. Payee
	// summaries derive quarters from the date instead — see AggregatePayees.
	quarterly := map[string]float64{"Q1": 0, "Q2": 0, "Q3": 0, "Q4": 0}
	for q, b := range AggregateBy(deductible, ByQuarterLabel, nil) {
		quarterly[q] = b.Total
	}

	// Every configured category participates in the intermediate amounts map
	// even at zero; only amounts > 0 surface in the final line groups.
	amounts := make(map[string]float64, len(a.catalog.Categories()))
	counts := make(map[string]int)
	for _, cat := range a.catalog.Categories() {
		amounts[cat] = 0
	}
	for _, tx := range deductible {
		cat := model.ResolveCategory(tx)
		amounts[cat] += model.AbsAmount(tx)
		counts[cat]++
	}

	var entries []CategoryAmount
	var special []SpecialCategory
	for cat, amount := range amounts {
		if amount <= 0 {
			continue
		}
		entries = append(entries, CategoryAmount{Category: cat, Amount: amount, Count: counts[cat]})
		if meta := a.catalog.Lookup(cat); meta.SpecialReporting {
			special = append(special, SpecialCategory{
				Category: cat,
				Line:     meta.Line,
				Form:     meta.SpecialForm,
				Amount:   amount,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Category < entries[j].Category })
	sort.Slice(special, func(i, j int) bool { return special[i].Category < special[j].Category })

	scheduleC := GroupByLine(entries, func(cat string) string {
		return a.catalog.Lookup(cat).Line
	})

	r.TaxSummary = &TaxSection{
		TotalDeductibleExpenses: totalDeductible,
		DeductibleCount:         len(deductible),
		QuarterlyBreakdown:      quarterly,
		ScheduleC:               scheduleC,
		LaborPayments:           a.buildLaborPayments(deductible),
		SpecialCategories:       special,
	}
	r.Summary = Summary{
		TotalDeductibleExpenses: totalDeductible,
		TotalExpenses:           totalDeductible,
		TotalExpensesCents:      cents(totalDeductible),
		DeductibleCount:         len(deductible),
		TransactionCount:        len(deductible),
	}
}

// buildLaborPayments splits deductible labor spending into 1099 contractors
// and W-2 wage earners. Contractor payees are subject to the $600 threshold;
// wage payees always require a W-2 and never a 1099.
func (a *Assembler) buildLaborPayments(deductible []model.Transaction) LaborPayments {
	var contractorTxs, wageTxs []model.Transaction
	for _, tx := range deductible {
		cat := model.ResolveCategory(tx)
		switch {
		case cat == catalog.CategoryWages:
			wageTxs = append(wageTxs, tx)
		case tx.IsContractorPayment || cat == catalog.CategoryContractLabor:
			contractorTxs = append(contractorTxs, tx)
		}
	}

	contractorLine := a.catalog.Lookup(catalog.CategoryContractLabor).Line
	wageLine := a.catalog.Lookup(catalog.CategoryWages).Line

	var lp LaborPayments
	for _, agg := range AggregatePayees(contractorTxs, ByPayee, model.ResolvePayeeName) {
		required := agg.Total >= Threshold1099
		lp.Contractors.Total += agg.Total
		lp.Contractors.Payees = append(lp.Contractors.Payees, LaborPayee{
			Payee:            agg.Name,
			TaxID:            agg.TaxID,
			Amount:           agg.Total,
			TransactionCount: agg.Count,
			Line:             contractorLine,
			Requires1099:     required,
			MissingTaxID:     required && agg.TaxID == "",
		})
	}
	for _, agg := range AggregatePayees(wageTxs, ByPayee, model.ResolvePayeeName) {
		lp.Wages.Total += agg.Total
		lp.Wages.Payees = append(lp.Wages.Payees, LaborPayee{
			Payee:            agg.Name,
			TaxID:            agg.TaxID,
			Amount:           agg.Total,
			TransactionCount: agg.Count,
			Line:             wageLine,
			RequiresW2:       true,
		})
	}

	sort.SliceStable(lp.Contractors.Payees, func(i, j int) bool {
		return lp.Contractors.Payees[i].Amount > lp.Contractors.Payees[j].Amount
	})
	sort.SliceStable(lp.Wages.Payees, func(i, j int) bool {
		return lp.Wages.Payees[i].Amount > lp.Wages.Payees[j].Amount
	})
	return lp
}

// ============================================================================
// Vendor Summary
// ============================================================================

func (a *Assembler) buildVendorSummary(r *Report, txs []model.Transaction) {
	expenseTxs := filterByType(txs, model.TypeExpense)
	aggs := AggregatePayees(expenseTxs, model.ResolveVendorKey, model.ResolveVendorName)

	var total float64
	vendors := make([]VendorEntry, 0, len(aggs))
	for _, agg := range aggs {
		total += agg.Total
		vendors = append(vendors, VendorEntry{
			Vendor:           agg.Name,
			Total:            agg.Total,
			TransactionCount: agg.Count,
			Categories:       agg.Categories,
		})
	}
	sort.SliceStable(vendors, func(i, j int) bool {
		return vendors[i].Total > vendors[j].Total
	})

	r.VendorSummary = &VendorSection{Vendors: vendors}
	r.Summary = Summary{
		TotalExpenses:      total,
		TotalExpensesCents: cents(total),
		TransactionCount:   len(expenseTxs),
		VendorCount:        len(vendors),
	}
}

// ============================================================================
// Payee Summary
// ============================================================================

func (a *Assembler) buildPayeeSummary(r *Report, txs []model.Transaction) {
	aggs := AggregatePayees(txs, ByPayee, model.ResolvePayeeName)

	var total float64
	payees := make([]PayeeEntry, 0, len(aggs))
	for _, agg := range aggs {
		total += agg.Total
		required := agg.IsContractor && agg.Total >= Threshold1099
		payees = append(payees, PayeeEntry{
			Payee:            agg.Name,
			TaxID:            agg.TaxID,
			Total:            agg.Total,
			TransactionCount: agg.Count,
			Categories:       agg.Categories,
			Quarters:         agg.Quarters,
			Requires1099:     required,
			Approaching1099:  agg.IsContractor && agg.Total >= Approaching1099 && agg.Total < Threshold1099,
			MissingTaxID:     required && agg.TaxID == "",
		})
	}
	sort.SliceStable(payees, func(i, j int) bool {
		return payees[i].Total > payees[j].Total
	})

	r.PayeeSummary = &PayeeSection{
		Payees:     payees,
		Thresholds: ClassifyThresholds(aggs),
	}
	r.Summary = Summary{
		TotalExpenses:      total,
		TotalExpensesCents: cents(total),
		TransactionCount:   len(txs),
		PayeeCount:         len(payees),
	}
}

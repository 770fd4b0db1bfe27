package report

import (
	"sort"

	"github.com/bizledger/books/backend/internal/model"
)

// buildMonthlySummary buckets the period's transactions by calendar month
// into income/expense totals with category sub-breakdowns. Undated rows land
// in an "unknown" month, which sorts last.
func (a *Assembler) buildMonthlySummary(r *Report, txs []model.Transaction) {
	byMonth := AggregateBy(txs, ByMonth, nil)

	keys := make([]string, 0, len(byMonth))
	for month := range byMonth {
		keys = append(keys, month)
	}
	sort.Slice(keys, func(i, j int) bool {
		// "unknown" (> any YYYY-MM string) naturally sorts last, but make the
		// intent explicit.
		if keys[i] == "unknown" {
			return false
		}
		if keys[j] == "unknown" {
			return true
		}
		return keys[i] < keys[j]
	})

	var totalIncome, totalExpenses float64
	var totalCount int
	months := make([]MonthSummary, 0, len(keys))

	for _, month := range keys {
		ms := MonthSummary{
			Month:              month,
			IncomeByCategory:   make(map[string]float64),
			ExpensesByCategory: make(map[string]float64),
		}
		for _, tx := range byMonth[month].Items {
			amount := model.AbsAmount(tx)
			cat := model.ResolveCategory(tx)
			switch tx.Type {
			case model.TypeIncome:
				ms.Income += amount
				ms.IncomeByCategory[cat] += amount
			case model.TypeExpense:
				ms.Expenses += amount
				ms.ExpensesByCategory[cat] += amount
			default:
				// Transfers and adjustments move money without affecting the
				// monthly P&L.
				continue
			}
			ms.TransactionCount++
		}
		ms.Net = ms.Income - ms.Expenses
		totalIncome += ms.Income
		totalExpenses += ms.Expenses
		totalCount += ms.TransactionCount
		months = append(months, ms)
	}

	net := totalIncome - totalExpenses
	r.MonthlySummary = &MonthlySection{Months: months}
	r.Summary = Summary{
		TotalIncome:        totalIncome,
		TotalIncomeCents:   cents(totalIncome),
		TotalExpenses:      totalExpenses,
		TotalExpensesCents: cents(totalExpenses),
		NetIncome:          net,
		NetIncomeCents:     cents(net),
		ProfitMargin:       PercentOf(net, totalIncome),
		TransactionCount:   totalCount,
	}
}

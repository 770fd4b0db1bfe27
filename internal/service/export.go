package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bizledger/books/backend/internal/report"
)

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// fmtAmount renders a dollar amount with thousands separators for CSV output.
func fmtAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

// ExportReport serializes a report as CSV or JSON for download. The filename
// embeds the report kind and the requested period verbatim. Byte-level PDF
// rendering is handled by an external renderer, never here.
func ExportReport(rep *report.Report, format string) (data []byte, filename, contentType string, err error) {
	suffix := string(rep.Kind)
	if rep.Period.StartDate != "" || rep.Period.EndDate != "" {
		suffix += "-" + rep.Period.StartDate + "-" + rep.Period.EndDate
	}

	switch format {
	case "json":
		data, err = json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, "", "", fmt.Errorf("marshal JSON: %w", err)
		}
		return data, "report-" + suffix + ".json", "application/json", nil

	case "csv":
		var buf strings.Builder
		w := csv.NewWriter(&buf)
		writeSummaryRows(w, rep)
		writeBreakdownRows(w, rep)
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", "", fmt.Errorf("write CSV: %w", err)
		}
		return []byte(buf.String()), "report-" + suffix + ".csv", "text/csv", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %q", format)
	}
}

func writeSummaryRows(w *csv.Writer, rep *report.Report) {
	_ = w.Write([]string{"Report", string(rep.Kind)})
	_ = w.Write([]string{"Period", rep.Period.StartDate, rep.Period.EndDate})
	_ = w.Write([]string{"Generated At", rep.GeneratedAt.Format("2006-01-02 15:04:05 MST")})
	_ = w.Write(nil)
	_ = w.Write([]string{"Total Income", fmtAmount(rep.Summary.TotalIncome)})
	_ = w.Write([]string{"Total Expenses", fmtAmount(rep.Summary.TotalExpenses)})
	_ = w.Write([]string{"Net Income", fmtAmount(rep.Summary.NetIncome)})
	_ = w.Write([]string{"Transactions", strconv.Itoa(rep.Summary.TransactionCount)})
	_ = w.Write(nil)
}

func writeBreakdownRows(w *csv.Writer, rep *report.Report) {
	switch {
	case rep.ProfitLoss != nil:
		_ = w.Write([]string{"Category", "Amount"})
		for _, ca := range rep.ProfitLoss.IncomeByCategory {
			_ = w.Write([]string{"Income: " + ca.Category, fmtAmount(ca.Amount)})
		}
		for _, ca := range rep.ProfitLoss.ExpensesByCategory {
			_ = w.Write([]string{"Expense: " + ca.Category, fmtAmount(ca.Amount)})
		}

	case rep.ExpenseSummary != nil:
		_ = w.Write([]string{"Category", "Amount", "Percent", "Transactions"})
		for _, c := range rep.ExpenseSummary.Categories {
			_ = w.Write([]string{c.Category, fmtAmount(c.Amount), fmt.Sprintf("%.1f%%", c.Percent), strconv.Itoa(c.TransactionCount)})
		}

	case rep.EmployeeSummary != nil:
		_ = w.Write([]string{"Employee", "Wages", "Benefits", "Other", "Total"})
		for _, e := range rep.EmployeeSummary.Employees {
			_ = w.Write([]string{e.Name, fmtAmount(e.Wages), fmtAmount(e.Benefits), fmtAmount(e.OtherExpenses), fmtAmount(e.TotalCost)})
		}

	case rep.TaxSummary != nil:
		_ = w.Write([]string{"Deductible Expenses", fmtAmount(rep.TaxSummary.TotalDeductibleExpenses)})
		for _, q := range []string{"Q1", "Q2", "Q3", "Q4"} {
			_ = w.Write([]string{q, fmtAmount(rep.TaxSummary.QuarterlyBreakdown[q])})
		}
		_ = w.Write(nil)
		_ = w.Write([]string{"Line", "Category", "Amount"})
		for _, g := range rep.TaxSummary.ScheduleC {
			for _, ca := range g.Categories {
				_ = w.Write([]string{g.Line, ca.Category, fmtAmount(ca.Amount)})
			}
		}
		_ = w.Write(nil)
		_ = w.Write([]string{"Payee", "Amount", "Form"})
		for _, p := range rep.TaxSummary.LaborPayments.Contractors.Payees {
			form := ""
			if p.Requires1099 {
				form = "1099-NEC"
			}
			_ = w.Write([]string{p.Payee, fmtAmount(p.Amount), form})
		}
		for _, p := range rep.TaxSummary.LaborPayments.Wages.Payees {
			_ = w.Write([]string{p.Payee, fmtAmount(p.Amount), "W-2"})
		}

	case rep.VendorSummary != nil:
		_ = w.Write([]string{"Vendor", "Amount", "Transactions"})
		for _, v := range rep.VendorSummary.Vendors {
			_ = w.Write([]string{v.Vendor, fmtAmount(v.Total), strconv.Itoa(v.TransactionCount)})
		}

	case rep.PayeeSummary != nil:
		_ = w.Write([]string{"Payee", "Amount", "Transactions", "Requires 1099"})
		for _, p := range rep.PayeeSummary.Payees {
			_ = w.Write([]string{p.Payee, fmtAmount(p.Total), strconv.Itoa(p.TransactionCount), strconv.FormatBool(p.Requires1099)})
		}

	case rep.MonthlySummary != nil:
		_ = w.Write([]string{"Month", "Income", "Expenses", "Net"})
		for _, m := range rep.MonthlySummary.Months {
			_ = w.Write([]string{m.Month, fmtAmount(m.Income), fmtAmount(m.Expenses), fmtAmount(m.Net)})
		}
	}
}

// Package service wires the report engine to storage and HTTP. It owns no
// aggregation logic; it fetches one bounded transaction slice, runs the
// assembler, and serializes the result.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizledger/books/backend/internal/catalog"
	"github.com/bizledger/books/backend/internal/model"
	"github.com/bizledger/books/backend/internal/report"
	"github.com/bizledger/books/backend/internal/store"
)

// ReportRequest is the caller-supplied report parameterization. StartDate and
// EndDate are echoed into the report verbatim; they are parsed only to build
// the store filter.
type ReportRequest struct {
	StartDate string
	EndDate   string
	CompanyID string
}

// ReportService generates financial reports over the stored ledger.
type ReportService struct {
	store     store.Store
	assembler *report.Assembler
	log       *slog.Logger
}

// NewReportService builds a service over the given store and catalog.
func NewReportService(st store.Store, cat *catalog.Catalog, log *slog.Logger) *ReportService {
	if log == nil {
		log = slog.Default()
	}
	return &ReportService{
		store:     st,
		assembler: report.NewAssembler(cat),
		log:       log,
	}
}

// GenerateReport fetches the user's transactions for the requested window and
// assembles the report. Storage failures propagate; an empty ledger is a
// valid zero-filled report.
func (s *ReportService) GenerateReport(ctx context.Context, userID string, kind report.Kind, req ReportRequest) (*report.Report, error) {
	filter := store.TransactionFilter{
		StartDate: parseDateBound(req.StartDate),
		EndDate:   parseDateBound(req.EndDate),
		CompanyID: req.CompanyID,
		Limit:     store.MaxTransactionFetch,
	}

	txs, total, err := s.store.GetTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	var employees []model.Employee
	if kind == report.KindEmployeeSummary {
		employees, err = s.store.GetEmployees(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get employees: %w", err)
		}
	}

	rep, err := s.assembler.Assemble(kind, txs, employees, report.Period{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("report generated",
		"kind", string(kind),
		"userId", userID,
		"transactions", total,
	)
	return rep, nil
}

// parseDateBound turns a date string into a filter bound. Unparseable dates
// yield a nil bound (unfiltered) rather than an error; range validation is
// the HTTP layer's concern.
func parseDateBound(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

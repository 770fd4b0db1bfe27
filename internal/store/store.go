// Package store persists the transaction ledger and employee profiles. The
// report engine only reads; writes exist for seeding, imports and tests.
package store

import (
	"context"
	"time"

	"github.com/bizledger/books/backend/internal/model"
)

// MaxTransactionFetch caps a single ledger read. Report generation is a
// bounded in-memory transform; callers never stream.
const MaxTransactionFetch = 10000

// TransactionFilter narrows a ledger read. Nil/zero fields are ignored.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	CompanyID string
	Type      model.TransactionType
	Limit     int
}

// Store defines the database operations used by the report service.
type Store interface {
	// GetTransactions returns the matching transactions and the total match
	// count. Results are ordered by date ascending; undated rows sort first.
	GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.Transaction, int, error)
	GetEmployees(ctx context.Context, userID string) ([]model.Employee, error)

	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	CreateEmployee(ctx context.Context, emp *model.Employee) error
}

// clampLimit applies the fetch cap and the default.
func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxTransactionFetch {
		return MaxTransactionFetch
	}
	return limit
}

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bizledger/books/backend/internal/model"
)

// MemoryStore implements Store with in-memory maps. Used for local
// development and tests.
type MemoryStore struct {
	mu           sync.RWMutex
	transactions map[string]*model.Transaction
	employees    map[string]*model.Employee
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]*model.Transaction),
		employees:    make(map[string]*model.Employee),
	}
}

func (m *MemoryStore) GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.Transaction, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []model.Transaction
	for _, tx := range m.transactions {
		if tx.UserID != userID {
			continue
		}
		if filter.CompanyID != "" && tx.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.StartDate != nil || filter.EndDate != nil {
			t, ok := model.NormalizeDate(tx.Date)
			if !ok {
				continue
			}
			if filter.StartDate != nil && t.Before(*filter.StartDate) {
				continue
			}
			if filter.EndDate != nil && t.After(*filter.EndDate) {
				continue
			}
		}
		matched = append(matched, *tx)
	}

	// Date ascending, undated rows first, ID as the deterministic tie-break.
	sort.SliceStable(matched, func(i, j int) bool {
		ti, oki := model.NormalizeDate(matched[i].Date)
		tj, okj := model.NormalizeDate(matched[j].Date)
		if oki != okj {
			return !oki
		}
		if oki && !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	if limit := clampLimit(filter.Limit); total > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *MemoryStore) GetEmployees(ctx context.Context, userID string) ([]model.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var employees []model.Employee
	for _, emp := range m.employees {
		if emp.UserID == userID {
			employees = append(employees, *emp)
		}
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].ID < employees[j].ID
	})
	return employees, nil
}

func (m *MemoryStore) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	cp := *tx
	m.transactions[tx.ID] = &cp
	return nil
}

func (m *MemoryStore) CreateEmployee(ctx context.Context, emp *model.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	cp := *emp
	m.employees[emp.ID] = &cp
	return nil
}

// SeedDemo loads a small demo ledger for local development.
func (m *MemoryStore) SeedDemo(ctx context.Context, userID string) error {
	demo := []model.Transaction{
		{UserID: userID, Date: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), Amount: 4200, Type: model.TypeIncome, Category: "Sales"},
		{UserID: userID, Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Amount: -650, Type: model.TypeExpense, Category: "Contract Labor", Payee: "Riverside Design Co", QuarterlyPeriod: "Q1", IsContractorPayment: true},
		{UserID: userID, Date: time.Date(2025, 2, 18, 0, 0, 0, 0, time.UTC), Amount: -120.40, Type: model.TypeExpense, Category: "Office Expenses", VendorName: "Staples", QuarterlyPeriod: "Q1"},
		{UserID: userID, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: -900, Type: model.TypeExpense, Category: "Rent", VendorName: "Main St Properties", QuarterlyPeriod: "Q1"},
	}
	for i := range demo {
		if err := m.CreateTransaction(ctx, &demo[i]); err != nil {
			return err
		}
	}
	return nil
}

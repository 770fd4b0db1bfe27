package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizledger/books/backend/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedTransactions(t *testing.T, m *MemoryStore) {
	t.Helper()
	ctx := context.Background()
	txs := []model.Transaction{
		{ID: "t1", UserID: "u1", CompanyID: "c1", Type: model.TypeIncome, Amount: 1000, Date: date(2025, 1, 10)},
		{ID: "t2", UserID: "u1", CompanyID: "c1", Type: model.TypeExpense, Amount: -200, Date: date(2025, 2, 5)},
		{ID: "t3", UserID: "u1", CompanyID: "c2", Type: model.TypeExpense, Amount: -50, Date: date(2025, 3, 1)},
		{ID: "t4", UserID: "u1", Type: model.TypeExpense, Amount: -10}, // undated
		{ID: "t5", UserID: "u2", Type: model.TypeIncome, Amount: 9999, Date: date(2025, 1, 1)},
	}
	for i := range txs {
		require.NoError(t, m.CreateTransaction(ctx, &txs[i]))
	}
}

func TestMemoryStoreScopesByUser(t *testing.T) {
	m := NewMemoryStore()
	seedTransactions(t, m)

	txs, total, err := m.GetTransactions(context.Background(), "u1", TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	for _, tx := range txs {
		assert.Equal(t, "u1", tx.UserID)
	}
}

func TestMemoryStoreSortOrder(t *testing.T) {
	m := NewMemoryStore()
	seedTransactions(t, m)

	txs, _, err := m.GetTransactions(context.Background(), "u1", TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txs, 4)

	// Undated first, then date ascending.
	assert.Equal(t, "t4", txs[0].ID)
	assert.Equal(t, "t1", txs[1].ID)
	assert.Equal(t, "t2", txs[2].ID)
	assert.Equal(t, "t3", txs[3].ID)
}

func TestMemoryStoreFilters(t *testing.T) {
	m := NewMemoryStore()
	seedTransactions(t, m)
	ctx := context.Background()

	t.Run("company", func(t *testing.T) {
		txs, total, err := m.GetTransactions(ctx, "u1", TransactionFilter{CompanyID: "c1"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, tx := range txs {
			assert.Equal(t, "c1", tx.CompanyID)
		}
	})

	t.Run("type", func(t *testing.T) {
		_, total, err := m.GetTransactions(ctx, "u1", TransactionFilter{Type: model.TypeExpense})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("date range excludes undated", func(t *testing.T) {
		start := date(2025, 2, 1)
		end := date(2025, 2, 28)
		txs, total, err := m.GetTransactions(ctx, "u1", TransactionFilter{StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "t2", txs[0].ID)
	})

	t.Run("open-ended start", func(t *testing.T) {
		start := date(2025, 2, 1)
		_, total, err := m.GetTransactions(ctx, "u1", TransactionFilter{StartDate: &start})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestMemoryStoreLimit(t *testing.T) {
	m := NewMemoryStore()
	seedTransactions(t, m)

	txs, total, err := m.GetTransactions(context.Background(), "u1", TransactionFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, total, "total reflects all matches, not the page")
	assert.Len(t, txs, 2)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, MaxTransactionFetch, clampLimit(0))
	assert.Equal(t, MaxTransactionFetch, clampLimit(-5))
	assert.Equal(t, MaxTransactionFetch, clampLimit(MaxTransactionFetch+1))
	assert.Equal(t, 250, clampLimit(250))
}

func TestMemoryStoreGeneratesIDs(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	tx := &model.Transaction{UserID: "u1", Amount: -5, Type: model.TypeExpense}
	require.NoError(t, m.CreateTransaction(ctx, tx))
	assert.NotEmpty(t, tx.ID)

	emp := &model.Employee{UserID: "u1", Name: "Sam"}
	require.NoError(t, m.CreateEmployee(ctx, emp))
	assert.NotEmpty(t, emp.ID)
}

func TestMemoryStoreCopiesOnWrite(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	tx := &model.Transaction{ID: "t1", UserID: "u1", Amount: -5, Type: model.TypeExpense}
	require.NoError(t, m.CreateTransaction(ctx, tx))
	tx.Amount = -999

	got, _, err := m.GetTransactions(ctx, "u1", TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, -5.0, got[0].Amount, "store must not alias caller memory")
}

func TestMemoryStoreEmployees(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	for _, emp := range []model.Employee{
		{ID: "e2", UserID: "u1", Name: "B"},
		{ID: "e1", UserID: "u1", Name: "A"},
		{ID: "e3", UserID: "u2", Name: "C"},
	} {
		e := emp
		require.NoError(t, m.CreateEmployee(ctx, &e))
	}

	employees, err := m.GetEmployees(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "e1", employees[0].ID)
	assert.Equal(t, "e2", employees[1].ID)
}

func TestSeedDemo(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, m.SeedDemo(ctx, "demo"))

	_, total, err := m.GetTransactions(ctx, "demo", TransactionFilter{})
	require.NoError(t, err)
	assert.Greater(t, total, 0)
}

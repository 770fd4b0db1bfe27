package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/bizledger/books/backend/internal/model"
)

const (
	transactionsCollection = "transactions"
	employeesCollection    = "employees"
)

// FirestoreStore implements Store on top of a Firestore document database.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.Transaction, int, error) {
	query := s.client.Collection(transactionsCollection).
		Query.Where("userId", "==", userID)

	if filter.CompanyID != "" {
		query = query.Where("companyId", "==", filter.CompanyID)
	}
	if filter.Type != "" {
		query = query.Where("type", "==", string(filter.Type))
	}
	if filter.StartDate != nil {
		query = query.Where("date", ">=", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date", "<=", *filter.EndDate)
	}
	// Firestore requires ordering on the inequality field first.
	query = query.OrderBy("date", firestore.Asc).Limit(clampLimit(filter.Limit))

	var txs []model.Transaction
	it := query.Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("iterate transactions: %w", err)
		}
		var tx model.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, 0, fmt.Errorf("parse transaction %s: %w", doc.Ref.ID, err)
		}
		if tx.ID == "" {
			tx.ID = doc.Ref.ID
		}
		txs = append(txs, tx)
	}
	return txs, len(txs), nil
}

func (s *FirestoreStore) GetEmployees(ctx context.Context, userID string) ([]model.Employee, error) {
	it := s.client.Collection(employeesCollection).
		Query.Where("userId", "==", userID).
		Documents(ctx)
	defer it.Stop()

	var employees []model.Employee
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate employees: %w", err)
		}
		var emp model.Employee
		if err := doc.DataTo(&emp); err != nil {
			return nil, fmt.Errorf("parse employee %s: %w", doc.Ref.ID, err)
		}
		if emp.ID == "" {
			emp.ID = doc.Ref.ID
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func (s *FirestoreStore) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	_, err := s.client.Collection(transactionsCollection).Doc(tx.ID).Set(ctx, tx)
	return err
}

func (s *FirestoreStore) CreateEmployee(ctx context.Context, emp *model.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	_, err := s.client.Collection(employeesCollection).Doc(emp.ID).Set(ctx, emp)
	return err
}

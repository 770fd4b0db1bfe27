package report

import (
	"github.com/bizledger/books/backend/internal/catalog"
	"github.com/bizledger/books/backend/internal/model"
)

// Classifier decides per-transaction tax deductibility. It is a pure
// predicate over the injected catalog; it never mutates transactions.
type Classifier struct {
	catalog *catalog.Catalog
}

// NewClassifier returns a Classifier backed by the given catalog.
func NewClassifier(c *catalog.Catalog) *Classifier {
	return &Classifier{catalog: c}
}

// IsDeductible reports whether the transaction counts as tax deductible. An
// explicit per-transaction override wins so users can correct individual
// rows; otherwise the category default from the catalog applies.
func (c *Classifier) IsDeductible(tx model.Transaction) bool {
	if tx.IsTaxDeductible != nil {
		return *tx.IsTaxDeductible
	}
	return c.catalog.Lookup(model.ResolveCategory(tx)).TaxDeductible
}

// IsDeductibleExpense reports whether the transaction belongs in the
// tax-summary deductible set: it must be an expense, must not be in the
// Personal group, and must pass IsDeductible.
func (c *Classifier) IsDeductibleExpense(tx model.Transaction) bool {
	if tx.Type != model.TypeExpense {
		return false
	}
	if c.catalog.InGroup(catalog.GroupPersonal, model.ResolveCategory(tx)) {
		return false
	}
	return c.IsDeductible(tx)
}

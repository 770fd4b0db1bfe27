package report

import (
	"github.com/bizledger/books/backend/internal/model"
)

// Bucket is one group produced by AggregateBy: a running total, a row count,
// and the contributing transactions.
type Bucket struct {
	Total float64
	Count int
	Items []model.Transaction
}

// KeyFunc maps a transaction to its bucket key. Returning "" drops the row
// from the aggregation entirely (used for invalid quarter labels).
type KeyFunc func(model.Transaction) string

// AmountFunc maps a transaction to the amount it contributes to its bucket.
type AmountFunc func(model.Transaction) float64

// AggregateBy groups transactions by keyFn and accumulates totals, counts and
// items per bucket. A nil amountFn defaults to the absolute amount.
func AggregateBy(txs []model.Transaction, keyFn KeyFunc, amountFn AmountFunc) map[string]*Bucket {
	if amountFn == nil {
		amountFn = model.AbsAmount
	}
	buckets := make(map[string]*Bucket)
	for _, tx := range txs {
		key := keyFn(tx)
		if key == "" {
			continue
		}
		b, ok := buckets[key]
		if !ok {
			b = &Bucket{}
			buckets[key] = b
		}
		b.Total += amountFn(tx)
		b.Count++
		b.Items = append(b.Items, tx)
	}
	return buckets
}

// ByCategory keys a transaction by its resolved category.
func ByCategory(tx model.Transaction) string {
	return model.ResolveCategory(tx)
}

// ByMonth keys a transaction by the YYYY-MM of its date, bucketing
// unparseable dates under "unknown".
func ByMonth(tx model.Transaction) string {
	return model.MonthKey(tx.Date)
}

// ByQuarterLabel keys a transaction by its precomputed quarterlyPeriod label.
// Rows without a valid Q1–Q4 label are dropped (key ""), not zero-filled into
// a bucket.
func ByQuarterLabel(tx model.Transaction) string {
	if model.ValidQuarterLabel(tx.QuarterlyPeriod) {
		return tx.QuarterlyPeriod
	}
	return ""
}

// ByPayee keys a transaction by its resolved payee key (payeeId, then payee,
// then "Unknown").
func ByPayee(tx model.Transaction) string {
	return model.ResolvePayeeKey(tx)
}

// PayeeAggregate is the multi-dimensional rollup for a single payee or
// vendor: total, count, a category breakdown, and a per-quarter breakdown.
type PayeeAggregate struct {
	Key          string
	Name         string
	TaxID        string
	IsContractor bool
	Total        float64
	Count        int
	Categories   map[string]float64
	Quarters     map[string]float64
}

func newPayeeAggregate(key, name string) *PayeeAggregate {
	return &PayeeAggregate{
		Key:        key,
		Name:       name,
		Categories: make(map[string]float64),
		// Quarters are always initialized so the serialized shape is stable
		// even for payees with undated transactions.
		Quarters: map[string]float64{"Q1": 0, "Q2": 0, "Q3": 0, "Q4": 0},
	}
}

// AggregatePayees rolls transactions up per payee, preserving first-seen
// order so downstream stable sorts break ties deterministically.
//
// NOTE: the quarterly breakdown here is derived from the transaction date's
// calendar month, while the tax summary trusts the precomputed
// quarterlyPeriod label (ByQuarterLabel). The two derivations can disagree
// for transactions imported with off-calendar labels. Both behaviors are
// load-bearing for their respective reports; unifying them is an open
// product question, so neither path may be changed silently.
func AggregatePayees(txs []model.Transaction, keyFn KeyFunc, nameFn func(model.Transaction) string) []*PayeeAggregate {
	byKey := make(map[string]*PayeeAggregate)
	var order []*PayeeAggregate

	for _, tx := range txs {
		key := keyFn(tx)
		if key == "" {
			continue
		}
		agg, ok := byKey[key]
		if !ok {
			agg = newPayeeAggregate(key, nameFn(tx))
			byKey[key] = agg
			order = append(order, agg)
		}
		amount := model.AbsAmount(tx)
		agg.Total += amount
		agg.Count++
		agg.Categories[model.ResolveCategory(tx)] += amount
		if tx.PayeeTaxID != "" {
			agg.TaxID = tx.PayeeTaxID
		}
		if tx.IsContractorPayment {
			agg.IsContractor = true
		}
		if t, ok := model.NormalizeDate(tx.Date); ok {
			agg.Quarters[model.QuarterOf(t)] += amount
		}
	}
	return order
}

// PercentOf returns amount as a percentage of total, guarding the zero-total
// case so callers never emit NaN.
func PercentOf(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount / total * 100
}

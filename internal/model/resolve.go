package model

import (
	"math"
	"strings"
)

// UnknownPayee is the bucket key for transactions with no payee identity.
const UnknownPayee = "Unknown"

// Uncategorized is the category assigned to transactions with a blank category.
const Uncategorized = "Uncategorized"

// ResolveCategory returns the transaction's category, defaulting blank or
// whitespace-only values to Uncategorized.
func ResolveCategory(tx Transaction) string {
	if c := strings.TrimSpace(tx.Category); c != "" {
		return c
	}
	return Uncategorized
}

// ResolvePayeeKey returns the aggregation key for a payee: the stable payeeId
// when present, else the free-text payee, else UnknownPayee. The precedence
// lives here, once, instead of ad-hoc fallback chains at every call site.
func ResolvePayeeKey(tx Transaction) string {
	if id := strings.TrimSpace(tx.PayeeID); id != "" {
		return id
	}
	if p := strings.TrimSpace(tx.Payee); p != "" {
		return p
	}
	return UnknownPayee
}

// ResolvePayeeName returns the display name for a payee: payeeName, else the
// free-text payee, else UnknownPayee.
func ResolvePayeeName(tx Transaction) string {
	if n := strings.TrimSpace(tx.PayeeName); n != "" {
		return n
	}
	if p := strings.TrimSpace(tx.Payee); p != "" {
		return p
	}
	return UnknownPayee
}

// ResolveVendorKey returns the aggregation key for a vendor: vendorId, else
// vendorName, else UnknownPayee.
func ResolveVendorKey(tx Transaction) string {
	if id := strings.TrimSpace(tx.VendorID); id != "" {
		return id
	}
	if n := strings.TrimSpace(tx.VendorName); n != "" {
		return n
	}
	return UnknownPayee
}

// ResolveVendorName returns the display name for a vendor.
func ResolveVendorName(tx Transaction) string {
	if n := strings.TrimSpace(tx.VendorName); n != "" {
		return n
	}
	return UnknownPayee
}

// AbsAmount returns the magnitude of the transaction amount. The engine never
// assumes a sign convention; callers elsewhere normalize signs, so magnitude
// is what every aggregate works with.
func AbsAmount(tx Transaction) float64 {
	return math.Abs(tx.Amount)
}

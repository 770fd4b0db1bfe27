package model

// TransactionType is the high-level kind of a ledger entry.
type TransactionType string

const (
	TypeIncome     TransactionType = "income"
	TypeExpense    TransactionType = "expense"
	TypeTransfer   TransactionType = "transfer"
	TypeAdjustment TransactionType = "adjustment"
)

// Transaction is a single ledger entry. Most fields are optional: ledgers are
// routinely imported from noisy statements, so every reader of this struct
// must tolerate blank strings, zero amounts and unparseable dates.
type Transaction struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"userId" firestore:"userId"`

	// Date may be stored as a time.Time, an ISO string, or an epoch number
	// depending on how the document was imported. Always read it through
	// NormalizeDate.
	Date   any             `json:"date" firestore:"date"`
	Amount float64         `json:"amount" firestore:"amount"`
	Type   TransactionType `json:"type" firestore:"type"`

	Category    string `json:"category,omitempty" firestore:"category"`
	Description string `json:"description,omitempty" firestore:"description"`

	Payee      string `json:"payee,omitempty" firestore:"payee"`
	PayeeID    string `json:"payeeId,omitempty" firestore:"payeeId"`
	PayeeName  string `json:"payeeName,omitempty" firestore:"payeeName"`
	PayeeTaxID string `json:"payeeTaxId,omitempty" firestore:"payeeTaxId"`

	VendorName string `json:"vendorName,omitempty" firestore:"vendorName"`
	VendorID   string `json:"vendorId,omitempty" firestore:"vendorId"`

	CompanyID string `json:"companyId,omitempty" firestore:"companyId"`

	// QuarterlyPeriod is a precomputed Q1..Q4 label set at import time. The
	// report engine never derives it from Date.
	QuarterlyPeriod string `json:"quarterlyPeriod,omitempty" firestore:"quarterlyPeriod"`

	// IsTaxDeductible, when non-nil, overrides the category default.
	IsTaxDeductible     *bool  `json:"isTaxDeductible,omitempty" firestore:"isTaxDeductible"`
	IsContractorPayment bool   `json:"isContractorPayment,omitempty" firestore:"isContractorPayment"`
	EmployeeID          string `json:"employeeId,omitempty" firestore:"employeeId"`
}

// Employee is the slice of the employee profile the report engine needs.
type Employee struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"userId" firestore:"userId"`
	Name   string `json:"name" firestore:"name"`
	Email  string `json:"email,omitempty" firestore:"email"`
	Role   string `json:"role,omitempty" firestore:"role"`
}

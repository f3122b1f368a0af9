package models

// Payment methods accepted by the bookkeeping forms.
const (
	MethodCash   = "Cash"
	MethodOnline = "Online"
	MethodCard   = "Card"
)

// LineItem is one row of a grouped payment's receipt.
type LineItem struct {
	Desc string  `json:"desc"`
	Amt  float64 `json:"amt"`
}

// Payment is money received against a fee entry. FeeTypeID is nil for
// vehicle fee payments.
//
// A grouped receipt is stored as one payment per underlying fee entry (each
// carrying the real fee entry key, so ledgers stay accurate) plus one master
// payment with a "manual-" key and the LineItems; the master exists only for
// invoice reconstruction and is excluded from all balance computations.
type Payment struct {
	ID         int        `json:"id"`
	FeeEntryID string     `json:"feeEntryId"`
	StudentID  int        `json:"studentId"`
	FeeTypeID  *int       `json:"feeTypeId"`
	Amount     float64    `json:"amount"`
	Date       string     `json:"date"`
	Method     string     `json:"method"`
	InvoiceID  string     `json:"invoiceId"`
	LineItems  []LineItem `json:"lineItems,omitempty"`
}

// IsGroupedMaster reports whether this is the synthetic master record of a
// grouped payment.
func (p Payment) IsGroupedMaster() bool {
	key, err := ParseFeeEntryKey(p.FeeEntryID)
	return err == nil && key.Kind == KeyGroupedMaster
}

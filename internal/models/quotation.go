package models

import "time"

// QuotationLine is one priced line item of a quotation, captured at
// generation time.
type QuotationLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	CategoryID  string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// PaymentBreakdown is the financing split of a total price under a payment
// plan. MonthlyPayment and TermMonths are nil for one-off plans.
type PaymentBreakdown struct {
	TotalCost      float64  `json:"total_cost"`
	Deposit        float64  `json:"deposit"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	TermMonths     *int     `json:"term_months,omitempty"`
}

// Quotation is the immutable snapshot produced when a configuration session
// enters the review stage. It is never recomputed; navigating back discards
// it and a fresh one is generated on the next successful forward transition.
type Quotation struct {
	Number       string           `json:"quotation_number"`
	IssueDate    time.Time        `json:"issue_date"`
	ValidUntil   time.Time        `json:"valid_until"`
	ProjectInfo  ProjectInfo      `json:"project_info"`
	Items        map[string]int   `json:"items"`
	Lines        []QuotationLine  `json:"lines"`
	WarrantyID   string           `json:"warranty_id"`
	WarrantyName string           `json:"warranty_name,omitempty"`
	PaymentID    string           `json:"payment_id"`
	PaymentName  string           `json:"payment_name,omitempty"`
	BasePrice    float64          `json:"base_price"`
	TotalPrice   float64          `json:"total_price"`
	Breakdown    PaymentBreakdown `json:"breakdown"`
}

package dto

import "time"

// OutstandingBalanceItem is one student row of the outstanding balance report.
type OutstandingBalanceItem struct {
	StudentID   uint    `json:"student_id"`
	Name        string  `json:"name"`
	AdmissionNo string  `json:"admission_no"`
	Form        string  `json:"form"`
	TotalDue    float64 `json:"total_due"`
	TotalPaid   float64 `json:"total_paid"`
	Outstanding float64 `json:"outstanding_balance"`
}

// OutstandingBalanceReport lists students that still owe fees, largest balance first.
type OutstandingBalanceReport struct {
	Items            []OutstandingBalanceItem `json:"items"`
	TotalOutstanding float64                  `json:"total_outstanding"`
	GeneratedAt      time.Time                `json:"generated_at"`
}

// ReceiptResponse is the printable view of a single payment.
type ReceiptResponse struct {
	PaymentID     uint    `json:"payment_id"`
	StudentName   string  `json:"student_name"`
	AdmissionNo   string  `json:"admission_no"`
	Form          string  `json:"form"`
	TermName      string  `json:"term_name"`
	TermAmount    float64 `json:"term_amount"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date"`
	TermPaidTotal float64 `json:"term_paid_total"`
	TermBalance   float64 `json:"term_balance"`
	CurrentTime   string  `json:"current_time"`
}

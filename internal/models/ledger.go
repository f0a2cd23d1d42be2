package models

// PaymentDetail is a payment joined with its student and term for listing.
type PaymentDetail struct {
	ID          uint    `json:"id"`
	StudentID   uint    `json:"student_id"`
	TermID      uint    `json:"term_id"`
	StudentName string  `json:"student_name"`
	AdmissionNo string  `json:"admission_no"`
	TermName    string  `json:"term_name"`
	AmountPaid  float64 `json:"amount_paid"`
	PaymentDate string  `json:"payment_date"`
}

// ReceiptRecord is a single payment joined with the student and term it settles.
type ReceiptRecord struct {
	PaymentID   uint
	StudentID   uint
	StudentName string
	AdmissionNo string
	Form        string
	TermID      uint
	TermName    string
	TermAmount  float64
	AmountPaid  float64
	PaymentDate string
}

// StudentBalance aggregates what a student owes across every term.
type StudentBalance struct {
	StudentID   uint
	Name        string
	AdmissionNo string
	Form        string
	TotalDue    float64
	TotalPaid   float64
	Outstanding float64
}

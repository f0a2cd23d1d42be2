package dto

import "github.com/noah-isme/school-fees/internal/models"

// PaymentCreateRequest is submitted by the record payment form. StudentInput
// has the form "<id> - <name>"; only the id is used.
type PaymentCreateRequest struct {
	StudentInput string `form:"student_input" json:"student_input"`
	TermID       string `form:"term_id" json:"term_id"`
	AmountPaid   string `form:"amount_paid" json:"amount_paid"`
	PaymentDate  string `form:"payment_date" json:"payment_date"`
}

// PaymentUpdateRequest is submitted by the edit payment form.
type PaymentUpdateRequest struct {
	StudentID   string `form:"student_id" json:"student_id"`
	TermID      string `form:"term_id" json:"term_id"`
	AmountPaid  string `form:"amount_paid" json:"amount_paid"`
	PaymentDate string `form:"payment_date" json:"payment_date"`
}

// PaymentListResponse backs the payments page: the joined payment rows plus
// the students and terms offered by the form selectors.
type PaymentListResponse struct {
	Payments []models.PaymentDetail `json:"payments"`
	Students []models.Student       `json:"students"`
	Terms    []models.Term          `json:"terms"`
}

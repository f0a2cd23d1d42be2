package models

import "time"

// PaymentDateLayout is the storage format of Payment.PaymentDate.
const PaymentDateLayout = "2006-01-02"

// Payment records money received from a student against one term.
//
// StudentID and TermID are plain columns without foreign key constraints, so
// deleting a student or term leaves its payments in place.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   uint      `gorm:"not null;index" json:"student_id"`
	TermID      uint      `gorm:"not null;index" json:"term_id"`
	AmountPaid  float64   `gorm:"type:decimal(12,2);not null" json:"amount_paid"`
	PaymentDate string    `gorm:"size:10;not null;index" json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// All returns the schema models in migration order.
func All() []interface{} {
	return []interface{}{&Student{}, &Term{}, &Payment{}}
}

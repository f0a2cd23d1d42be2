package dto

// TermRequest is submitted by the add and edit term forms. Amount is kept as
// the raw form value and parsed by the service.
type TermRequest struct {
	Name   string `form:"term_name" json:"term_name" validate:"required,max=128"`
	Amount string `form:"amount" json:"amount" validate:"required"`
}

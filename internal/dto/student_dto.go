package dto

// StudentCreateRequest is submitted by the add student form.
type StudentCreateRequest struct {
	AdmissionNo string `form:"admission_no" json:"admission_no" validate:"required,max=64"`
	Name        string `form:"name" json:"name" validate:"required,max=255"`
	Form        string `form:"form" json:"form" validate:"required,max=64"`
}

// StudentUpdateRequest is submitted by the edit student form. The admission
// number cannot be changed.
type StudentUpdateRequest struct {
	Name string `form:"name" json:"name" validate:"required,max=255"`
	Form string `form:"form" json:"form" validate:"required,max=64"`
}

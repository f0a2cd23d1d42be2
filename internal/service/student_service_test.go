package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-fees/internal/dto"
)

func TestStudentServiceCreate(t *testing.T) {
	svcs := setupServices(t)
	ctx := context.Background()

	student, err := svcs.students.Create(ctx, dto.StudentCreateRequest{AdmissionNo: " A-100 ", Name: "Amina Njeri", Form: "Form 1"})
	require.NoError(t, err)
	require.NotZero(t, student.ID)
	require.Equal(t, "A-100", student.AdmissionNo)
	require.Equal(t, "Amina Njeri", student.Name)
	require.Equal(t, int64(1), countRows(t, svcs.db, "students"))
}

func TestStudentServiceCreateKeepsAngleBrackets(t *testing.T) {
	svcs := setupServices(t)
	ctx := context.Background()

	first, err := svcs.students.Create(ctx, dto.StudentCreateRequest{AdmissionNo: "D4", Name: "a<b", Form: "Form 1"})
	require.NoError(t, err)
	require.Equal(t, "a<b", first.Name)

	second, err := svcs.students.Create(ctx, dto.StudentCreateRequest{AdmissionNo: "<x>A1", Name: " Bob <Jr> ", Form: "Form <2>"})
	require.NoError(t, err)
	require.Equal(t, "<x>A1", second.AdmissionNo)
	require.Equal(t, "Bob <Jr>", second.Name)
	require.Equal(t, "Form <2>", second.Form)

	_, err = svcs.students.Create(ctx, dto.StudentCreateRequest{AdmissionNo: "A1", Name: "Amina", Form: "Form 1"})
	require.NoError(t, err, "A1 and <x>A1 are different admission numbers")

	require.NoError(t, svcs.students.Update(ctx, first.ID, dto.StudentUpdateRequest{Name: "Tom & <Jerry>", Form: "Form 1"}))
	students, err := svcs.students.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	require.Equal(t, "Tom & <Jerry>", students[0].Name)
}

func TestStudentServiceCreateDuplicateAdmissionNo(t *testing.T) {
	svcs := setupServices(t)
	ctx := context.Background()

	_, err := svcs.students.Create(ctx, dto.StudentCreateRequest{AdmissionNo: "A-100", Name: "Amina", Form: "Form 1"})
	require.NoError(t, err)

	_, err = svcs.students.Create(ctx, dto.StudentCreateRequest{AdmissionNo: "A-100", Name: "Baraka", Form: "Form 2"})
	require.ErrorIs(t, err, ErrDuplicateAdmissionNo)
	require.Equal(t, int64(1), countRows(t, svcs.db, "students"))
}

func TestStudentServiceCreateRequiresFields(t *testing.T) {
	svcs := setupServices(t)

	_, err := svcs.students.Create(context.Background(), dto.StudentCreateRequest{AdmissionNo: "A-1", Name: "  ", Form: "Form 1"})
	requireValidationMessage(t, err, "Admission number, name and form are required.")

	require.Zero(t, countRows(t, svcs.db, "students"))
}

func TestStudentServiceUpdate(t *testing.T) {
	svcs := setupServices(t)
	ctx := context.Background()
	student, err := svcs.students.Create(ctx, dto.StudentCreateRequest{AdmissionNo: "A-1", Name: "Amina", Form: "Form 1"})
	require.NoError(t, err)

	require.NoError(t, svcs.students.Update(ctx, student.ID, dto.StudentUpdateRequest{Name: "Amina Njeri", Form: "Form 2"}))
	students, err := svcs.students.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Equal(t, "Amina Njeri", students[0].Name)
	require.Equal(t, "Form 2", students[0].Form)
	require.Equal(t, "A-1", students[0].AdmissionNo)

	require.NoError(t, svcs.students.Update(ctx, 999, dto.StudentUpdateRequest{Name: "Ghost", Form: "Form 4"}), "unknown id is silently ignored")

	err = svcs.students.Update(ctx, student.ID, dto.StudentUpdateRequest{Name: "", Form: "Form 2"})
	requireValidationMessage(t, err, "Name and form are required.")
}

func TestStudentServiceDeleteKeepsPayments(t *testing.T) {
	svcs := setupServices(t)
	ctx := context.Background()
	student, err := svcs.students.Create(ctx, dto.StudentCreateRequest{AdmissionNo: "A-1", Name: "Amina", Form: "Form 1"})
	require.NoError(t, err)
	term, err := svcs.terms.Create(ctx, dto.TermRequest{Name: "Term 1", Amount: "100"})
	require.NoError(t, err)
	_, err = svcs.payments.Create(ctx, dto.PaymentCreateRequest{
		StudentInput: studentInput(student.ID, "Amina"),
		TermID:       uintString(term.ID),
		AmountPaid:   "40",
		PaymentDate:  "2024-01-10",
	})
	require.NoError(t, err)

	require.NoError(t, svcs.students.Delete(ctx, student.ID))
	require.NoError(t, svcs.students.Delete(ctx, student.ID), "deleting a missing student is not an error")
	require.Zero(t, countRows(t, svcs.db, "students"))
	require.Equal(t, int64(1), countRows(t, svcs.db, "payments"))
}

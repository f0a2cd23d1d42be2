package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-fees/internal/dto"
)

func TestTermServiceCreate(t *testing.T) {
	svcs := setupServices(t)
	ctx := context.Background()

	term, err := svcs.terms.Create(ctx, dto.TermRequest{Name: "Term 1", Amount: " 1500.756 "})
	require.NoError(t, err)
	require.Equal(t, "Term 1", term.Name)
	require.InDelta(t, 1500.76, term.Amount, 0.0001)

	_, err = svcs.terms.Create(ctx, dto.TermRequest{Name: "Term 1", Amount: "10"})
	require.ErrorIs(t, err, ErrDuplicateTermName)
	require.Equal(t, int64(1), countRows(t, svcs.db, "terms"))
}

func TestTermServiceKeepsAngleBrackets(t *testing.T) {
	svcs := setupServices(t)

	term, err := svcs.terms.Create(context.Background(), dto.TermRequest{Name: " Term <1> ", Amount: "100"})
	require.NoError(t, err)
	require.Equal(t, "Term <1>", term.Name)

	terms, err := svcs.terms.List(context.Background())
	require.NoError(t, err)
	require.Len(t, terms, 1)
	require.Equal(t, "Term <1>", terms[0].Name)
}

func TestTermServiceValidation(t *testing.T) {
	svcs := setupServices(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		req     dto.TermRequest
		message string
	}{
		{name: "missing name", req: dto.TermRequest{Amount: "10"}, message: "Term name and amount are required."},
		{name: "missing amount", req: dto.TermRequest{Name: "Term 1"}, message: "Term name and amount are required."},
		{name: "non numeric", req: dto.TermRequest{Name: "Term 1", Amount: "ten"}, message: "Amount must be a number."},
		{name: "not a number", req: dto.TermRequest{Name: "Term 1", Amount: "NaN"}, message: "Amount must be a number."},
		{name: "negative", req: dto.TermRequest{Name: "Term 1", Amount: "-5"}, message: "Amount cannot be negative."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svcs.terms.Create(ctx, tc.req)
			requireValidationMessage(t, err, tc.message)
		})
	}
	require.Zero(t, countRows(t, svcs.db, "terms"))
}

func TestTermServiceUpdate(t *testing.T) {
	svcs := setupServices(t)
	ctx := context.Background()
	first, err := svcs.terms.Create(ctx, dto.TermRequest{Name: "Term 1", Amount: "100"})
	require.NoError(t, err)
	second, err := svcs.terms.Create(ctx, dto.TermRequest{Name: "Term 2", Amount: "50"})
	require.NoError(t, err)

	require.NoError(t, svcs.terms.Update(ctx, first.ID, dto.TermRequest{Name: "Term One", Amount: "120"}))
	require.ErrorIs(t, svcs.terms.Update(ctx, second.ID, dto.TermRequest{Name: "Term One", Amount: "50"}), ErrDuplicateTermName)
	requireValidationMessage(t, svcs.terms.Update(ctx, second.ID, dto.TermRequest{Name: "Term 2", Amount: "abc"}), "Amount must be a number.")
	require.NoError(t, svcs.terms.Update(ctx, 999, dto.TermRequest{Name: "Ghost", Amount: "1"}))

	terms, err := svcs.terms.List(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	require.Equal(t, "Term One", terms[0].Name)
	require.InDelta(t, 120, terms[0].Amount, 0.001)
	require.Equal(t, "Term 2", terms[1].Name)

	require.NoError(t, svcs.terms.Delete(ctx, first.ID))
	terms, err = svcs.terms.List(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 1)
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutstandingBalancesScenario(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	termA := seedTerm(t, db, "Term A", 100)
	termB := seedTerm(t, db, "Term B", 50)
	student := seedStudent(t, db, "S-1", "Student S")

	rows, err := repo.OutstandingBalances(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, student.ID, rows[0].StudentID)
	require.InDelta(t, 150, rows[0].TotalDue, 0.001)
	require.InDelta(t, 0, rows[0].TotalPaid, 0.001)
	require.InDelta(t, 150, rows[0].Outstanding, 0.001)

	seedPayment(t, db, student.ID, termA.ID, 40, "2024-01-10")
	rows, err = repo.OutstandingBalances(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.InDelta(t, 110, rows[0].Outstanding, 0.001)

	seedPayment(t, db, student.ID, termB.ID, 150, "2024-02-10")
	rows, err = repo.OutstandingBalances(ctx)
	require.NoError(t, err)
	require.Empty(t, rows, "settled students are excluded")
}

func TestOutstandingBalancesTotalDueIsSumOfAllTerms(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	amounts := []float64{120, 80.5, 45.25}
	for i, amount := range amounts {
		seedTerm(t, db, []string{"T1", "T2", "T3"}[i], amount)
	}
	for _, adm := range []string{"A", "B", "C", "D"} {
		seedStudent(t, db, adm, "Student "+adm)
	}

	rows, err := repo.OutstandingBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for _, row := range rows {
		require.InDelta(t, 245.75, row.TotalDue, 0.001)
	}
}

func TestOutstandingBalancesOrderingAndDeletedTerms(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	termA := seedTerm(t, db, "Term A", 100)
	termB := seedTerm(t, db, "Term B", 50)
	first := seedStudent(t, db, "S-1", "First")
	second := seedStudent(t, db, "S-2", "Second")
	third := seedStudent(t, db, "S-3", "Third")

	// multiple payments against one term must not inflate total_due
	seedPayment(t, db, first.ID, termA.ID, 20, "2024-01-01")
	seedPayment(t, db, first.ID, termA.ID, 20, "2024-01-02")
	seedPayment(t, db, third.ID, termB.ID, 40, "2024-01-03")

	rows, err := repo.OutstandingBalances(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, second.ID, rows[0].StudentID)
	require.InDelta(t, 150, rows[0].Outstanding, 0.001)
	require.Equal(t, first.ID, rows[1].StudentID, "ties break on student id")
	require.InDelta(t, 110, rows[1].Outstanding, 0.001)
	require.Equal(t, third.ID, rows[2].StudentID)
	require.InDelta(t, 110, rows[2].Outstanding, 0.001)
	for _, row := range rows {
		require.InDelta(t, 150, row.TotalDue, 0.001)
	}

	require.NoError(t, NewTermRepository(db).Delete(ctx, termB.ID))
	rows, err = repo.OutstandingBalances(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, second.ID, rows[0].StudentID)
	require.InDelta(t, 100, rows[0].Outstanding, 0.001)
	require.Equal(t, third.ID, rows[1].StudentID)
	require.InDelta(t, 0, rows[1].TotalPaid, 0.001, "payments against a deleted term no longer count")
	require.Equal(t, first.ID, rows[2].StudentID)
	require.InDelta(t, 60, rows[2].Outstanding, 0.001)
}

func TestOutstandingBalancesWithoutTerms(t *testing.T) {
	db := setupTestDB(t)
	seedStudent(t, db, "S-1", "Student")

	rows, err := NewReportRepository(db).OutstandingBalances(context.Background())
	require.NoError(t, err)
	require.Empty(t, rows)
}

package seed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/FantasySeed/internal/roster"
	"github.com/hetulpatel/FantasySeed/internal/storage/sqlite"
)

func validRoster(userID int64, round, costEach int) []sqlite.RosterRow {
	var rows []sqlite.RosterRow
	id := int64(1)
	for _, pos := range roster.Positions {
		for i := 0; i < roster.PerCategory; i++ {
			rows = append(rows, sqlite.RosterRow{
				UserID:      userID,
				Round:       round,
				PlayerID:    id,
				Position:    pos,
				Cost:        costEach,
				HasBudget:   true,
				TotalBudget: 100,
				UsedBudget:  costEach * 10,
			})
			id++
		}
	}
	return rows
}

func TestValidatePasses(t *testing.T) {
	rows := append(validRoster(1, 1, 8), validRoster(1, 2, 9)...)
	report := Validate(rows, []int64{1}, 2)
	require.True(t, report.OK(), "issues: %v", report.Issues)
	require.Equal(t, 2, report.Checked)
}

func TestValidateIssues(t *testing.T) {
	t.Run("missing roster", func(t *testing.T) {
		report := Validate(validRoster(1, 1, 8), []int64{1, 2}, 1)
		require.Len(t, report.Issues, 1)
		require.Equal(t, int64(2), report.Issues[0].UserID)
		require.Equal(t, "no roster", report.Issues[0].Message)
	})

	t.Run("short roster", func(t *testing.T) {
		rows := validRoster(1, 1, 8)[:9]
		for i := range rows {
			rows[i].UsedBudget = 72
		}
		report := Validate(rows, nil, 0)
		require.Len(t, report.Issues, 2)
		require.Equal(t, "expected 10 players, got 9", report.Issues[0].Message)
		require.Equal(t, "expected 2 C players, got 1", report.Issues[1].Message)
	})

	t.Run("over budget", func(t *testing.T) {
		report := Validate(validRoster(1, 1, 11), nil, 0)
		require.Len(t, report.Issues, 1)
		require.Equal(t, "total cost 110 exceeds budget 100", report.Issues[0].Message)
	})

	t.Run("used budget mismatch", func(t *testing.T) {
		rows := validRoster(1, 1, 8)
		for i := range rows {
			rows[i].UsedBudget = 85
		}
		report := Validate(rows, nil, 0)
		require.Len(t, report.Issues, 1)
		require.Equal(t, "user 1, round 1: total cost 80 does not match used budget 85", report.Issues[0].String())
	})

	t.Run("no budget row", func(t *testing.T) {
		rows := validRoster(1, 1, 8)
		for i := range rows {
			rows[i].HasBudget = false
		}
		report := Validate(rows, nil, 0)
		require.Len(t, report.Issues, 1)
		require.Equal(t, "no budget row", report.Issues[0].Message)
	})
}

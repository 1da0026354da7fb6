package league

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/FantasySeed/internal/hashutil"
	"github.com/hetulpatel/FantasySeed/internal/roster"
)

func TestTeamsHaveFullSquads(t *testing.T) {
	require.Len(t, Teams, 12)
	require.Len(t, TeamNames(), 12)
	seen := make(map[string]bool)
	for _, team := range Teams {
		require.GreaterOrEqual(t, len(team.Players), SquadSize, team.Name)
		require.False(t, seen[team.Name], "duplicate team %s", team.Name)
		seen[team.Name] = true
	}
}

func TestPlayersFillPositionsInOrder(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	players, err := g.Players(7, Teams[0])
	require.NoError(t, err)
	require.Len(t, players, SquadSize)

	counts := make(map[roster.Category]int)
	for i, p := range players {
		require.Equal(t, int64(7), p.TeamID)
		require.Equal(t, Teams[0].Players[i], p.Name)
		require.Equal(t, roster.Positions[i/roster.PerCategory], p.Position)
		require.GreaterOrEqual(t, p.Cost, 5)
		require.LessOrEqual(t, p.Cost, 25)
		counts[p.Position]++
	}
	for _, pos := range roster.Positions {
		require.Equal(t, roster.PerCategory, counts[pos])
	}
}

func TestPlayersRejectsShortSquad(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	_, err := g.Players(1, TeamRoster{Name: "Short", Players: []string{"a", "b"}})
	require.Error(t, err)
}

func TestGeneratorRanges(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)))
	for i := 0; i < 500; i++ {
		b := g.RoundBudget()
		require.GreaterOrEqual(t, b, 80)
		require.LessOrEqual(t, b, 100)

		st := g.StatLine()
		require.NoError(t, st.Validate())
		require.LessOrEqual(t, st.Points, 35)
		require.LessOrEqual(t, st.Rebounds, 15)
		require.LessOrEqual(t, st.Assists, 12)
		require.LessOrEqual(t, st.Steals, 4)
		require.LessOrEqual(t, st.Blocks, 5)
		require.LessOrEqual(t, st.Turnovers, 6)
	}
}

func TestGeneratorIsReproducible(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(99)))
	b := NewGenerator(rand.New(rand.NewSource(99)))
	for i := 0; i < 20; i++ {
		require.Equal(t, a.PlayerCost(), b.PlayerCost())
		require.Equal(t, a.StatLine(), b.StatLine())
		require.Equal(t, a.Locked(), b.Locked())
	}
}

func TestFixedRange(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(5)))
	g.Cost = Range{Min: 12, Max: 12}
	require.Equal(t, 12, g.PlayerCost())
}

func TestUsers(t *testing.T) {
	users := Users(2, "secret", true)
	require.Len(t, users, 3)
	require.Equal(t, AdminEmail, users[0].Email)
	require.Equal(t, hashutil.HashPassword(AdminPassword), users[0].PasswordHash)
	require.Equal(t, "User 2", users[2].Name)
	require.Equal(t, "user2@fantasy.com", users[2].Email)
	require.Equal(t, "secret", users[2].Password)

	require.Len(t, Users(2, "secret", false), 2)
	require.Empty(t, Users(0, "secret", false))
}

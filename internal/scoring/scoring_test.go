package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFantasyPoints(t *testing.T) {
	tests := []struct {
		name string
		line StatLine
		want int
	}{
		{
			name: "win",
			line: StatLine{Points: 10, Rebounds: 5, Assists: 3, Steals: 2, Blocks: 1, Turnovers: 2, TeamWin: true},
			want: 27,
		},
		{
			name: "loss",
			line: StatLine{Points: 10, Rebounds: 5, Assists: 3, Steals: 2, Blocks: 1, Turnovers: 2},
			want: 19,
		},
		{
			name: "empty loss goes negative",
			line: StatLine{Turnovers: 4},
			want: -7,
		},
		{
			name: "empty win",
			line: StatLine{TeamWin: true},
			want: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FantasyPoints(tt.line))
		})
	}
}

func TestStatLineResult(t *testing.T) {
	require.Equal(t, "W", StatLine{TeamWin: true}.Result())
	require.Equal(t, "L", StatLine{}.Result())
}

func TestStatLineValidate(t *testing.T) {
	require.NoError(t, StatLine{Points: 3}.Validate())

	err := StatLine{Points: 3, Blocks: -1}.Validate()
	require.ErrorIs(t, err, ErrNegativeStat)
	require.Contains(t, err.Error(), "blocks=-1")
}

func roster(starters []int, bench []int) []Entry {
	var out []Entry
	id := int64(0)
	for _, p := range starters {
		id++
		out = append(out, Entry{PlayerID: id, Points: p, OnCourt: true})
	}
	for _, p := range bench {
		id++
		out = append(out, Entry{PlayerID: id, Points: p})
	}
	return out
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    int
	}{
		{
			name:    "starters plus top three bench",
			entries: roster([]int{20, 20, 20, 20, 20}, []int{1, 20, 5, 15, 10}),
			want:    145,
		},
		{
			name:    "negative bench scores still ranked",
			entries: roster([]int{10, 10, 10, 10, 10}, []int{-3, -1, -7, 2, 0}),
			want:    51,
		},
		{
			name:    "nine entries score zero",
			entries: roster([]int{20, 20, 20, 20, 20}, []int{20, 15, 10, 5}),
			want:    0,
		},
		{
			name:    "eleven entries score zero",
			entries: roster([]int{20, 20, 20, 20, 20}, []int{20, 15, 10, 5, 1, 1}),
			want:    0,
		},
		{
			name: "empty roster",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RoundScore(tt.entries))
		})
	}
}

func TestTeamScoreShortBench(t *testing.T) {
	require.Equal(t, 100+9, TeamScore(roster([]int{20, 20, 20, 20, 20}, []int{4, 5})))
	require.Equal(t, 9, TeamScore(roster(nil, []int{1, 2, 3, 4})))
}

func TestCounted(t *testing.T) {
	entries := roster([]int{1, 1, 1, 1, 1}, []int{20, 15, 10, 5, 1})
	counted := Counted(entries)
	require.Len(t, counted, 10)
	for id := int64(1); id <= 8; id++ {
		require.True(t, counted[id], "player %d", id)
	}
	require.False(t, counted[9])
	require.False(t, counted[10])
}

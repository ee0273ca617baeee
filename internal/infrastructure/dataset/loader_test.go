package dataset

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

const playersCSV = `Player_Name,Matches_Batted,Not_Outs,Runs_Scored,Balls_Faced,Batting_Average,Batting_Strike_Rate,Centuries,Matches_Bowled,Balls_Bowled,Runs_Conceded,Wickets_Taken,Bowling_Average,Economy_Rate,Bowling_Strike_Rate,Four_Wicket_Hauls,Five_Wicket_Hauls
V Kohli,15,2,741,524,61.75,141.41,1,No stats,No stats,No stats,No stats,No stats,No stats,No stats,No stats,No stats
JJ Bumrah,3,2,8,10,No stats,80.0,0,13,312,401,20,20.05,7.71,15.6,1,0
`

const matchesCSV = `id,season,date,team1,team2,toss_winner,toss_decision,winner,venue,city,player_of_match
1001,2025,2025-03-22,Chennai Super Kings,Mumbai Indians,Chennai Super Kings,bat,Chennai Super Kings,MA Chidambaram Stadium,Chennai,R Ravindra
1002,2025,2025-03-23,Mumbai Indians,Chennai Super Kings,Mumbai Indians,field,,Wankhede Stadium,Mumbai,
`

const deliveriesCSV = `match_id,inning,over,ball,batter,bowler,batsman_runs,total_runs,is_wicket,player_dismissed,dismissal_kind
1001,1,0,1,R Ravindra,JJ Bumrah,4,4,0,,
1001,1,0,2,R Ravindra,JJ Bumrah,0,0,1,R Ravindra,bowled
`

const fixturesCSV = `Home Team,Away Team
Kolkata Knight Riders,Royal Challengers Bangalore
Sunrisers Hyderabad,Rajasthan Royals
`

func writeFixtureSet(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	// Deliveries ship gzip-compressed, the way the published dataset does.
	deliveriesPath := filepath.Join(dir, "deliveries.csv.gz")
	file, err := os.Create(deliveriesPath)
	require.NoError(t, err)
	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(deliveriesCSV))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, file.Close())

	return Paths{
		Players:    write("players.csv", playersCSV),
		Matches:    write("matches.csv", matchesCSV),
		Deliveries: deliveriesPath,
		Fixtures:   write("schedule.csv", fixturesCSV),
	}
}

func TestLoader_LoadAll(t *testing.T) {
	t.Parallel()

	loader := NewLoader(writeFixtureSet(t))
	tables, err := loader.LoadAll(context.Background())
	require.NoError(t, err)

	require.Len(t, tables.Players, 2)
	require.Equal(t, "V Kohli", tables.Players[0].Name)
	require.Nil(t, tables.Players[0].EconomyRate)
	require.NotNil(t, tables.Players[1].WicketsTaken)
	require.Equal(t, 20.0, *tables.Players[1].WicketsTaken)

	require.Len(t, tables.Matches, 2)
	require.Equal(t, "Chennai Super Kings", tables.Matches[0].Winner)
	require.True(t, tables.Matches[1].NoResult())
	require.Equal(t, "field", tables.Matches[1].TossDecision)

	require.Len(t, tables.Deliveries, 2)
	require.True(t, tables.Deliveries[1].IsWicket)
	require.Equal(t, "R Ravindra", tables.Deliveries[1].PlayerDismissed)

	require.Len(t, tables.Fixtures, 2)
	require.Equal(t, "Kolkata Knight Riders vs Royal Challengers Bangalore", tables.Fixtures[0].Label())
}

func TestLoader_MissingSource(t *testing.T) {
	t.Parallel()

	paths := writeFixtureSet(t)
	paths.Matches = filepath.Join(t.TempDir(), "nope.csv")

	loader := NewLoader(paths)
	_, err := loader.LoadAll(context.Background())
	require.Error(t, err)
	require.True(t, crerr.Is(err, ErrMissingSource), "expected missing-source mark, got %v", err)
}

func TestLoader_MalformedSchema(t *testing.T) {
	t.Parallel()

	paths := writeFixtureSet(t)
	broken := filepath.Join(t.TempDir(), "matches.csv")
	require.NoError(t, os.WriteFile(broken, []byte("id,season,date\n1,2025,2025-01-01\n"), 0o600))
	paths.Matches = broken

	loader := NewLoader(paths)
	_, err := loader.LoadAll(context.Background())
	require.Error(t, err)
	require.True(t, crerr.Is(err, ErrMalformedSchema), "expected malformed-schema mark, got %v", err)
}

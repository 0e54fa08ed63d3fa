package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchframe/cupstats/internal/dataset"
)

func match(year int, stage, home, away string, attendance, hg, ag int) dataset.Match {
	return dataset.Match{
		Year: year, Stage: stage, HomeTeam: home, AwayTeam: away,
		Attendance: attendance, HomeGoals: hg, AwayGoals: ag, GoalsKnown: true,
	}
}

func fixture() []dataset.Match {
	return []dataset.Match{
		match(1930, "Group 1", "France", "Mexico", 1000, 4, 1),
		match(1930, "Group 1", "Argentina", "France", 2000, 1, 0),
		match(1930, "Final", "Uruguay", "Argentina", 68346, 4, 2),
		match(1950, "Final Round", "Uruguay", "Brazil", 173850, 2, 1),
		match(1994, "Final", "Brazil", "Italy", 94194, 0, 0),
		match(2014, "Final", "Germany", "Argentina", 74738, 1, 0),
		match(2014, "Group G", "Germany", "Portugal", 51081, 4, 0),
		match(2014, "Group G", "USA", "Portugal", 40123, 2, 2),
	}
}

func TestYearlyAttendanceMean(t *testing.T) {
	rows, err := YearlyAttendance(fixture())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// 1930: (1000 + 2000 + 68346) / 3
	assert.Equal(t, 1930, rows[0].Year)
	assert.InDelta(t, 71346.0/3, rows[0].MeanAttendance, 1e-9)
	assert.Equal(t, 3, rows[0].Matches)

	// Two-match case: (1000 + 2000) / 2 = 1500.
	half, err := YearlyAttendance([]dataset.Match{
		match(1930, "Group 1", "A", "B", 1000, 0, 0),
		match(1930, "Group 1", "C", "D", 2000, 0, 0),
	})
	require.NoError(t, err)
	require.Len(t, half, 1)
	assert.InDelta(t, 1500.0, half[0].MeanAttendance, 1e-9)

	years := []int{rows[0].Year, rows[1].Year, rows[2].Year, rows[3].Year}
	assert.Equal(t, []int{1930, 1950, 1994, 2014}, years)
}

func TestFinalAppearancesSharesSumToHundred(t *testing.T) {
	rows, err := FinalAppearances(fixture())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Only exact "Final" rows count; "Final Round" does not.
	total := 0.0
	for _, r := range rows {
		assert.Equal(t, 1, r.Count)
		total += r.Share
	}
	assert.InDelta(t, 100.0, total, 1e-9)

	// Equal counts tie-break on team name.
	assert.Equal(t, "Brazil", rows[0].Team)
	assert.Equal(t, "Germany", rows[1].Team)
	assert.Equal(t, "Uruguay", rows[2].Team)
}

func TestTopMatchupsRankingAndCap(t *testing.T) {
	rows, err := TopMatchups(fixture())
	require.NoError(t, err)
	require.True(t, len(rows) <= TopMatchupCount)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].MeanAttendance, rows[i].MeanAttendance)
	}
	assert.Equal(t, "Uruguay vs. Brazil", rows[0].Label)

	// Cap at K when more labels exist.
	var many []dataset.Match
	for i := 0; i < 15; i++ {
		many = append(many, match(1930, "Group", teamName(i), "Opponent", 1000+i, 0, 0))
	}
	rows, err = TopMatchups(many)
	require.NoError(t, err)
	assert.Len(t, rows, TopMatchupCount)
}

func teamName(i int) string {
	return string(rune('A' + i))
}

func TestMatchupDirectionIsPreserved(t *testing.T) {
	rows, err := TopMatchups([]dataset.Match{
		match(1930, "Group", "France", "Mexico", 1000, 0, 0),
		match(1934, "Group", "Mexico", "France", 3000, 0, 0),
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Mexico vs. France", rows[0].Label)
	assert.Equal(t, "France vs. Mexico", rows[1].Label)
}

func TestGoalsForYearMergesRoles(t *testing.T) {
	rows, err := GoalsForYear(fixture(), 2014)
	require.NoError(t, err)

	byKey := map[[2]string]int{}
	for _, r := range rows {
		byKey[[2]string{r.Stage, r.Team}] = r.Goals
	}
	// Germany: 1 home goal in the final, 4 home goals in the group.
	assert.Equal(t, 1, byKey[[2]string{"Final", "Germany"}])
	assert.Equal(t, 4, byKey[[2]string{"Group G", "Germany"}])
	// Portugal appears only away, with 0 then 2 goals; the away-only role
	// still yields rows.
	assert.Equal(t, 2, byKey[[2]string{"Group G", "Portugal"}])
	// Argentina lost the final without scoring: merged total is zero, and the
	// row is present rather than dropped.
	goals, present := byKey[[2]string{"Final", "Argentina"}]
	assert.True(t, present)
	assert.Equal(t, 0, goals)

	// Ordered by stage then team.
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		assert.True(t, prev.Stage < cur.Stage || (prev.Stage == cur.Stage && prev.Team < cur.Team))
	}
}

func TestGoalsForYearSkipsUnknownGoals(t *testing.T) {
	m := match(2014, "Final", "Germany", "Argentina", 74738, 1, 0)
	m.GoalsKnown = false
	rows, err := GoalsForYear([]dataset.Match{m}, 2014)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHostNationAttendanceAllowList(t *testing.T) {
	rows, err := HostNationAttendance(fixture())
	require.NoError(t, err)
	require.Len(t, rows, len(HostNations))

	byHost := map[string]HostAttendance{}
	for _, r := range rows {
		byHost[r.Host] = r
	}
	// Uruguay hosted twice in the fixture.
	uy := byHost["Uruguay"]
	assert.True(t, uy.HasData)
	assert.Equal(t, 2, uy.Matches)
	assert.InDelta(t, (68346.0+173850.0)/2, uy.MeanAttendance, 1e-9)

	// Never-hosting team names are excluded even when present in the data.
	_, portugal := byHost["Portugal"]
	assert.False(t, portugal)

	// Hosts with no rows stay in the table, explicitly marked.
	chile := byHost["Chile"]
	assert.False(t, chile.HasData)
	assert.Equal(t, 0, chile.Matches)

	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].Host, rows[i].Host)
	}
}

func TestGoalsByDecadeBuckets(t *testing.T) {
	rows, err := GoalsByDecade(fixture())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, 1930, rows[0].Decade)
	assert.ElementsMatch(t, []int{5, 1, 6}, rows[0].Goals)
	// 1994 buckets to 1990.
	assert.Equal(t, 1990, rows[2].Decade)
	assert.Equal(t, []int{0}, rows[2].Goals)
	assert.Equal(t, 2010, rows[3].Decade)
}

func TestAggregatesAreDeterministic(t *testing.T) {
	first, err := BuildSummary(fixture(), 2014)
	require.NoError(t, err)
	second, err := BuildSummary(fixture(), 2014)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNilTableIsContractViolation(t *testing.T) {
	checks := []func() error{
		func() error { _, err := YearlyAttendance(nil); return err },
		func() error { _, err := FinalAppearances(nil); return err },
		func() error { _, err := TopMatchups(nil); return err },
		func() error { _, err := GoalsForYear(nil, 2014); return err },
		func() error { _, err := HostNationAttendance(nil); return err },
		func() error { _, err := GoalsByDecade(nil); return err },
		func() error { _, err := BuildSummary(nil, 2014); return err },
	}
	for _, check := range checks {
		err := check()
		require.Error(t, err)
		var aggErr *AggregationError
		assert.ErrorAs(t, err, &aggErr)
	}
}

func TestEmptyTableYieldsEmptyRows(t *testing.T) {
	rows, err := YearlyAttendance([]dataset.Match{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	finals, err := FinalAppearances([]dataset.Match{})
	require.NoError(t, err)
	assert.Empty(t, finals)
}

func TestDistributionQuartiles(t *testing.T) {
	q := DistributionQuartiles([]int{1, 2, 3, 4, 5})
	assert.InDelta(t, 2.0, q.Q1, 1e-9)
	assert.InDelta(t, 3.0, q.Median, 1e-9)
	assert.InDelta(t, 4.0, q.Q3, 1e-9)

	q = DistributionQuartiles([]int{1, 2, 3, 4})
	assert.InDelta(t, 1.75, q.Q1, 1e-9)
	assert.InDelta(t, 2.5, q.Median, 1e-9)
	assert.InDelta(t, 3.25, q.Q3, 1e-9)

	assert.Equal(t, Quartiles{}, DistributionQuartiles(nil))
}

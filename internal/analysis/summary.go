package analysis

import "github.com/matchframe/cupstats/internal/dataset"

// Summary bundles the six summary tables a single run derives. Each table is
// computed fresh from the cleaned slice; nothing here aliases mutable state.
type Summary struct {
	GoalYear   int
	Attendance []YearAttendance
	Finals     []FinalAppearance
	Matchups   []Matchup
	Goals      []StageTeamGoals
	Hosts      []HostAttendance
	GoalSpread []DecadeGoals
}

// BuildSummary runs every aggregate over the cleaned table. goalYear selects
// the tournament for the per-stage goal tally.
func BuildSummary(matches []dataset.Match, goalYear int) (*Summary, error) {
	s := &Summary{GoalYear: goalYear}
	var err error
	if s.Attendance, err = YearlyAttendance(matches); err != nil {
		return nil, err
	}
	if s.Finals, err = FinalAppearances(matches); err != nil {
		return nil, err
	}
	if s.Matchups, err = TopMatchups(matches); err != nil {
		return nil, err
	}
	if s.Goals, err = GoalsForYear(matches, goalYear); err != nil {
		return nil, err
	}
	if s.Hosts, err = HostNationAttendance(matches); err != nil {
		return nil, err
	}
	if s.GoalSpread, err = GoalsByDecade(matches); err != nil {
		return nil, err
	}
	return s, nil
}

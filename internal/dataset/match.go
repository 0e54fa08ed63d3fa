package dataset

import "time"

// DateLayout is the fixed layout used by the Datetime column of the source
// dataset, e.g. "13 Jul 1930 - 15:00".
const DateLayout = "02 Jan 2006 - 15:04"

// Logical column names after normalization. Raw headers may use '.' instead of
// spaces ("Home.Team.Name"); the cleaner maps both spellings to these.
const (
	ColYear       = "Year"
	ColDatetime   = "Datetime"
	ColStage      = "Stage"
	ColStadium    = "Stadium"
	ColCity       = "City"
	ColHomeTeam   = "Home Team Name"
	ColAwayTeam   = "Away Team Name"
	ColAttendance = "Attendance"
	ColHomeGoals  = "Home Team Goals"
	ColAwayGoals  = "Away Team Goals"
)

// LogicalColumns is the fixed projection the cleaner selects, in order.
var LogicalColumns = []string{
	ColYear, ColDatetime, ColStage, ColStadium, ColCity,
	ColHomeTeam, ColAwayTeam, ColAttendance, ColHomeGoals, ColAwayGoals,
}

// Match is one cleaned record of the historical dataset. After cleaning,
// Attendance is always present and goal counts, when known, are non-negative.
// A zero Date means the source value did not conform to DateLayout.
type Match struct {
	Year       int
	Date       time.Time
	Stage      string
	Stadium    string
	City       string
	HomeTeam   string
	AwayTeam   string
	Attendance int
	HomeGoals  int
	AwayGoals  int
	// GoalsKnown is false when either goal column was missing or unparseable.
	GoalsKnown bool
}

// TotalGoals returns the combined goal count for the match, and whether it
// could be resolved.
func (m Match) TotalGoals() (int, bool) {
	if !m.GoalsKnown {
		return 0, false
	}
	return m.HomeGoals + m.AwayGoals, true
}

// Decade buckets the match year down to the nearest multiple of ten:
// 1994 -> 1990, 1930 -> 1930.
func (m Match) Decade() int {
	return m.Year / 10 * 10
}

// Matchup is the "Home vs. Away" grouping label. The pair is ordered: the
// source data distinguishes "A vs. B" from "B vs. A" by venue role, and that
// behavior is preserved as-is.
func (m Match) Matchup() string {
	return m.HomeTeam + " vs. " + m.AwayTeam
}

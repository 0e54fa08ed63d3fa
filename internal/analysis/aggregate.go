// Package analysis derives the report's summary tables from cleaned match
// records. Every function is pure: it takes the immutable cleaned slice and
// returns a fresh, deterministically ordered summary. Missing numeric values
// are excluded from the aggregate they would feed, never propagated.
package analysis

import (
	"sort"

	"github.com/matchframe/cupstats/internal/dataset"
)

// TopMatchupCount is the fixed K for the best-attended matchup ranking.
const TopMatchupCount = 10

// FinalStage is the stage value identifying tournament finals in the cleaned
// data. Matching is exact.
const FinalStage = "Final"

// HostNations lists the nations that hosted a tournament between 1930 and
// 2014, spelled the way the dataset records their teams. Hosting is
// approximated by home-team name; the list is the allow-list for the
// host-nation aggregate.
var HostNations = []string{
	"Argentina",
	"Brazil",
	"Chile",
	"England",
	"France",
	"Germany",
	"Germany FR",
	"Italy",
	"Japan",
	"Korea Republic",
	"Mexico",
	"South Africa",
	"Spain",
	"Sweden",
	"Switzerland",
	"Uruguay",
	"USA",
}

// YearAttendance is one row of the yearly mean-attendance summary.
type YearAttendance struct {
	Year           int
	MeanAttendance float64
	Matches        int
}

// FinalAppearance is one row of the final-appearances summary. Share is the
// team's percentage of all final-stage rows.
type FinalAppearance struct {
	Team  string
	Count int
	Share float64
}

// Matchup is one row of the best-attended matchup ranking. Label keeps the
// home team first; "A vs. B" and "B vs. A" are distinct rows.
type Matchup struct {
	Label          string
	MeanAttendance float64
	Matches        int
}

// StageTeamGoals is a team's total goals within one stage of a tournament,
// summed across its home and away appearances.
type StageTeamGoals struct {
	Stage string
	Team  string
	Goals int
}

// HostAttendance is one row of the host-nation summary. HasData is false for
// an allow-listed host with no matching rows; such hosts stay in the table so
// the renderer can mark them explicitly instead of dropping them.
type HostAttendance struct {
	Host           string
	MeanAttendance float64
	Matches        int
	HasData        bool
}

// DecadeGoals keeps the full distribution of per-match goal totals for one
// decade so the renderer can derive quartiles and outliers itself.
type DecadeGoals struct {
	Decade int
	Goals  []int
}

// YearlyAttendance computes the mean attendance per tournament year, one row
// per year present in the data, ordered by year.
func YearlyAttendance(matches []dataset.Match) ([]YearAttendance, error) {
	if matches == nil {
		return nil, contractViolation("yearly attendance", "nil cleaned table")
	}
	sums := map[int]int{}
	counts := map[int]int{}
	for _, m := range matches {
		sums[m.Year] += m.Attendance
		counts[m.Year]++
	}
	out := make([]YearAttendance, 0, len(sums))
	for year, n := range counts {
		out = append(out, YearAttendance{
			Year:           year,
			MeanAttendance: float64(sums[year]) / float64(n),
			Matches:        n,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

// FinalAppearances counts final-stage appearances per home-team name and each
// count's share of all final rows. Rows are ordered by count descending, then
// team name ascending.
func FinalAppearances(matches []dataset.Match) ([]FinalAppearance, error) {
	if matches == nil {
		return nil, contractViolation("final appearances", "nil cleaned table")
	}
	counts := map[string]int{}
	total := 0
	for _, m := range matches {
		if m.Stage != FinalStage {
			continue
		}
		counts[m.HomeTeam]++
		total++
	}
	out := make([]FinalAppearance, 0, len(counts))
	for team, n := range counts {
		out = append(out, FinalAppearance{
			Team:  team,
			Count: n,
			Share: float64(n) * 100 / float64(total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Team < out[j].Team
	})
	return out, nil
}

// TopMatchups ranks matchup labels by mean attendance and returns the top
// TopMatchupCount. Ties are broken by label ascending for determinism.
func TopMatchups(matches []dataset.Match) ([]Matchup, error) {
	if matches == nil {
		return nil, contractViolation("top matchups", "nil cleaned table")
	}
	sums := map[string]int{}
	counts := map[string]int{}
	for _, m := range matches {
		label := m.Matchup()
		sums[label] += m.Attendance
		counts[label]++
	}
	out := make([]Matchup, 0, len(sums))
	for label, n := range counts {
		out = append(out, Matchup{
			Label:          label,
			MeanAttendance: float64(sums[label]) / float64(n),
			Matches:        n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanAttendance != out[j].MeanAttendance {
			return out[i].MeanAttendance > out[j].MeanAttendance
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > TopMatchupCount {
		out = out[:TopMatchupCount]
	}
	return out, nil
}

// GoalsForYear tallies total goals per (stage, team) for one tournament year.
// Home-role and away-role sums are computed separately and merged; a team
// with no appearances in a role contributes zero for that role rather than
// being dropped. Rows are ordered by stage, then team.
func GoalsForYear(matches []dataset.Match, year int) ([]StageTeamGoals, error) {
	if matches == nil {
		return nil, contractViolation("stage team goals", "nil cleaned table")
	}
	type key struct {
		stage, team string
	}
	home := map[key]int{}
	away := map[key]int{}
	for _, m := range matches {
		if m.Year != year || !m.GoalsKnown {
			continue
		}
		home[key{m.Stage, m.HomeTeam}] += m.HomeGoals
		away[key{m.Stage, m.AwayTeam}] += m.AwayGoals
	}
	merged := map[key]int{}
	for k, g := range home {
		merged[k] += g
	}
	for k, g := range away {
		merged[k] += g
	}
	out := make([]StageTeamGoals, 0, len(merged))
	for k, g := range merged {
		out = append(out, StageTeamGoals{Stage: k.stage, Team: k.team, Goals: g})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stage != out[j].Stage {
			return out[i].Stage < out[j].Stage
		}
		return out[i].Team < out[j].Team
	})
	return out, nil
}

// HostNationAttendance computes mean attendance and match count per host
// nation, restricted to rows whose home-team name is on the HostNations
// allow-list. Every allow-listed host appears in the output; hosts absent
// from the data are returned with HasData false. Rows are ordered by host
// name ascending.
func HostNationAttendance(matches []dataset.Match) ([]HostAttendance, error) {
	if matches == nil {
		return nil, contractViolation("host attendance", "nil cleaned table")
	}
	allowed := make(map[string]bool, len(HostNations))
	for _, h := range HostNations {
		allowed[h] = true
	}
	sums := map[string]int{}
	counts := map[string]int{}
	for _, m := range matches {
		if !allowed[m.HomeTeam] {
			continue
		}
		sums[m.HomeTeam] += m.Attendance
		counts[m.HomeTeam]++
	}
	out := make([]HostAttendance, 0, len(HostNations))
	for _, host := range HostNations {
		n := counts[host]
		row := HostAttendance{Host: host, Matches: n, HasData: n > 0}
		if n > 0 {
			row.MeanAttendance = float64(sums[host]) / float64(n)
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Host < out[j].Host })
	return out, nil
}

// GoalsByDecade buckets matches into decades and collects each decade's full
// distribution of per-match goal totals. Matches whose goals could not be
// resolved are excluded. Rows are ordered by decade.
func GoalsByDecade(matches []dataset.Match) ([]DecadeGoals, error) {
	if matches == nil {
		return nil, contractViolation("goals by decade", "nil cleaned table")
	}
	buckets := map[int][]int{}
	for _, m := range matches {
		total, ok := m.TotalGoals()
		if !ok {
			continue
		}
		d := m.Decade()
		buckets[d] = append(buckets[d], total)
	}
	out := make([]DecadeGoals, 0, len(buckets))
	for decade, goals := range buckets {
		out = append(out, DecadeGoals{Decade: decade, Goals: goals})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Decade < out[j].Decade })
	return out, nil
}

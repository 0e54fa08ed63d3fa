package chart

import (
	"fmt"

	"github.com/matchframe/cupstats/internal/analysis"
)

// Fixed column-to-channel mappings from each summary table to its chart.

// AttendanceSpec maps year to X and mean attendance to Y of the time-series
// line chart.
func AttendanceSpec(rows []analysis.YearAttendance) Spec {
	s := Spec{
		Kind:   KindLine,
		Title:  "Average attendance per tournament",
		XLabel: "Year",
		YLabel: "Mean attendance",
	}
	for _, r := range rows {
		s.Points = append(s.Points, Point{X: float64(r.Year), Y: r.MeanAttendance})
	}
	return s
}

// FinalsSpec maps each team's share of final-stage rows to a pie slice.
func FinalsSpec(rows []analysis.FinalAppearance) Spec {
	s := Spec{
		Kind:  KindPie,
		Title: "Share of final appearances",
	}
	for _, r := range rows {
		s.Slices = append(s.Slices, Slice{Label: r.Team, Value: r.Share})
	}
	return s
}

// MatchupsSpec maps the top-K ranking to a horizontal bar chart, best
// attended first.
func MatchupsSpec(rows []analysis.Matchup) Spec {
	s := Spec{
		Kind:   KindBar,
		Title:  fmt.Sprintf("Top %d matchups by mean attendance", analysis.TopMatchupCount),
		XLabel: "Mean attendance",
	}
	for _, r := range rows {
		s.Bars = append(s.Bars, Bar{Label: r.Label, Value: r.MeanAttendance})
	}
	return s
}

// GoalsSpec maps the per-stage per-team tally to a two-level treemap, stage
// then team, cell area proportional to goals.
func GoalsSpec(rows []analysis.StageTeamGoals, year int) Spec {
	s := Spec{
		Kind:  KindTreemap,
		Title: fmt.Sprintf("Goals by stage and team, %d", year),
	}
	byStage := map[string]int{}
	for _, r := range rows {
		if _, seen := byStage[r.Stage]; !seen {
			byStage[r.Stage] = len(s.Branches)
			s.Branches = append(s.Branches, Branch{Label: r.Stage})
		}
		i := byStage[r.Stage]
		s.Branches[i].Leaves = append(s.Branches[i].Leaves, Leaf{Label: r.Team, Value: float64(r.Goals)})
	}
	return s
}

// HostsSpec maps the host-nation summary onto world regions. No-data hosts
// are carried through so the map paints them explicitly.
func HostsSpec(rows []analysis.HostAttendance) Spec {
	s := Spec{
		Kind:  KindChoropleth,
		Title: "Average home attendance of host nations",
	}
	for _, r := range rows {
		s.Regions = append(s.Regions, RegionValue{Name: r.Host, Value: r.MeanAttendance, HasData: r.HasData})
	}
	return s
}

// DecadesSpec maps each decade's goal distribution to one box.
func DecadesSpec(rows []analysis.DecadeGoals) Spec {
	s := Spec{
		Kind:   KindBox,
		Title:  "Goals per match by decade",
		XLabel: "Decade",
		YLabel: "Goals per match",
	}
	for _, r := range rows {
		values := make([]float64, len(r.Goals))
		for i, g := range r.Goals {
			values[i] = float64(g)
		}
		s.Boxes = append(s.Boxes, Box{Label: fmt.Sprintf("%ds", r.Decade), Values: values})
	}
	return s
}

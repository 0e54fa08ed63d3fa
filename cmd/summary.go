package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/matchframe/cupstats/internal/analysis"
)

var (
	flagSummaryData string
	flagSummaryYear int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the six summary tables without rendering charts",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&flagSummaryData, "data", "", "path to the match CSV (overrides config)")
	summaryCmd.Flags().IntVar(&flagSummaryYear, "year", 0, "tournament year for the goal tally (overrides config)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	dataPath := pick(flagSummaryData, cfgDataset(), "WorldCupMatches.csv")
	year := flagSummaryYear
	if year == 0 && cfg != nil {
		year = cfg.GoalYear
	}
	if year == 0 {
		year = 2014
	}

	s, err := buildSummary(dataPath, year)
	if err != nil {
		return err
	}

	color.Cyan("\nAverage attendance per tournament")
	printTable([]string{"Year", "Mean Attendance", "Matches"}, len(s.Attendance), func(i int) []string {
		r := s.Attendance[i]
		return []string{fmt.Sprintf("%d", r.Year), fmt.Sprintf("%.0f", r.MeanAttendance), fmt.Sprintf("%d", r.Matches)}
	})

	color.Cyan("\nFinal appearances")
	printTable([]string{"Team", "Appearances", "Share"}, len(s.Finals), func(i int) []string {
		r := s.Finals[i]
		return []string{r.Team, fmt.Sprintf("%d", r.Count), fmt.Sprintf("%.1f%%", r.Share)}
	})

	color.Cyan("\nTop %d matchups by mean attendance", analysis.TopMatchupCount)
	printTable([]string{"Matchup", "Mean Attendance", "Matches"}, len(s.Matchups), func(i int) []string {
		r := s.Matchups[i]
		return []string{r.Label, fmt.Sprintf("%.0f", r.MeanAttendance), fmt.Sprintf("%d", r.Matches)}
	})

	color.Cyan("\nGoals by stage and team, %d", s.GoalYear)
	printTable([]string{"Stage", "Team", "Goals"}, len(s.Goals), func(i int) []string {
		r := s.Goals[i]
		return []string{r.Stage, r.Team, fmt.Sprintf("%d", r.Goals)}
	})

	color.Cyan("\nAverage home attendance of host nations")
	printTable([]string{"Host", "Mean Attendance", "Matches"}, len(s.Hosts), func(i int) []string {
		r := s.Hosts[i]
		if !r.HasData {
			return []string{r.Host, "no data", "0"}
		}
		return []string{r.Host, fmt.Sprintf("%.0f", r.MeanAttendance), fmt.Sprintf("%d", r.Matches)}
	})

	color.Cyan("\nGoals per match by decade")
	printTable([]string{"Decade", "Matches", "Q1", "Median", "Q3"}, len(s.GoalSpread), func(i int) []string {
		r := s.GoalSpread[i]
		q := analysis.DistributionQuartiles(r.Goals)
		return []string{
			fmt.Sprintf("%ds", r.Decade), fmt.Sprintf("%d", len(r.Goals)),
			fmt.Sprintf("%.1f", q.Q1), fmt.Sprintf("%.1f", q.Median), fmt.Sprintf("%.1f", q.Q3),
		}
	})

	return nil
}

func printTable(headers []string, rows int, row func(i int) []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	for i := 0; i < rows; i++ {
		table.Append(row(i))
	}
	table.Render()
}

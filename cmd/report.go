package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matchframe/cupstats/internal/analysis"
	"github.com/matchframe/cupstats/internal/chart"
	"github.com/matchframe/cupstats/internal/dataset"
	"github.com/matchframe/cupstats/internal/export"
	"github.com/matchframe/cupstats/internal/geo"
	"github.com/matchframe/cupstats/internal/report"
)

const reportTitle = "FIFA World Cup 1930–2014: Attendance and Scoring"

var (
	flagData string
	flagGeo  string
	flagOut  string
	flagXLSX string
	flagYear int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the full HTML report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&flagData, "data", "", "path to the match CSV (overrides config)")
	reportCmd.Flags().StringVar(&flagGeo, "geo", "", "path to the world GeoJSON (overrides config)")
	reportCmd.Flags().StringVar(&flagOut, "out", "", "output HTML path (overrides config)")
	reportCmd.Flags().StringVar(&flagXLSX, "xlsx", "", "also write summary tables to this workbook")
	reportCmd.Flags().IntVar(&flagYear, "year", 0, "tournament year for the goal treemap (overrides config)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	dataPath := pick(flagData, cfgDataset(), "WorldCupMatches.csv")
	geoPath := pick(flagGeo, cfgGeo(), "world.geo.json")
	outPath := pick(flagOut, cfgOut(), "worldcup-report.html")
	xlsxPath := pick(flagXLSX, cfgXLSX(), "")
	year := flagYear
	if year == 0 && cfg != nil {
		year = cfg.GoalYear
	}
	if year == 0 {
		year = 2014
	}

	summary, err := buildSummary(dataPath, year)
	if err != nil {
		return err
	}

	// A missing atlas degrades the choropleth; it does not abort the report.
	var atlas *geo.Atlas
	if a, err := geo.LoadAtlas(geoPath); err != nil {
		log.WithError(err).Warn("geo boundaries unavailable, map renders without data")
	} else {
		atlas = a
	}

	renderer := chart.NewPlotRenderer(atlasOrNil(atlas), logrus.NewEntry(log))
	doc := report.New(reportTitle)
	sections := []struct {
		heading    string
		spec       chart.Spec
		commentary string
	}{
		{report.HeadingAttendance, chart.AttendanceSpec(summary.Attendance), report.CommentaryAttendance},
		{report.HeadingFinals, chart.FinalsSpec(summary.Finals), report.CommentaryFinals},
		{report.HeadingMatchups, chart.MatchupsSpec(summary.Matchups), report.CommentaryMatchups},
		{report.HeadingGoals, chart.GoalsSpec(summary.Goals, summary.GoalYear), report.CommentaryGoals},
		{report.HeadingHosts, chart.HostsSpec(summary.Hosts), report.CommentaryHosts},
		{report.HeadingGoalsByDecade, chart.DecadesSpec(summary.GoalSpread), report.CommentaryGoalsByDecade},
	}
	for _, sec := range sections {
		log.WithField("chart", string(sec.spec.Kind)).Debug("rendering")
		img, err := renderer.Render(sec.spec)
		if err != nil {
			return fmt.Errorf("render %s chart: %w", sec.spec.Kind, err)
		}
		doc.Append(sec.heading, img, sec.commentary)
	}

	if err := report.Write(outPath, doc); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.WithField("path", outPath).Info("report written")

	if xlsxPath != "" {
		if err := export.Write(xlsxPath, summary); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		log.WithField("path", xlsxPath).Info("workbook written")
	}
	return nil
}

// buildSummary runs the Loader, Cleaner, and Aggregator stages.
func buildSummary(dataPath string, year int) (*analysis.Summary, error) {
	df, err := dataset.Load(dataPath)
	if err != nil {
		return nil, err
	}
	matches, err := dataset.Clean(df)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"rows": df.Nrow(), "matches": len(matches)}).Info("dataset cleaned")
	return analysis.BuildSummary(matches, year)
}

func atlasOrNil(a *geo.Atlas) chart.RegionSource {
	if a == nil {
		return nil
	}
	return a
}

// pick resolves a setting: explicit flag, then config file, then default.
func pick(flagVal, cfgVal, fallback string) string {
	if flagVal != "" {
		return flagVal
	}
	if cfgVal != "" {
		return cfgVal
	}
	return fallback
}

func cfgDataset() string {
	if cfg != nil {
		return cfg.DatasetPath
	}
	return ""
}

func cfgGeo() string {
	if cfg != nil {
		return cfg.GeoJSONPath
	}
	return ""
}

func cfgOut() string {
	if cfg != nil {
		return cfg.OutputPath
	}
	return ""
}

func cfgXLSX() string {
	if cfg != nil {
		return cfg.XLSXPath
	}
	return ""
}

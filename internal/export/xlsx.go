// Package export writes the summary tables to an Excel workbook, one sheet
// per analysis. It serializes aggregator output only; no computation.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matchframe/cupstats/internal/analysis"
)

// Workbook builds the workbook in memory.
func Workbook(s *analysis.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSheet(f, "Yearly Attendance", []string{"Year", "Mean Attendance", "Matches"}, len(s.Attendance), func(i int) []interface{} {
		r := s.Attendance[i]
		return []interface{}{r.Year, r.MeanAttendance, r.Matches}
	}); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Final Appearances", []string{"Team", "Appearances", "Share (%)"}, len(s.Finals), func(i int) []interface{} {
		r := s.Finals[i]
		return []interface{}{r.Team, r.Count, r.Share}
	}); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Top Matchups", []string{"Matchup", "Mean Attendance", "Matches"}, len(s.Matchups), func(i int) []interface{} {
		r := s.Matchups[i]
		return []interface{}{r.Label, r.MeanAttendance, r.Matches}
	}); err != nil {
		return nil, err
	}
	goalsSheet := fmt.Sprintf("Goals %d", s.GoalYear)
	if err := writeSheet(f, goalsSheet, []string{"Stage", "Team", "Goals"}, len(s.Goals), func(i int) []interface{} {
		r := s.Goals[i]
		return []interface{}{r.Stage, r.Team, r.Goals}
	}); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Host Attendance", []string{"Host", "Mean Attendance", "Matches", "Has Data"}, len(s.Hosts), func(i int) []interface{} {
		r := s.Hosts[i]
		return []interface{}{r.Host, r.MeanAttendance, r.Matches, r.HasData}
	}); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Goals by Decade", []string{"Decade", "Matches", "Q1", "Median", "Q3"}, len(s.GoalSpread), func(i int) []interface{} {
		r := s.GoalSpread[i]
		q := analysis.DistributionQuartiles(r.Goals)
		return []interface{}{r.Decade, len(r.Goals), q.Q1, q.Median, q.Q3}
	}); err != nil {
		return nil, err
	}

	// The default sheet was renamed by the first writeSheet call; make it the
	// active one.
	idx, err := f.GetSheetIndex("Yearly Attendance")
	if err != nil {
		return nil, fmt.Errorf("locate first sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	return f, nil
}

// Write builds the workbook and saves it to path.
func Write(path string, s *analysis.Summary) error {
	f, err := Workbook(s)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, headers []string, rows int, row func(i int) []interface{}) error {
	if sheets := f.GetSheetList(); len(sheets) == 1 && sheets[0] == "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %s: %w", name, err)
		}
	}
	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %s header: %w", name, err)
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return fmt.Errorf("sheet %s header: %w", name, err)
		}
		if err := f.SetColWidth(name, cell[:1], cell[:1], 22); err != nil {
			return fmt.Errorf("sheet %s width: %w", name, err)
		}
	}
	for i := 0; i < rows; i++ {
		for c, v := range row(i) {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, i, err)
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, i, err)
			}
		}
	}
	return nil
}

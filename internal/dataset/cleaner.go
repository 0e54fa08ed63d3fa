package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Clean produces the immutable working copy of the dataset from a raw frame.
// Steps, in order: normalize column names ('.' becomes ' '), project onto the
// ten logical columns, parse the Datetime column with DateLayout (leaving
// non-conforming values as the zero time), and drop every row whose
// attendance is missing. Cleaning is deterministic and idempotent: a frame
// built from already-cleaned records cleans to the same records.
func Clean(df dataframe.DataFrame) ([]Match, error) {
	idx, err := columnIndex(df)
	if err != nil {
		return nil, err
	}

	out := make([]Match, 0, df.Nrow())
	for r := 0; r < df.Nrow(); r++ {
		cell := func(col string) string {
			return strings.TrimSpace(df.Elem(r, idx[col]).String())
		}

		attendance, ok := parseCount(cell(ColAttendance))
		if !ok {
			continue
		}
		year, ok := parseCount(cell(ColYear))
		if !ok {
			// A year that does not parse cannot feed any grouping key.
			continue
		}

		m := Match{
			Year:       year,
			Stage:      cell(ColStage),
			Stadium:    cell(ColStadium),
			City:       cell(ColCity),
			HomeTeam:   cell(ColHomeTeam),
			AwayTeam:   cell(ColAwayTeam),
			Attendance: attendance,
		}
		if t, perr := time.Parse(DateLayout, cell(ColDatetime)); perr == nil {
			m.Date = t
		}
		hg, okH := parseCount(cell(ColHomeGoals))
		ag, okA := parseCount(cell(ColAwayGoals))
		if okH && okA {
			m.HomeGoals = hg
			m.AwayGoals = ag
			m.GoalsKnown = true
		}
		out = append(out, m)
	}
	return out, nil
}

// NormalizeName maps a raw header to its logical column name by replacing the
// '.' separator some exports use with a space.
func NormalizeName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, ".", " "))
}

// columnIndex resolves every logical column to its position in the raw frame.
// A missing required column means the input is not the expected dataset.
func columnIndex(df dataframe.DataFrame) (map[string]int, error) {
	byName := make(map[string]int, df.Ncol())
	for i, name := range df.Names() {
		norm := NormalizeName(name)
		if _, dup := byName[norm]; !dup {
			byName[norm] = i
		}
	}
	idx := make(map[string]int, len(LogicalColumns))
	for _, col := range LogicalColumns {
		i, ok := byName[col]
		if !ok {
			return nil, &DataLoadError{Err: fmt.Errorf("required column %q not found", col)}
		}
		idx[col] = i
	}
	return idx, nil
}

// parseCount parses a non-negative integer cell. Float spellings of whole
// numbers ("4444.0") are accepted; missing markers and negatives are not.
func parseCount(s string) (int, bool) {
	switch s {
	case "", "NA", "NaN", "null":
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

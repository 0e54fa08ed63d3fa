package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTemp(t, "matches.csv", "Year,Stage\n1930,Final\n2014,Final\n")
	df, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, df.Nrow())
	assert.Equal(t, []string{"Year", "Stage"}, df.Names())
}

func TestLoadTSV(t *testing.T) {
	path := writeTemp(t, "matches.tsv", "Year\tStage\n1930\tFinal\n")
	df, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, df.Nrow())
	assert.Equal(t, []string{"Year", "Stage"}, df.Names())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	var loadErr *DataLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.csv")
}

func TestLoadKeepsCellsAsStrings(t *testing.T) {
	path := writeTemp(t, "matches.csv", "Attendance\n4444\n")
	df, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4444", df.Elem(0, 0).String())
}

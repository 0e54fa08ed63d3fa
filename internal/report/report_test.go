package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *Document {
	d := New("World Cup in Numbers")
	d.Append(HeadingAttendance, []byte{0x89, 'P', 'N', 'G'}, CommentaryAttendance)
	d.Append(HeadingFinals, []byte{0x89, 'P', 'N', 'G'}, CommentaryFinals)
	return d
}

func TestNewAssignsRunID(t *testing.T) {
	a := New("t")
	b := New("t")
	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.False(t, a.GeneratedAt.IsZero())
	assert.Equal(t, "UTC", a.GeneratedAt.Location().String())
}

func TestHTMLSectionsInAppendOrder(t *testing.T) {
	d := sampleDoc()
	html, err := d.HTML()
	require.NoError(t, err)
	page := string(html)

	first := strings.Index(page, HeadingAttendance)
	second := strings.Index(page, HeadingFinals)
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestHTMLInlinesImages(t *testing.T) {
	html, err := sampleDoc().HTML()
	require.NoError(t, err)
	page := string(html)

	// iVBORw is base64 of the PNG magic prefix.
	assert.Contains(t, page, "data:image/png;base64,iVBORw")
	assert.NotContains(t, page, "<img src=\"http")
	assert.Contains(t, page, "<!DOCTYPE html>")
}

func TestHTMLSkipsImageWhenAbsent(t *testing.T) {
	d := New("t")
	d.Append("Heading only", nil, "text")
	html, err := d.HTML()
	require.NoError(t, err)
	assert.NotContains(t, string(html), "data:image/png")
	assert.Contains(t, string(html), "Heading only")
}

func TestHTMLFooterCarriesRunID(t *testing.T) {
	d := sampleDoc()
	html, err := d.HTML()
	require.NoError(t, err)
	assert.Contains(t, string(html), d.RunID)
}

func TestWriteCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "report.html")
	require.NoError(t, Write(path, sampleDoc()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "World Cup in Numbers")

	// No temp files left behind next to the output.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.html", entries[0].Name())
}

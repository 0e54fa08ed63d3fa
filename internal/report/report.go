// Package report assembles the final self-contained HTML document: six
// sections in fixed order, each a question heading, an inline chart, and a
// fixed prose commentary. Pure templating, no computation.
package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"

	"github.com/matchframe/cupstats/internal/utils"
)

// Section is one analysis block of the report.
type Section struct {
	Heading    string
	Image      []byte // PNG, inlined as base64
	Commentary string
}

// Document is the report prior to rendering.
type Document struct {
	Title       string
	RunID       string
	GeneratedAt time.Time
	Sections    []Section
}

// New returns an empty document tagged with a fresh run id.
func New(title string) *Document {
	return &Document{
		Title:       title,
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
}

// Append adds a section; order of appends is the order in the report.
func (d *Document) Append(heading string, image []byte, commentary string) {
	d.Sections = append(d.Sections, Section{Heading: heading, Image: image, Commentary: commentary})
}

// HTML renders the document to a self-contained page.
func (d *Document) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the document and writes it atomically to path.
func Write(path string, d *Document) error {
	html, err := d.HTML()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(path); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	return utils.SafeWriteFile(path, html)
}

var pageTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"b64": func(b []byte) string { return base64.StdEncoding.EncodeToString(b) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; max-width: 960px; margin: 2rem auto; color: #222; }
  h1 { border-bottom: 3px solid #1f77b4; padding-bottom: .3rem; }
  h2 { margin-top: 2.5rem; color: #1f77b4; }
  img { max-width: 100%; border: 1px solid #ddd; }
  p.commentary { line-height: 1.5; }
  footer { margin-top: 3rem; font-size: .8rem; color: #888; border-top: 1px solid #ddd; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Sections}}
<section>
<h2>{{.Heading}}</h2>
{{if .Image}}<img src="data:image/png;base64,{{b64 .Image}}" alt="{{.Heading}}">{{end}}
<p class="commentary">{{.Commentary}}</p>
</section>
{{end}}
<footer>
<p>Run {{.RunID}} &middot; generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}</p>
</footer>
</body>
</html>
`))

// Package pdf renders a resume document into a fixed, non-configurable
// PDF layout. The layout is a presentation transform only; it holds no
// state and never alters the document.
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/uptoskills/resume-builder/internal/resume"
)

// The section order is fixed: header, summary, experience, education,
// skills, languages. Empty sections are omitted.
const resumeTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, 'Times New Roman', serif; margin: 0; color: #1f2937; }
  header { text-align: center; margin-bottom: 18px; }
  h1 { font-size: 26px; margin: 0; text-transform: uppercase; letter-spacing: 1px; }
  .role { font-size: 14px; color: #4b5563; margin-top: 4px; }
  .contact { font-size: 11px; color: #6b7280; margin-top: 6px; }
  h2 { font-size: 15px; border-bottom: 1px solid #d1d5db; padding-bottom: 3px; margin: 16px 0 8px; }
  .entry { margin-bottom: 10px; }
  .entry-title { font-size: 13px; font-weight: bold; }
  .entry-meta { font-size: 11px; color: #6b7280; }
  .entry-body { font-size: 12px; white-space: pre-line; margin-top: 3px; }
  .skills p, .languages p { font-size: 12px; margin: 3px 0; }
</style>
</head>
<body>
<header>
  <h1>{{.Name}}</h1>
  {{if .Role}}<div class="role">{{.Role}}</div>{{end}}
  {{if .Contact}}<div class="contact">{{.Contact}}</div>{{end}}
</header>

{{if .Summary}}
<section>
  <h2>Professional Summary</h2>
  <div class="entry-body">{{.Summary}}</div>
</section>
{{end}}

{{if .Experience}}
<section>
  <h2>Work Experience</h2>
  {{range .Experience}}
  <div class="entry">
    <div class="entry-title">{{.Title}}{{if .CompanyName}} at {{.CompanyName}}{{end}}</div>
    <div class="entry-meta">{{.Date}}{{if .CompanyLocation}} | {{.CompanyLocation}}{{end}}</div>
    {{if .Accomplishment}}<div class="entry-body">{{.Accomplishment}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Education}}
<section>
  <h2>Education</h2>
  {{range .Education}}
  <div class="entry">
    <div class="entry-title">{{.Degree}}{{if .Institution}} - {{.Institution}}{{end}}</div>
    <div class="entry-meta">{{.Duration}}{{if .Location}} | {{.Location}}{{end}}</div>
    {{if .Description}}<div class="entry-body">{{.Description}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Skills}}
<section class="skills">
  <h2>Skills</h2>
  {{range .Skills}}
  <p><strong>{{.Category}}:</strong> {{join .Items ", "}}</p>
  {{end}}
</section>
{{end}}

{{if .Languages}}
<section class="languages">
  <h2>Languages</h2>
  {{range .Languages}}
  <p>{{.Name}}{{if .Level}} ({{.Level}}){{end}}</p>
  {{end}}
</section>
{{end}}
</body>
</html>
`

var tmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(resumeTemplate))

type templateData struct {
	resume.Document
	Contact string
}

// RenderHTML produces the fixed-layout HTML for a document.
func RenderHTML(doc resume.Document) (string, error) {
	norm := doc.Normalize()
	data := templateData{
		Document: norm,
		Contact:  contactLine(norm),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render resume template: %w", err)
	}
	return buf.String(), nil
}

// contactLine joins the non-empty contact fields for the header.
func contactLine(doc resume.Document) string {
	var parts []string
	for _, v := range []string{doc.Phone, doc.Email, doc.LinkedIn, doc.Location} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

// Package render produces the two export targets, HTML and PDF, from the
// shared view projection. Both consume a view.Document so section order and
// presence rules can never drift between them.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
	"github.com/beepdt/Ai-Resume-Builder/internal/view"
)

const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} - Resume</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #1a1a1a; max-width: 800px; margin: 0 auto; padding: 40px 32px; font-size: 14px; line-height: 1.45; }
  header { text-align: center; margin-bottom: 24px; }
  h1 { font-size: 26px; margin: 0 0 6px; letter-spacing: 1px; }
  .contacts { font-size: 13px; color: #444; }
  .contacts a { color: #444; }
  section { margin-bottom: 18px; }
  h2 { font-size: 15px; text-transform: uppercase; letter-spacing: 1.5px; border-bottom: 1px solid #1a1a1a; padding-bottom: 3px; margin: 0 0 10px; }
  .entry { margin-bottom: 12px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-title { font-weight: bold; }
  .entry-sub { font-style: italic; color: #333; }
  .entry-dates { color: #555; white-space: nowrap; }
  ul { margin: 4px 0 0; padding-left: 20px; }
  li { margin-bottom: 2px; }
  .skill-columns { display: flex; gap: 32px; }
  .skill-columns ul { list-style: none; padding: 0; margin: 2px 0 0; }
  .tech { color: #555; font-size: 13px; }
</style>
</head>
<body>
<header>
  <h1>{{.Name}}</h1>
  <div class="contacts">
  {{- range $i, $c := .Contacts}}{{if $i}} &middot; {{end}}{{if $c.Link}}<a href="{{$c.Link}}">{{$c.Value}}</a>{{else}}{{$c.Value}}{{end}}{{end}}
  </div>
</header>
{{- range .Sections}}
<section>
  <h2>{{.Title}}</h2>
  {{- if eq .Kind "summary"}}
  <p>{{.Summary}}</p>
  {{- else if eq .Kind "education"}}
  {{- range .Education}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-title">{{.Degree}}{{if .Field}} in {{.Field}}{{end}}</span>
      <span class="entry-dates">{{.Status}}</span>
    </div>
    <div class="entry-sub">{{.Institution}}{{if .GPA}} &middot; GPA: {{.GPA}}{{end}}</div>
  </div>
  {{- end}}
  {{- else if eq .Kind "skills"}}
  <div class="skill-columns">
  {{- range .SkillColumns}}
    <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
  {{- end}}
  </div>
  {{- else if eq .Kind "projects"}}
  {{- range .Projects}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-title">{{.Name}}</span>
      <span class="entry-dates">{{if .GithubURL}}<a href="{{.GithubURL}}">{{.GithubURL}}</a> {{end}}{{.DateRange}}</span>
    </div>
    {{- if .Technologies}}
    <div class="tech">{{join .Technologies ", "}}</div>
    {{- end}}
    <p>{{.Description}}</p>
  </div>
  {{- end}}
  {{- else if eq .Kind "experience"}}
  {{- range .Experience}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-title">{{.Position}}</span>
      <span class="entry-dates">{{.DateRange}}</span>
    </div>
    <div class="entry-sub">{{.Company}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
    {{- if .Description}}
    <ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul>
    {{- end}}
  </div>
  {{- end}}
  {{- else if eq .Kind "certifications"}}
  {{- range .Certifications}}
  <div class="entry">
    <div class="entry-head">
      <span class="entry-title">{{.Name}}</span>
      <span class="entry-dates">{{.DateObtained}}{{if .ExpiryDate}} &middot; {{.ExpiryDate}}{{end}}</span>
    </div>
    <div class="entry-sub">{{.Issuer}}{{if .CredentialID}} &middot; {{.CredentialID}}{{end}}</div>
  </div>
  {{- end}}
  {{- end}}
</section>
{{- end}}
</body>
</html>
`

var htmlTmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(resumeTemplate))

// HTML renders the on-screen preview. Stored dates appear exactly as
// entered.
func HTML(r *domain.Resume) ([]byte, error) {
	doc := view.BuildDocument(r, view.DateRaw)

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

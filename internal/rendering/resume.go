package rendering

import (
	"strings"
	"text/template"

	"github.com/jonathan/job-tailor/internal/types"
)

// resumeData is the data structure passed to the resume template
type resumeData struct {
	Name      string
	Contact   string
	Summary   string
	Skills    []string
	Sections  []experienceSection
	Education []string
	Projects  []string
}

// experienceSection groups the selected bullets belonging to one experience
type experienceSection struct {
	Company string
	Role    string
	Start   string
	End     string
	Bullets []string
}

// resumeTemplate is the Markdown layout for the tailored resume. Sections
// appear in the order the selector delivered their first bullet; bullets
// within a section keep delivery order.
const resumeTemplate = `# {{.Name}}
{{if .Contact}}
{{.Contact}}
{{end}}{{if .Summary}}
## Summary

{{.Summary}}
{{end}}{{if .Skills}}
## Skills

{{join .Skills ", "}}
{{end}}
## Experience
{{range .Sections}}
### {{.Role}}, {{.Company}} ({{.Start}} - {{.End}})
{{range .Bullets}}
- {{.}}{{end}}
{{end}}{{if .Education}}
## Education
{{range .Education}}
- {{.}}{{end}}
{{end}}{{if .Projects}}
## Projects
{{range .Projects}}
- {{.}}{{end}}
{{end}}`

// RenderResume renders the Markdown resume for a selection result. The
// selector's delivery order is authoritative: experiences appear in the order
// their first kept bullet was delivered.
func RenderResume(p *types.Profile, selected []types.SelectedBullet) (string, error) {
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(resumeTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse resume template", Cause: err}
	}

	data := buildResumeData(p, selected)

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}

	return out.String(), nil
}

// buildResumeData groups selected bullets under their owning experience in
// first-delivery order.
func buildResumeData(p *types.Profile, selected []types.SelectedBullet) resumeData {
	var sections []experienceSection
	index := make(map[string]int)

	for _, sb := range selected {
		key := sb.Company + "\x00" + sb.Role
		i, ok := index[key]
		if !ok {
			i = len(sections)
			index[key] = i
			sections = append(sections, experienceSection{
				Company: sb.Company,
				Role:    sb.Role,
				Start:   sb.Start,
				End:     sb.End,
			})
		}
		sections[i].Bullets = append(sections[i].Bullets, sb.Bullet.Text)
	}

	return resumeData{
		Name:      p.Name,
		Contact:   p.Contact,
		Summary:   p.Summary,
		Skills:    p.Skills,
		Sections:  sections,
		Education: p.Education,
		Projects:  p.Projects,
	}
}

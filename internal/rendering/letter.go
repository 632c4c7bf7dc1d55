package rendering

import (
	"strings"
	"text/template"

	"github.com/jonathan/job-tailor/internal/types"
)

// letterData is the data structure passed to the cover letter template
type letterData struct {
	Name     string
	Contact  string
	Title    string
	Company  string
	Keywords string
}

// letterTemplate is the short templated cover letter. Keywords come from a
// second, narrower extraction pass over the posting description.
const letterTemplate = `Dear {{.Company}} Hiring Team,

I am writing to apply for the {{.Title}} position at {{.Company}}. My background aligns closely with what you are looking for, particularly around {{.Keywords}}.

The attached resume highlights the experience most relevant to this role. I would welcome the chance to discuss how I can contribute to your team.

Sincerely,
{{.Name}}{{if .Contact}}
{{.Contact}}{{end}}
`

// RenderCoverLetter renders the templated cover letter for one posting,
// interpolating the top extracted keywords from the posting description.
func RenderCoverLetter(p *types.Profile, posting types.Posting, topKeywords []string) (string, error) {
	tmpl, err := template.New("letter").Parse(letterTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse cover letter template", Cause: err}
	}

	keywordPhrase := "the areas highlighted in your posting"
	if len(topKeywords) > 0 {
		keywordPhrase = strings.Join(topKeywords, ", ")
	}

	data := letterData{
		Name:     p.Name,
		Contact:  p.Contact,
		Title:    posting.Title,
		Company:  posting.Company,
		Keywords: keywordPhrase,
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute cover letter template", Cause: err}
	}

	return out.String(), nil
}

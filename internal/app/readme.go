package app

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// ReadmeData holds the values substituted into the README template.
type ReadmeData struct {
	PublicationTitle string
	HTTPURLToRepo    string
	SSHURLToRepo     string
}

// DefaultReadmeTemplate is used when no template file is given.
const DefaultReadmeTemplate = `# {{ .PublicationTitle }}

This repository holds the sources for the publication *{{ .PublicationTitle }}*.

## Cloning

Clone the repository including its submodules via

    git clone --recurse-submodules {{ .SSHURLToRepo }}

or, using HTTPS,

    git clone --recurse-submodules {{ .HTTPURLToRepo }}

Then update the submodules via

    bin/numapde-submodules-update.sh
`

// RenderReadme renders a README from given template text and data.
// An empty tmpl selects DefaultReadmeTemplate.
func RenderReadme(tmpl string, data ReadmeData) (string, error) {
	if tmpl == "" {
		tmpl = DefaultReadmeTemplate
	}

	t, err := template.New("readme").Parse(tmpl)
	if err != nil {
		return "", errors.Wrap(err, "parsing readme template")
	}

	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", errors.Wrap(err, "executing readme template")
	}

	return b.String(), nil
}

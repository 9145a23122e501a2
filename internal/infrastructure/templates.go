package infrastructure

import (
	"bytes"
	"text/template"
)

// GoTemplateEngine implements domain.TemplatePort using text/template.
// Missing map keys are an error rather than "<no value>".
type GoTemplateEngine struct{}

func NewGoTemplateEngine() *GoTemplateEngine {
	return &GoTemplateEngine{}
}

func (t *GoTemplateEngine) Render(name, tmpl string, data interface{}) ([]byte, error) {
	tObj, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tObj.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// TemplateData holds the variables available to class and layout templates.
type TemplateData struct {
	ActivityName    string // e.g., "SettingsActivity"
	ActivityPackage string // e.g., "com.app.view.activities"
	LayoutName      string // e.g., "activity_settings"
	RPackage        string // package of the generated R class
	ImportR         bool   // Derived: RPackage differs from ActivityPackage
}

// NewTemplateData fills in the derived fields. Without an application
// package the R class is assumed to live next to the activity.
func NewTemplateData(name, pkg, layout, appPackage string) *TemplateData {
	d := &TemplateData{
		ActivityName:    name,
		ActivityPackage: pkg,
		LayoutName:      layout,
		RPackage:        appPackage,
	}
	if d.RPackage == "" {
		d.RPackage = pkg
	}
	d.ImportR = d.RPackage != pkg
	return d
}

// Templates reads embedded scaffolds. The zero value is ready to use.
type Templates struct{}

// Render executes the template scaffolds/<dir>/<name> with data.
func (Templates) Render(dir, name string, data *TemplateData) ([]byte, error) {
	tmplPath := path.Join("scaffolds", dir, name)
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("template %s not found: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Stock returns a value-resource file copied verbatim, e.g. "values/dimens.xml".
func (Templates) Stock(name string) ([]byte, error) {
	data, err := fs.ReadFile(scaffoldFS, path.Join("scaffolds", name))
	if err != nil {
		return nil, fmt.Errorf("stock file %s not found: %w", name, err)
	}
	return data, nil
}

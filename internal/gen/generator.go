package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"hpxml-mapper/internal/schema"
)

const (
	// EnumsFile and EntitiesFile are the names of the generated files.
	EnumsFile    = "zz_generated_enums.go"
	EntitiesFile = "zz_generated_entities.go"

	tool = "hpxml-mapper gen"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package declared by the schema.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables doc comments on generated types.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./hpxml",
		GenerateComments: true,
	}
}

// Generator generates Go code from a schema declaration file.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "zz_generated_entities.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate validates f and renders the enumeration and entity files.
// Declaration errors are returned before anything is rendered.
func (g *Generator) Generate(f *schema.File) ([]GeneratedFile, error) {
	diags := schema.Validate(f)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	data, err := g.buildFileData(f)
	if err != nil {
		return nil, err
	}

	var files []GeneratedFile

	for _, t := range []struct {
		name string
		tmpl *template.Template
	}{
		{EnumsFile, enumsTemplate},
		{EntitiesFile, entitiesTemplate},
	} {
		file, err := g.render(t.name, t.tmpl, data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", t.name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) render(filename string, tmpl *template.Template, data *fileData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

var enumsTemplate = template.Must(template.New("enums").Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.

package {{.PackageName}}

import "slices"
{{range $enum := .Enums}}
{{if $.Comments}}// {{.Doc}}
{{end}}type {{.Name}} string

const (
{{- range .Values}}
	{{.Const}} {{$enum.Name}} = {{printf "%q" .Value}}
{{- end}}
)

var {{.VarName}} = []{{.Name}}{
{{- range .Values}}
	{{.Const}},
{{- end}}
}

// IsValid reports whether v is a declared {{.Name}}.
func (v {{.Name}}) IsValid() bool { return slices.Contains({{.VarName}}, v) }

// {{.Name}}Values returns the declared {{.Name}} values in order.
func {{.Name}}Values() []{{.Name}} { return slices.Clone({{.VarName}}) }
{{end}}`))

var entitiesTemplate = template.Must(template.New("entities").Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.

package {{.PackageName}}

// Entity kinds.
const (
{{- range .Entities}}
	{{.KindConst}} Kind = {{printf "%q" .Name}}
{{- end}}
)
{{range $e := .Entities}}
{{if $.Comments}}// {{.Doc}}
{{end}}type {{.Name}} struct {
	element
{{range .Fields}}
	{{.Name}} {{.Type}}
	{{.Flag}} bool
{{end}}{{if .Children}}
{{range .Children}}	{{.Field}} {{.Type}}
{{end}}{{end}}}
{{if .Children}}
func {{.Ctor}}() *{{.Name}} {
	return &{{.Name}}{
{{- range .Children}}
		{{.Field}}: {{.Init}},
{{- end}}
	}
}
{{else}}
func {{.Ctor}}() *{{.Name}} { return &{{.Name}}{} }
{{end}}
// Kind implements Entity.
func (*{{.Name}}) Kind() Kind { return {{.KindConst}} }

func (*{{.Name}}) attrs() []Attr { return {{.AttrsVar}} }
{{if .Children}}
func (e *{{.Name}}) children() []part {
	return []part{
{{- range .Children}}
		{{.Part}},
{{- end}}
	}
}
{{else}}
func (*{{.Name}}) children() []part { return nil }
{{end}}{{if not .CustomCheck}}
// Check returns the violations of e and everything it owns.
func (e *{{.Name}}) Check() []string { return checkEntity(e) }
{{end}}
var {{.AttrsVar}} = []Attr{
{{- range .Attrs}}
	{{.}},
{{- end}}
}
{{range .Resolvers}}
// {{.Name}} resolves {{.Attr}}.
func (e *{{$e.Name}}) {{.Name}}() ({{.Result}}, error) { return {{.Call}} }
{{end}}{{end}}
var relations = []Relation{
{{- range .Relations}}
	{{.}},
{{- end}}
}
`))

package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// generatedMarker opens every emitted file; Clean refuses to touch
// files that do not carry it.
const generatedMarker = "// Code generated by"

const classNamesTemplate = `// Code generated by frcmp generate; DO NOT EDIT.
//
// Source: {{.Source}}
// Classes: {{.Count}}
//
// Identifiers are derived from class names: the "{{.Prefix}}" prefix is dropped
// and the remaining "-", "--" and "__" separated parts are title-cased.

package {{.Package}}

{{range .Classes}}const {{.Ident}} ClassName = "{{.Name}}"

{{end}}// allClassNames is the vocabulary in sorted order.
var allClassNames = []ClassName{
{{range .Classes}}	{{.Ident}},
{{end}}}
`

const severityTemplate = `// Code generated by frcmp generate; DO NOT EDIT.
//
// Severity sets are derived from the vocabulary: for each configured
// block, the "<suffix>" of every "<block>--<suffix>" class, minus the
// {{.Sentinels}} sentinel suffixes (modifier classes that share the
// severity syntax but select size and icon variants instead).

package {{.Package}}

{{range .Families}}{{$f := .}}// {{$f.TypeName}} is a severity variant of the {{$f.Block}} block.
type {{$f.TypeName}} string

{{range $f.Values}}const {{.Const}} {{$f.TypeName}} = "{{.Suffix}}"

{{end}}// {{$f.ListName}} lists the severity variants of the {{$f.Block}} block.
func {{$f.ListName}}() []{{$f.TypeName}} {
	return []{{$f.TypeName}}{
{{range $f.Values}}		{{.Const}},
{{end}}	}
}

// Valid reports whether s is a generated {{$f.Block}} severity.
func (s {{$f.TypeName}}) Valid() bool {
	for _, v := range {{$f.ListName}}() {
		if s == v {
			return true
		}
	}
	return false
}

// ClassName returns the modifier class for s, e.g. "{{$f.Example}}".
func (s {{$f.TypeName}}) ClassName() ClassName {
	return ClassName("{{$f.Block}}--" + string(s))
}

{{end}}`

var (
	classNamesTmpl = template.Must(template.New("classnames").Parse(classNamesTemplate))
	severityTmpl   = template.Must(template.New("severity").Parse(severityTemplate))
)

type classEntry struct {
	Name  string
	Ident string
}

// renderClassNames produces the unformatted classnames.go source.
func (g *Generator) renderClassNames(cssPath string, vocab []string) ([]byte, error) {
	classes := make([]classEntry, len(vocab))
	for i, name := range vocab {
		classes[i] = classEntry{Name: name, Ident: g.Identifier(name)}
	}

	var buf bytes.Buffer
	err := classNamesTmpl.Execute(&buf, struct {
		Package string
		Source  string
		Prefix  string
		Count   int
		Classes []classEntry
	}{
		Package: g.opts.Package,
		Source:  cssPath,
		Prefix:  g.opts.Prefix,
		Count:   len(vocab),
		Classes: classes,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderSeverities produces the unformatted severity.go source.
func (g *Generator) renderSeverities(vocab []string) ([]byte, error) {
	var buf bytes.Buffer
	err := severityTmpl.Execute(&buf, struct {
		Package   string
		Sentinels string
		Families  []severitySet
	}{
		Package:   g.opts.Package,
		Sentinels: g.sentinelList(),
		Families:  g.severitySets(vocab),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFile formats raw and writes it to outDir/name. On a format
// failure the raw output is left beside the target with an .unformatted
// suffix so the template bug can be inspected.
func (g *Generator) writeFile(outDir, name string, raw []byte) error {
	path := filepath.Join(outDir, name)

	formatted, err := format.Source(raw)
	if err != nil {
		if !g.opts.DryRun {
			if mkErr := os.MkdirAll(outDir, 0o755); mkErr == nil {
				if writeErr := os.WriteFile(path+".unformatted", raw, 0o644); writeErr == nil {
					fmt.Printf("  wrote unformatted code to %s.unformatted for debugging\n", path)
				}
			}
		}
		return fmt.Errorf("format %s: %w", name, err)
	}

	fmt.Printf("generating %s\n", path)
	if g.opts.DryRun {
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Clean removes previously generated files from outDir. Files that do
// not open with the generated-code marker are left alone.
func (g *Generator) Clean(outDir string) error {
	for _, name := range []string{"classnames.go", "severity.go"} {
		path := filepath.Join(outDir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if !bytes.HasPrefix(data, []byte(generatedMarker)) {
			continue
		}

		fmt.Printf("removing %s\n", path)
		if g.opts.DryRun {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}

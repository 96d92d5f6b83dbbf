// Package generator produces the fr package's vocabulary from a design
// system stylesheet: the class name constants in classnames.go and the
// severity sets in severity.go.
//
// The stylesheet is the source of truth. Every class selector under the
// configured prefix becomes one constant; for each configured severity
// family, the "--" modifier suffixes of its block become a typed
// constant set, minus the sentinel suffixes that share the modifier
// syntax without being severities (sizes, icon variants).
package generator

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pthm/frcmp/internal/cssscan"
)

// SeverityFamily configures one severity set: the block whose "--"
// modifiers form the set, the Go type to emit, and the modifier
// suffixes to leave out.
type SeverityFamily struct {
	// Block is the base class, e.g. "fr-notice".
	Block string
	// TypeName is the emitted Go type, e.g. "NoticeSeverity".
	TypeName string
	// Exclude lists modifier suffixes that are not severities, e.g.
	// "sm" or "no-icon".
	Exclude []string
}

// Options configures the generator.
type Options struct {
	// Package is the emitted package name. Defaults to "fr".
	Package string
	// Prefix filters scanned classes; only names carrying it enter the
	// vocabulary. Defaults to "fr-".
	Prefix string
	// Families are the severity sets to derive. Defaults to
	// DefaultFamilies.
	Families []SeverityFamily
	// DryRun reports what would be written without touching files.
	DryRun bool
}

// DefaultFamilies returns the severity families of the design system
// blocks the component kit renders.
func DefaultFamilies() []SeverityFamily {
	return []SeverityFamily{
		{Block: "fr-alert", TypeName: "AlertSeverity", Exclude: []string{"sm"}},
		{Block: "fr-badge", TypeName: "BadgeSeverity", Exclude: []string{"sm", "no-icon"}},
		{Block: "fr-notice", TypeName: "NoticeSeverity"},
	}
}

// Generator emits the vocabulary files.
type Generator struct {
	opts Options
}

// New creates a generator, filling defaulted options.
func New(opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = "fr"
	}
	if opts.Prefix == "" {
		opts.Prefix = "fr-"
	}
	if opts.Families == nil {
		opts.Families = DefaultFamilies()
	}
	return &Generator{opts: opts}
}

// Generate reads the stylesheet at cssPath and writes classnames.go and
// severity.go into outDir.
func (g *Generator) Generate(cssPath, outDir string) error {
	css, err := os.ReadFile(cssPath)
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}

	vocab := g.Vocabulary(css)
	if len(vocab) == 0 {
		return fmt.Errorf("stylesheet %s defines no %q classes", cssPath, g.opts.Prefix)
	}
	if err := g.checkCollisions(vocab); err != nil {
		return err
	}

	classFile, err := g.renderClassNames(cssPath, vocab)
	if err != nil {
		return fmt.Errorf("render classnames.go: %w", err)
	}
	sevFile, err := g.renderSeverities(vocab)
	if err != nil {
		return fmt.Errorf("render severity.go: %w", err)
	}

	if err := g.writeFile(outDir, "classnames.go", classFile); err != nil {
		return err
	}
	return g.writeFile(outDir, "severity.go", sevFile)
}

// Vocabulary scans css and returns the sorted class names carrying the
// configured prefix.
func (g *Generator) Vocabulary(css []byte) []string {
	var vocab []string
	for _, name := range cssscan.Classes(css) {
		if strings.HasPrefix(name, g.opts.Prefix) {
			vocab = append(vocab, name)
		}
	}
	sort.Strings(vocab)
	return vocab
}

// Identifier derives the Go constant name for a class: the prefix is
// dropped and the remaining "-", "--" and "__" separated parts are
// title-cased. "fr-btn--tertiary-no-outline" becomes
// BtnTertiaryNoOutline.
func (g *Generator) Identifier(class string) string {
	name := strings.TrimPrefix(class, g.opts.Prefix)
	name = strings.ReplaceAll(name, "__", "-")
	name = strings.ReplaceAll(name, "--", "-")

	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		b.WriteString(titlePart(part))
	}
	return b.String()
}

// checkCollisions rejects vocabularies where two classes derive the
// same identifier, since the emitted constants would conflict.
func (g *Generator) checkCollisions(vocab []string) error {
	seen := make(map[string]string, len(vocab))
	for _, class := range vocab {
		ident := g.Identifier(class)
		if prev, ok := seen[ident]; ok {
			return fmt.Errorf("classes %q and %q both derive identifier %s", prev, class, ident)
		}
		seen[ident] = class
	}
	return nil
}

// severitySet is one derived family, ready for emission.
type severitySet struct {
	SeverityFamily
	// ListName is the list function, e.g. "AlertSeverities".
	ListName string
	// Example is the class the ClassName doc cites, from the first
	// value.
	Example string
	Values  []severityValue
}

type severityValue struct {
	Suffix string
	Const  string
}

// severitySets derives the configured families from the vocabulary.
// Families whose block has no modifiers in the vocabulary are dropped.
func (g *Generator) severitySets(vocab []string) []severitySet {
	families := append([]SeverityFamily(nil), g.opts.Families...)
	sort.Slice(families, func(i, j int) bool { return families[i].Block < families[j].Block })

	var sets []severitySet
	for _, fam := range families {
		skip := make(map[string]struct{}, len(fam.Exclude))
		for _, s := range fam.Exclude {
			skip[s] = struct{}{}
		}

		marker := fam.Block + "--"
		var values []severityValue
		for _, class := range vocab {
			if !strings.HasPrefix(class, marker) {
				continue
			}
			suffix := class[len(marker):]
			if _, ok := skip[suffix]; ok {
				continue
			}
			values = append(values, severityValue{
				Suffix: suffix,
				Const:  fam.TypeName + g.Identifier(g.opts.Prefix+suffix),
			})
		}
		if len(values) == 0 {
			continue
		}

		sets = append(sets, severitySet{
			SeverityFamily: fam,
			ListName:       strings.TrimSuffix(fam.TypeName, "y") + "ies",
			Example:        marker + values[0].Suffix,
			Values:         values,
		})
	}
	return sets
}

// sentinelList formats the excluded suffixes for the severity.go header
// in first-seen order, e.g. `"sm" and "no-icon"`.
func (g *Generator) sentinelList() string {
	var ordered []string
	seen := make(map[string]struct{})
	for _, fam := range g.opts.Families {
		for _, s := range fam.Exclude {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			ordered = append(ordered, fmt.Sprintf("%q", s))
		}
	}

	switch len(ordered) {
	case 0:
		return `""`
	case 1:
		return ordered[0]
	default:
		return strings.Join(ordered[:len(ordered)-1], ", ") + " and " + ordered[len(ordered)-1]
	}
}

func titlePart(part string) string {
	if part == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(part)
	return string(unicode.ToUpper(r)) + part[size:]
}

package i18n

import (
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML schema of one message catalog: the component
// it belongs to, a BCP 47 language tag, and the message table.
//
//	component: notice
//	lang: en
//	messages:
//	  dismiss: "Hide message"
type catalogFile struct {
	Component string   `yaml:"component" validate:"required"`
	Lang      string   `yaml:"lang" validate:"required,bcp47_language_tag"`
	Messages  Messages `yaml:"messages" validate:"required,min=1"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// LoadFS loads every message catalog matching glob from fsys into the
// registry. Files in the base language define namespaces; files in any
// other language add translations to them, regardless of the order the
// glob returns. Errors are per-file and loud; the first failure stops
// the load.
//
// Supports embedded catalogs:
//
//	//go:embed locales/*.yaml
//	var locales embed.FS
//
//	if err := reg.LoadFS(locales, "locales/*.yaml"); err != nil {
//	    log.Fatal().Err(err).Msg("loading message catalogs")
//	}
func (reg *Registry) LoadFS(fsys fs.FS, glob string) error {
	paths, err := fs.Glob(fsys, glob)
	if err != nil {
		return fmt.Errorf("i18n: glob %q: %w", glob, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("i18n: no catalog files match %q", glob)
	}
	sort.Strings(paths)

	type entry struct {
		path string
		file catalogFile
		tag  language.Tag
	}
	entries := make([]entry, 0, len(paths))

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return NewLoadError(path, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return NewLoadError(path, err)
		}
		if err := validatorInstance().Struct(file); err != nil {
			return NewLoadError(path, err)
		}

		tag, err := language.Parse(file.Lang)
		if err != nil {
			return NewLoadError(path, err)
		}
		entries = append(entries, entry{path: path, file: file, tag: tag})
	}

	// Base-language catalogs first: they define the namespaces the
	// translation catalogs attach to.
	for _, e := range entries {
		if e.tag != reg.base {
			continue
		}
		if _, err := reg.Namespace(e.file.Component, e.file.Messages); err != nil {
			return NewLoadError(e.path, err)
		}
		reg.log.Debug().
			Str("path", e.path).
			Str("component", e.file.Component).
			Msg("base catalog loaded")
	}

	for _, e := range entries {
		if e.tag == reg.base {
			continue
		}
		ns, ok := reg.Lookup(e.file.Component)
		if !ok {
			return NewLoadError(e.path, NewConfigError(e.file.Component,
				fmt.Sprintf("no base catalog for component, cannot add %s translations", e.tag), nil))
		}
		if err := ns.AddTranslations(e.tag, e.file.Messages); err != nil {
			return NewLoadError(e.path, err)
		}
		reg.log.Debug().
			Str("path", e.path).
			Str("component", e.file.Component).
			Str("lang", e.tag.String()).
			Msg("translation catalog loaded")
	}

	return nil
}

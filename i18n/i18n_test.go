package i18n

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newNoticeRegistry(t *testing.T) (*Registry, *Namespace) {
	t.Helper()

	reg := New(language.French)
	ns, err := reg.Namespace("notice", Messages{
		"dismiss": "Masquer le message",
		"expand":  "Afficher plus",
	})
	require.NoError(t, err)

	require.NoError(t, ns.AddTranslations(language.Spanish, Messages{
		"dismiss": "Ocultar el mensaje",
		"expand":  "Mostrar más",
	}))
	require.NoError(t, ns.AddTranslations(language.English, Messages{
		"dismiss": "Hide message",
	}))

	return reg, ns
}

func TestNamespaceRegistration(t *testing.T) {
	reg := New(language.French)

	ns, err := reg.Namespace("notice", Messages{"dismiss": "Masquer le message"})
	require.NoError(t, err)
	assert.Equal(t, "notice", ns.Component())

	got, ok := reg.Lookup("notice")
	require.True(t, ok)
	assert.Same(t, ns, got)
}

func TestNamespaceDuplicate(t *testing.T) {
	reg := New(language.French)
	_, err := reg.Namespace("notice", Messages{"dismiss": "Masquer le message"})
	require.NoError(t, err)

	_, err = reg.Namespace("notice", Messages{"dismiss": "Autre table"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "notice", cfgErr.Component)
}

func TestNamespaceEmptyBase(t *testing.T) {
	reg := New(language.French)

	_, err := reg.Namespace("notice", nil)
	assert.Error(t, err)

	_, err = reg.Namespace("", Messages{"k": "v"})
	assert.Error(t, err)
}

func TestMustNamespacePanics(t *testing.T) {
	reg := New(language.French)
	reg.MustNamespace("notice", Messages{"dismiss": "Masquer le message"})

	assert.Panics(t, func() {
		reg.MustNamespace("notice", Messages{"dismiss": "Masquer le message"})
	})
}

func TestAddTranslationsUnknownKeys(t *testing.T) {
	reg := New(language.French)
	ns := reg.MustNamespace("notice", Messages{"dismiss": "Masquer le message"})

	err := ns.AddTranslations(language.English, Messages{
		"dismiss":  "Hide message",
		"mystery":  "Not a base key",
		"stranger": "Also not",
	})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, "mystery")
	assert.Contains(t, cfgErr.Message, "stranger")
}

func TestAddTranslationsBaseLanguage(t *testing.T) {
	reg := New(language.French)
	ns := reg.MustNamespace("notice", Messages{"dismiss": "Masquer le message"})

	err := ns.AddTranslations(language.French, Messages{"dismiss": "Autre texte"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base language")
}

func TestAddTranslationsLastWins(t *testing.T) {
	reg := New(language.French)
	ns := reg.MustNamespace("notice", Messages{"dismiss": "Masquer le message"})

	require.NoError(t, ns.AddTranslations(language.English, Messages{"dismiss": "Close"}))
	require.NoError(t, ns.AddTranslations(language.English, Messages{"dismiss": "Hide message"}))

	assert.Equal(t, "Hide message", ns.TrTag(language.English, "dismiss"))
}

func TestTrTagExactLanguage(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	assert.Equal(t, "Ocultar el mensaje", ns.TrTag(language.Spanish, "dismiss"))
	assert.Equal(t, "Masquer le message", ns.TrTag(language.French, "dismiss"))
}

func TestTrTagMatchesRegionalVariant(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	assert.Equal(t, "Ocultar el mensaje", ns.TrTag(language.MustParse("es-MX"), "dismiss"))
	assert.Equal(t, "Hide message", ns.TrTag(language.MustParse("en-GB"), "dismiss"))
}

func TestTrTagUnknownLanguageFallsToBase(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	assert.Equal(t, "Masquer le message", ns.TrTag(language.German, "dismiss"))
}

func TestTrTagPartialTableMergesOverBase(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	// English covers dismiss only; expand falls back to the base text.
	assert.Equal(t, "Hide message", ns.TrTag(language.English, "dismiss"))
	assert.Equal(t, "Afficher plus", ns.TrTag(language.English, "expand"))
}

func TestTrTagMissingKeyMarker(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	assert.Equal(t, "⟦unknown⟧", ns.TrTag(language.French, "unknown"))
	assert.Equal(t, "⟦unknown⟧", ns.TrTag(language.Spanish, "unknown"))
}

func TestTrUsesContextLanguage(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	ctx := WithLanguage(context.Background(), language.Spanish)
	assert.Equal(t, "Ocultar el mensaje", ns.Tr(ctx, "dismiss"))

	// No language on the context resolves to the base language.
	assert.Equal(t, "Masquer le message", ns.Tr(context.Background(), "dismiss"))
}

func TestTrIdempotent(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	before := ns.Languages()
	first := ns.TrTag(language.MustParse("es-MX"), "dismiss")
	second := ns.TrTag(language.MustParse("es-MX"), "dismiss")
	after := ns.Languages()

	assert.Equal(t, first, second)
	assert.Equal(t, before, after)
}

func TestLanguagesOrder(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	langs := ns.Languages()
	require.NotEmpty(t, langs)
	assert.Equal(t, language.French, langs[0])
	assert.Len(t, langs, 3)
}

func TestRegistryTags(t *testing.T) {
	reg, _ := newNoticeRegistry(t)
	badge := reg.MustNamespace("badge", Messages{"new": "Nouveau"})
	require.NoError(t, badge.AddTranslations(language.Italian, Messages{"new": "Nuovo"}))

	tags := reg.Tags()
	require.NotEmpty(t, tags)
	assert.Equal(t, language.French, tags[0])
	assert.Contains(t, tags, language.Spanish)
	assert.Contains(t, tags, language.English)
	assert.Contains(t, tags, language.Italian)
}

func TestReset(t *testing.T) {
	reg, _ := newNoticeRegistry(t)

	reg.Reset()

	_, ok := reg.Lookup("notice")
	assert.False(t, ok)

	// Re-registration after Reset succeeds.
	_, err := reg.Namespace("notice", Messages{"dismiss": "Masquer le message"})
	assert.NoError(t, err)
}

func TestConcurrentLookups(t *testing.T) {
	_, ns := newNoticeRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := ns.TrTag(language.Spanish, "dismiss"); got != "Ocultar el mensaje" {
					t.Errorf("TrTag() = %q under concurrency", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestConfigErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewConfigError("notice", "wrapper", inner)

	assert.ErrorIs(t, err, inner)
}

func TestLanguageContextRoundTrip(t *testing.T) {
	ctx := WithLanguage(context.Background(), language.English)

	tag, ok := Language(ctx)
	require.True(t, ok)
	assert.Equal(t, language.English, tag)

	_, ok = Language(context.Background())
	assert.False(t, ok)
}

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestResolveLanguageQueryParam(t *testing.T) {
	reg, _ := newNoticeRegistry(t)

	req := httptest.NewRequest("GET", "/?lang=es", nil)
	tag, persist := reg.ResolveLanguage(req)

	assert.Equal(t, language.Spanish, tag)
	assert.True(t, persist, "query selections should be persisted")
}

func TestResolveLanguageQueryUnsupported(t *testing.T) {
	reg, _ := newNoticeRegistry(t)

	req := httptest.NewRequest("GET", "/?lang=de", nil)
	tag, persist := reg.ResolveLanguage(req)

	assert.Equal(t, language.French, tag)
	assert.False(t, persist)
}

func TestResolveLanguageCookie(t *testing.T) {
	reg, _ := newNoticeRegistry(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookie, Value: "en"})
	tag, persist := reg.ResolveLanguage(req)

	assert.Equal(t, language.English, tag)
	assert.False(t, persist)
}

func TestResolveLanguageQueryBeatsCookie(t *testing.T) {
	reg, _ := newNoticeRegistry(t)

	req := httptest.NewRequest("GET", "/?lang=es", nil)
	req.AddCookie(&http.Cookie{Name: LangCookie, Value: "en"})
	tag, _ := reg.ResolveLanguage(req)

	assert.Equal(t, language.Spanish, tag)
}

func TestResolveLanguageAcceptLanguage(t *testing.T) {
	reg, _ := newNoticeRegistry(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9,en;q=0.5")
	tag, persist := reg.ResolveLanguage(req)

	assert.Equal(t, language.Spanish, tag)
	assert.False(t, persist)
}

func TestResolveLanguageDefault(t *testing.T) {
	reg, _ := newNoticeRegistry(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	tag, _ := reg.ResolveLanguage(req)

	assert.Equal(t, language.French, tag)
}

func TestResolveLanguageNilRequest(t *testing.T) {
	reg, _ := newNoticeRegistry(t)

	tag, persist := reg.ResolveLanguage(nil)
	assert.Equal(t, language.French, tag)
	assert.False(t, persist)
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.Spanish)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, LangCookie, cookies[0].Name)
	assert.Equal(t, "es", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Positive(t, cookies[0].MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestMiddleware(t *testing.T) {
	reg, ns := newNoticeRegistry(t)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ns.Tr(r.Context(), "dismiss")
	})

	req := httptest.NewRequest("GET", "/?lang=es", nil)
	rec := httptest.NewRecorder()
	reg.Middleware(next).ServeHTTP(rec, req)

	assert.Equal(t, "Ocultar el mensaje", seen)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "es", cookies[0].Value)
}

func TestMiddlewareNoSelection(t *testing.T) {
	reg, ns := newNoticeRegistry(t)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ns.Tr(r.Context(), "dismiss")
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	reg.Middleware(next).ServeHTTP(rec, req)

	assert.Equal(t, "Masquer le message", seen)
	assert.Empty(t, rec.Result().Cookies(), "no cookie without an explicit selection")
}

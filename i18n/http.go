package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookie stores the visitor's language preference.
	LangCookie = "fr_lang"
)

// ResolveLanguage determines the best language for the request: the
// lang query parameter, then the preference cookie, then the
// Accept-Language header, then the registry's base language. The bool
// reports whether the choice came from the query parameter and should
// be persisted with SetLanguageCookie.
func (reg *Registry) ResolveLanguage(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return reg.base, false
	}

	supported := reg.Tags()
	exact := make(map[string]language.Tag, len(supported))
	for _, tag := range supported {
		exact[tag.String()] = tag
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := parseSupported(value, exact); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookie); err == nil {
		if tag, ok := parseSupported(cookie.Value, exact); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if desired, _, err := language.ParseAcceptLanguage(accept); err == nil && len(desired) > 0 {
			matcher := language.NewMatcher(supported)
			if _, idx, conf := matcher.Match(desired...); conf != language.No {
				return supported[idx], false
			}
		}
	}

	return reg.base, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookie,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware resolves the request language, persists query-parameter
// selections as a cookie, and stores the tag on the request context
// where Tr finds it. Wrap the application mux and the component
// registry handler with it:
//
//	http.ListenAndServe(addr, reg.Middleware(mux))
func (reg *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, persist := reg.ResolveLanguage(r)
		if persist {
			SetLanguageCookie(w, tag)
		}
		next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), tag)))
	})
}

func parseSupported(value string, supported map[string]language.Tag) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	tag, ok := supported[parsed.String()]
	return tag, ok
}

package httphandler

import (
	"context"
	"mime"
	"net/http"

	"github.com/google/uuid"
	"github.com/kanoha/storefront/internal/core/domain"
)

const (
	VisitorCookie = "kanoha_visitor"
	ThemeCookie   = "kanoha_theme"

	cookieMaxAge = 365 * 24 * 60 * 60
)

type ctxKey int

const (
	visitorKey ctxKey = iota
	themeKey
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			writeError(w, http.StatusUnsupportedMediaType, "invalid media type")
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// Visitor identifies the browser by the visitor cookie, issuing a new id
// when the cookie is missing or malformed.
func Visitor(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(VisitorCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   cookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), visitorKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hf)
}

func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey).(string)
	return id
}

type ThemeSettings struct {
	Default    domain.Theme
	Switchable bool
}

// Resolve returns the theme cookie value when switching is allowed and the
// cookie holds a known theme, the default otherwise.
func (s ThemeSettings) Resolve(r *http.Request) domain.Theme {
	if !s.Switchable {
		return s.Default
	}
	c, err := r.Cookie(ThemeCookie)
	if err != nil {
		return s.Default
	}
	t, err := domain.ParseTheme(c.Value)
	if err != nil {
		return s.Default
	}
	return t
}

func Theme(s ThemeSettings) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hf := func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), themeKey, s.Resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hf)
	}
}

func ThemeFromContext(ctx context.Context) domain.Theme {
	if t, ok := ctx.Value(themeKey).(domain.Theme); ok {
		return t
	}
	return domain.ThemeLight
}

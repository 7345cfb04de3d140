package httphandler

import (
	"net/http"

	"github.com/kanoha/storefront/internal/core/domain"
)

// GET v1/theme (200 OK)
// POST v1/theme JSON {"theme"} (200 OK, 400 Bad request, 403 Forbidden)

type ThemeHandler struct {
	settings ThemeSettings
}

func RegisterTheme(mux *http.ServeMux, settings ThemeSettings) {
	h := ThemeHandler{settings}
	mux.HandleFunc("GET /api/v1/theme", h.GetTheme)
	mux.HandleFunc("POST /api/v1/theme", h.SetTheme)
}

func (h ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ThemeResponse{
		Theme:      string(h.settings.Resolve(r)),
		Switchable: h.settings.Switchable,
	})
}

func (h ThemeHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	if !h.settings.Switchable {
		writeError(w, http.StatusForbidden, domain.ErrThemeLocked.Error())
		return
	}

	var req ThemeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	t, err := domain.ParseTheme(req.Theme)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    string(t),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: string(t), Switchable: true})
}

func RegisterHealth(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

package web

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// requireAuth redirects anonymous requests to the login page.
func (app *app) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noCache(w)

		if !app.isAuthenticated(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// requireGuest redirects authenticated requests back home.
func (app *app) requireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noCache(w)

		if app.isAuthenticated(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (app *app) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.log.WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
			"method":     r.Method,
			"path":       r.URL.Path,
			"remote":     r.RemoteAddr,
		}).Info("Request received")

		next.ServeHTTP(w, r)
	})
}

// noCache keeps browsers from serving auth-sensitive pages from cache.
func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}

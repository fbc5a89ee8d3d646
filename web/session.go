package web

import (
	"net/http"

	"github.com/muhammadusama-15/Todo-List-Website/internal/models"
)

const SessionCookieName = "session_token"

// setSessionCookie stores the session token in an HttpOnly cookie.
func (app *app) setSessionCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(app.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   false, // set true behind HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

func (app *app) clearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)
}

func (app *app) getSessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// getCurrentUser resolves the request's session cookie to a user, or nil
// for anonymous requests.
func (app *app) getCurrentUser(r *http.Request) *models.User {
	token := app.getSessionToken(r)
	if token == "" {
		return nil
	}

	user, err := app.SessionService.UserByToken(token)
	if err != nil {
		return nil
	}

	return user
}

func (app *app) isAuthenticated(r *http.Request) bool {
	return app.getCurrentUser(r) != nil
}

package web

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/muhammadusama-15/Todo-List-Website/internal/database"
	"github.com/muhammadusama-15/Todo-List-Website/internal/forms"
)

func (app *app) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.RenderHTML(w, r, "register.page.html", &HTMLData{Title: "Register"})
		return
	}

	if err := r.ParseForm(); err != nil {
		app.ClientError(w, http.StatusBadRequest)
		return
	}

	form := forms.NewRegisterForm(r.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		data := &HTMLData{
			Title:      "Register",
			FormErrors: errs,
			FormData: map[string]string{
				"name":  form.Name,
				"email": form.Email,
			},
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	app.log.WithField("email", form.Email).Info("Attempting to register user")

	user, err := app.UserService.Create(form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, database.ErrEmailExists) {
			app.flash(w, "This email is associated with an account. Try logging in instead.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		app.ServerError(w, err)
		return
	}

	app.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	session, err := app.SessionService.Create(user.ID)
	if err != nil {
		app.log.WithError(err).WithField("user_id", user.ID).Error("Failed to create session")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	app.setSessionCookie(w, session.Token)

	http.Redirect(w, r, "/todo_list", http.StatusSeeOther)
}

func (app *app) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.RenderHTML(w, r, "login.page.html", &HTMLData{Title: "Login"})
		return
	}

	if err := r.ParseForm(); err != nil {
		app.ClientError(w, http.StatusBadRequest)
		return
	}

	form := forms.NewLoginForm(r.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		data := &HTMLData{
			Title:      "Login",
			FormErrors: errs,
			FormData:   map[string]string{"email": form.Email},
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	app.log.WithField("email", form.Email).Info("Attempting to login user")

	user, err := app.UserService.Authenticate(form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrEmailNotFound):
			app.flash(w, "This email is not registered. Try signing up with us.")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
		case errors.Is(err, database.ErrInvalidCredentials):
			data := &HTMLData{
				Title:    "Login",
				Flash:    "Kindly recheck the entered password.",
				FormData: map[string]string{"email": form.Email},
			}
			app.RenderHTML(w, r, "login.page.html", data)
		default:
			app.ServerError(w, err)
		}
		return
	}

	session, err := app.SessionService.Create(user.ID)
	if err != nil {
		app.ServerError(w, err)
		return
	}

	app.setSessionCookie(w, session.Token)

	app.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("Login successful")

	http.Redirect(w, r, "/todo_list", http.StatusSeeOther)
}

func (app *app) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	token := app.getSessionToken(r)
	if token != "" {
		if err := app.SessionService.Delete(token); err != nil {
			app.log.WithError(err).Error("Failed to delete session")
		}
	}

	app.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

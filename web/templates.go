package web

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"
	"time"
	"unicode"

	"github.com/muhammadusama-15/Todo-List-Website/internal/models"
)

type HTMLData struct {
	Title       string
	Path        string
	Flash       string
	FormErrors  map[string]string
	FormData    map[string]string // submitted values, re-filled on error
	CurrentUser *models.User
	Task        *models.Task
	Tasks       []*models.Task
}

var functions = template.FuncMap{
	"cap": func(str string) string {
		if str == "" {
			return ""
		}
		runes := []rune(str)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}

func (app *app) RenderHTML(w http.ResponseWriter, r *http.Request, pageFile string, data *HTMLData) {
	if data == nil {
		data = &HTMLData{}
	}

	data.Path = r.URL.Path

	if data.CurrentUser == nil {
		data.CurrentUser = app.getCurrentUser(r)
	}

	if data.Flash == "" {
		data.Flash = app.popFlash(w, r)
	}

	files := []string{
		filepath.Join(app.cfg.HTMLDir, "base.layout.html"),
		filepath.Join(app.cfg.HTMLDir, pageFile),
	}

	ts, err := template.New("").Funcs(functions).ParseFiles(files...)
	if err != nil {
		app.ServerError(w, err)
		return
	}

	ts, err = ts.ParseGlob(filepath.Join(app.cfg.HTMLDir, "*.partial.html"))
	if err != nil {
		app.ServerError(w, err)
		return
	}

	// Render into a buffer first so template failures still produce a
	// clean 500 instead of a half-written page.
	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		app.ServerError(w, err)
		return
	}

	buf.WriteTo(w)
}

package web

import "net/http"

func (app *app) home(w http.ResponseWriter, r *http.Request) {
	// The root pattern catches every unregistered path.
	if r.URL.Path != "/" {
		app.NotFound(w)
		return
	}

	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	data := &HTMLData{
		Title:       "Home",
		CurrentUser: app.getCurrentUser(r),
	}

	app.RenderHTML(w, r, "home.page.html", data)
}

package web

import (
	"net/http"
	"strings"
)

func (app *app) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(app.cfg.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	mux.HandleFunc("/", app.home)

	// Guest-only routes
	mux.HandleFunc("/register", app.requireGuest(app.register))
	mux.HandleFunc("/login", app.requireGuest(app.login))

	// Authenticated routes
	mux.HandleFunc("/logout", app.requireAuth(app.logout))
	mux.HandleFunc("/todo_list", app.requireAuth(app.todoList))
	mux.HandleFunc("/add_task", app.requireAuth(app.addTask))

	// Title-parameterized routes
	mux.HandleFunc("/todo_list/", app.requireAuth(app.showTask))
	mux.HandleFunc("/delete_task/", app.requireAuth(app.deleteTask))
	mux.HandleFunc("/complete_task/", app.requireAuth(app.completeTask))

	return app.logRequest(mux)
}

// titleParam extracts the trailing title segment from paths like
// /todo_list/<title>. An empty or nested remainder is not a match.
func titleParam(path, prefix string) (string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == "" || rest == path || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

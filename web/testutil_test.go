package web

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/muhammadusama-15/Todo-List-Website/internal/config"
	"github.com/muhammadusama-15/Todo-List-Website/internal/database"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		HTMLDir:    "../ui/html",
		StaticDir:  "../ui/static",
		SessionTTL: 24 * time.Hour,
	}

	return &app{
		log:            log,
		cfg:            cfg,
		Database:       db,
		UserService:    database.NewUserService(db),
		SessionService: database.NewSessionService(db, cfg.SessionTTL),
		TaskService:    database.NewTaskService(db),
	}
}

func newTestServer(t *testing.T) (*app, *httptest.Server) {
	t.Helper()

	app := newTestApp(t)
	srv := httptest.NewServer(app.routes())
	t.Cleanup(srv.Close)

	return app, srv
}

// newTestClient returns a client with its own cookie jar that reports
// redirects instead of following them.
func newTestClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func postForm(t *testing.T, client *http.Client, url string, values url.Values) *http.Response {
	t.Helper()

	resp, err := client.PostForm(url, values)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if got := resp.Header.Get("Location"); got != location {
		t.Fatalf("redirect to %q, want %q", got, location)
	}
}

// register signs up a fresh user through the HTTP surface, leaving the
// client's jar holding an authenticated session.
func register(t *testing.T, client *http.Client, baseURL, name, email, password string) {
	t.Helper()

	resp := postForm(t, client, baseURL+"/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	assertRedirect(t, resp, "/todo_list")
}

func addTask(t *testing.T, client *http.Client, baseURL, title, description, deadline, status string) {
	t.Helper()

	resp := postForm(t, client, baseURL+"/add_task", url.Values{
		"title":       {title},
		"description": {description},
		"deadline":    {deadline},
		"status":      {status},
	})
	assertRedirect(t, resp, "/todo_list")
}

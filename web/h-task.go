package web

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/muhammadusama-15/Todo-List-Website/internal/database"
	"github.com/muhammadusama-15/Todo-List-Website/internal/forms"
)

// todoList shows the current user's tasks.
func (app *app) todoList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	user := app.getCurrentUser(r)

	tasks, err := app.TaskService.ListByAuthor(user.ID)
	if err != nil {
		app.ServerError(w, err)
		return
	}

	data := &HTMLData{
		Title:       "To-Do List",
		CurrentUser: user,
		Tasks:       tasks,
	}

	app.RenderHTML(w, r, "todo.page.html", data)
}

func (app *app) addTask(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)

	if r.Method != http.MethodPost {
		app.RenderHTML(w, r, "add-task.page.html", &HTMLData{
			Title:       "Add Task",
			CurrentUser: user,
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		app.ClientError(w, http.StatusBadRequest)
		return
	}

	form := forms.NewTaskFormFrom(r.PostForm)
	if errs := form.Validate(); len(errs) > 0 {
		data := &HTMLData{
			Title:       "Add Task",
			CurrentUser: user,
			FormErrors:  errs,
			FormData: map[string]string{
				"title":       form.Title,
				"description": form.Description,
				"deadline":    form.Deadline,
				"status":      form.Status,
			},
		}
		app.RenderHTML(w, r, "add-task.page.html", data)
		return
	}

	task, err := app.TaskService.Create(user.ID, form.Title, form.Description, form.Deadline, form.Status)
	if err != nil {
		app.ServerError(w, err)
		return
	}

	app.log.WithFields(logrus.Fields{
		"task_id": task.ID,
		"title":   task.Title,
		"user_id": user.ID,
	}).Info("Task created")

	http.Redirect(w, r, "/todo_list", http.StatusSeeOther)
}

// showTask renders a single task addressed by title, scoped to its owner.
func (app *app) showTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	title, ok := titleParam(r.URL.Path, "/todo_list/")
	if !ok {
		app.NotFound(w)
		return
	}

	user := app.getCurrentUser(r)

	task, err := app.TaskService.GetByTitle(user.ID, title)
	if err != nil {
		if errors.Is(err, database.ErrTaskNotFound) {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	data := &HTMLData{
		Title:       task.Title,
		CurrentUser: user,
		Task:        task,
	}

	app.RenderHTML(w, r, "task.page.html", data)
}

func (app *app) deleteTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	title, ok := titleParam(r.URL.Path, "/delete_task/")
	if !ok {
		app.NotFound(w)
		return
	}

	user := app.getCurrentUser(r)

	if err := app.TaskService.Delete(user.ID, title); err != nil {
		if errors.Is(err, database.ErrTaskNotFound) {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	app.log.WithFields(logrus.Fields{
		"title":   title,
		"user_id": user.ID,
	}).Info("Task deleted")

	http.Redirect(w, r, "/todo_list", http.StatusSeeOther)
}

func (app *app) completeTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	title, ok := titleParam(r.URL.Path, "/complete_task/")
	if !ok {
		app.NotFound(w)
		return
	}

	user := app.getCurrentUser(r)

	if err := app.TaskService.Complete(user.ID, title); err != nil {
		if errors.Is(err, database.ErrTaskNotFound) {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	app.log.WithFields(logrus.Fields{
		"title":   title,
		"user_id": user.ID,
	}).Info("Task completed")

	http.Redirect(w, r, "/todo_list", http.StatusSeeOther)
}

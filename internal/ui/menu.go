package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"todo-tracker/internal/repository"
	"todo-tracker/internal/service"
)

// Menu is the interactive console surface. It parses input, calls services
// and renders their results; all decisions live below it.
type Menu struct {
	tasks      *service.TaskService
	categories *service.CategoryService
	users      *service.UserService
	in         *bufio.Scanner
	out        io.Writer
}

func NewMenu(tasks *service.TaskService, categories *service.CategoryService, users *service.UserService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		tasks:      tasks,
		categories: categories,
		users:      users,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run drives the menu loop until the user quits, input ends or the context
// is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, titleStyle.Render("## Todo Tracker ##"))
		fmt.Fprintln(m.out, faintStyle.Render("-------------------------------"))
		fmt.Fprintln(m.out, " 1. New todo")
		fmt.Fprintln(m.out, " 2. Show todos")
		fmt.Fprintln(m.out, " 3. Todo details")
		fmt.Fprintln(m.out, " 4. Edit a todo")
		fmt.Fprintln(m.out, " 5. Mark a todo done")
		fmt.Fprintln(m.out, " 6. Delete a todo")
		fmt.Fprintln(m.out, " 7. Categories")
		fmt.Fprintln(m.out, " 8. Todos by category")
		fmt.Fprintln(m.out, " 9. Todos by user")
		fmt.Fprintln(m.out, "10. Users")
		fmt.Fprintln(m.out, " 0. Quit")
		fmt.Fprintln(m.out, faintStyle.Render("-------------------------------"))

		choice, ok := m.prompt("Choice")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.createTask(ctx)
		case "2":
			m.listTasks(ctx)
		case "3":
			m.taskDetails(ctx)
		case "4":
			m.updateTask(ctx)
		case "5":
			m.markDone(ctx)
		case "6":
			m.deleteTask(ctx)
		case "7":
			m.listCategories(ctx)
		case "8":
			m.tasksByCategory(ctx)
		case "9":
			m.tasksByUser(ctx)
		case "10":
			m.listUsers(ctx)
		case "0", "q", "quit", "exit":
			fmt.Fprintln(m.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(m.out, errorStyle.Render("Invalid choice, try again."))
		}
	}
}

func (m *Menu) createTask(ctx context.Context) {
	fmt.Fprintln(m.out, headerStyle.Render("Create a new todo"))
	fmt.Fprintln(m.out, faintStyle.Render("-- who are you? --"))

	var input service.CreateTaskInput
	input.Username, _ = m.prompt("Username")
	input.Email, _ = m.prompt("Email")
	input.Password, _ = m.prompt("Password")

	fmt.Fprintln(m.out, faintStyle.Render("-- the todo --"))
	input.Title, _ = m.prompt("Title")
	input.CategoryName, _ = m.prompt("Category")
	input.Description, _ = m.prompt("Description (optional)")
	input.Deadline = m.promptDate("Deadline YYYY-MM-DD (optional)")
	input.PriorityLevel, _ = m.prompt("Priority (1-3)")

	fmt.Fprintln(m.out, faintStyle.Render("-- where? leave empty to skip --"))
	input.LocationName, _ = m.prompt("Location")
	if input.LocationName != "" {
		input.Street, _ = m.prompt("Street")
		input.PostalCode, _ = m.prompt("Postal code")
		input.City, _ = m.prompt("City")
	}

	task, err := m.tasks.Create(ctx, input)
	if err != nil {
		m.renderError(err)
		return
	}
	fmt.Fprintln(m.out, successStyle.Render(fmt.Sprintf("%q has been created (#%d).", task.Title, task.ID)))
}

func (m *Menu) listTasks(ctx context.Context) {
	fmt.Fprintln(m.out, headerStyle.Render("Registered todos"))
	tasks, err := m.tasks.GetAll(ctx)
	if err != nil {
		m.renderError(err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "There are no todos yet.")
		return
	}
	for _, task := range tasks {
		m.renderTaskLine(task)
	}
}

func (m *Menu) taskDetails(ctx context.Context) {
	title, ok := m.prompt("Title of the todo to inspect")
	if !ok {
		return
	}
	task, err := m.tasks.GetByTitle(ctx, title)
	if err != nil {
		m.renderError(err)
		return
	}

	fmt.Fprintln(m.out, headerStyle.Render(fmt.Sprintf("Category %s", task.CategoryName)))
	fmt.Fprintf(m.out, "Title:       %s\n", task.Title)
	fmt.Fprintf(m.out, "Description: %s\n", task.Description)
	fmt.Fprintf(m.out, "Deadline:    %s\n", formatDeadline(task.Deadline))
	fmt.Fprintf(m.out, "Status:      %s\n", task.Status)
	fmt.Fprintf(m.out, "Priority:    %s\n", task.PriorityLevel)
	fmt.Fprintf(m.out, "Owner:       %s <%s>\n", task.Username, task.Email)
	if task.LocationName != "" {
		fmt.Fprintf(m.out, "Location:    %s, %s %s %s\n", task.LocationName, task.Street, task.PostalCode, task.City)
	}
}

func (m *Menu) updateTask(ctx context.Context) {
	id, ok := m.promptID("Id of the todo to edit")
	if !ok {
		return
	}

	var input service.UpdateTaskInput
	input.ID = id
	input.Title, _ = m.prompt("New title")
	input.Description, _ = m.prompt("New description")
	input.Deadline = m.promptDate("New deadline YYYY-MM-DD (optional)")
	input.Status, _ = m.prompt("New status (todo/done)")
	input.CategoryName, _ = m.prompt("Category")
	priv, _ := m.prompt("Private category? (y/n)")
	input.IsPrivate = strings.EqualFold(priv, "y") || strings.EqualFold(priv, "yes")
	input.PriorityLevel, _ = m.prompt("Priority (1-3)")
	input.LocationName, _ = m.prompt("Location (empty clears it)")

	task, err := m.tasks.Update(ctx, input)
	if err != nil {
		m.renderError(err)
		return
	}
	fmt.Fprintln(m.out, successStyle.Render(fmt.Sprintf("%q has been updated.", task.Title)))
}

func (m *Menu) markDone(ctx context.Context) {
	id, ok := m.promptID("Id of the todo to mark done")
	if !ok {
		return
	}
	task, err := m.tasks.MarkDone(ctx, id)
	if err != nil {
		m.renderError(err)
		return
	}
	fmt.Fprintln(m.out, successStyle.Render(fmt.Sprintf("%q is done.", task.Title)))
}

func (m *Menu) deleteTask(ctx context.Context) {
	id, ok := m.promptID("Id of the todo to delete")
	if !ok {
		return
	}
	deleted, err := m.tasks.Delete(ctx, id)
	if err != nil {
		m.renderError(err)
		return
	}
	if !deleted {
		fmt.Fprintln(m.out, "No todo with that id.")
		return
	}
	fmt.Fprintln(m.out, successStyle.Render("Todo deleted."))
}

func (m *Menu) listCategories(ctx context.Context) {
	fmt.Fprintln(m.out, headerStyle.Render("Categories"))
	categories, err := m.categories.GetAll(ctx)
	if err != nil {
		m.renderError(err)
		return
	}
	if len(categories) == 0 {
		fmt.Fprintln(m.out, "No categories yet. They appear when todos are created.")
		return
	}
	for _, category := range categories {
		line := fmt.Sprintf(" - %s (%d todos)", category.Name, category.TaskCount)
		if category.IsPrivate {
			line += " [private]"
		}
		fmt.Fprintln(m.out, line)
	}
}

func (m *Menu) tasksByCategory(ctx context.Context) {
	name, ok := m.prompt("Category name")
	if !ok {
		return
	}
	tasks, err := m.tasks.TasksForCategory(ctx, name)
	if err != nil {
		m.renderError(err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintf(m.out, "No todos under %q.\n", name)
		return
	}
	for _, task := range tasks {
		m.renderTaskLine(task)
	}
}

func (m *Menu) tasksByUser(ctx context.Context) {
	username, ok := m.prompt("Username")
	if !ok {
		return
	}
	tasks, err := m.tasks.TasksForUser(ctx, username)
	if err != nil {
		m.renderError(err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintf(m.out, "No todos for %q.\n", username)
		return
	}
	for _, task := range tasks {
		m.renderTaskLine(task)
	}
}

func (m *Menu) listUsers(ctx context.Context) {
	fmt.Fprintln(m.out, headerStyle.Render("Users"))
	users, err := m.users.GetAll(ctx)
	if err != nil {
		m.renderError(err)
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(m.out, "No users yet.")
		return
	}
	for _, user := range users {
		fmt.Fprintf(m.out, " - %s <%s> (%d todos)\n", user.Username, user.Email, user.TaskCount)
	}
}

func (m *Menu) renderTaskLine(task service.TaskDTO) {
	marker := " "
	if task.Status == "done" {
		marker = "x"
	}
	fmt.Fprintf(m.out, " [%s] #%d %s  %s\n", marker, task.ID, task.Title,
		faintStyle.Render(fmt.Sprintf("(%s, prio %s, due %s)", task.CategoryName, task.PriorityLevel, formatDeadline(task.Deadline))))
}

// renderError maps service failures to messages; nothing here is fatal.
func (m *Menu) renderError(err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		fmt.Fprintln(m.out, "Nothing found.")
	case errors.Is(err, service.ErrAlreadyExists):
		fmt.Fprintln(m.out, errorStyle.Render("That one already exists."))
	case errors.Is(err, service.ErrDependencyFailed):
		fmt.Fprintln(m.out, errorStyle.Render("Could not prepare the related entries: "+err.Error()))
	default:
		fmt.Fprintln(m.out, errorStyle.Render("Something went wrong: "+err.Error()))
	}
}

// prompt reads one trimmed line; ok is false when input has ended.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptID(label string) (uint, bool) {
	for {
		raw, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			return uint(id), true
		}
		fmt.Fprintln(m.out, errorStyle.Render("The id must be a number."))
	}
}

func (m *Menu) promptDate(label string) *time.Time {
	raw, ok := m.prompt(label)
	if !ok || raw == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		fmt.Fprintln(m.out, faintStyle.Render("Unrecognized date, leaving it empty."))
		return nil
	}
	return &parsed
}

func formatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return "-"
	}
	return deadline.Format("2006-01-02")
}

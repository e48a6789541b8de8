package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/presentation"
	"task-manager/internal/validation"
)

const (
	bannerWidth = 50
	menuWidth   = 48
)

// Menu is the interactive text menu driving the task manager
type Menu struct {
	app       *App
	scanner   *bufio.Scanner
	out       io.Writer
	style     presentation.Style
	validator *validation.TaskValidator
	actions   *ActionRegistry
}

// NewMenu creates a menu reading choices from in and writing prompts to out
func NewMenu(app *App, in io.Reader, out io.Writer) *Menu {
	m := &Menu{
		app:       app,
		scanner:   bufio.NewScanner(in),
		out:       out,
		style:     app.presenter.Style(),
		validator: validation.NewTaskValidator(),
		actions:   NewActionRegistry(),
	}

	m.actions.Register(1, "Add Task", "➕", ActionFunc(m.handleAddTask))
	m.actions.Register(2, "List All Tasks", "📋", ActionFunc(m.handleListTasks))
	m.actions.Register(3, "Edit Task", "✏️", ActionFunc(m.handleEditTask))
	m.actions.Register(4, "Mark Task as Completed", "✅", ActionFunc(m.handleCompleteTask))
	m.actions.Register(5, "Remove Task", "🗑️", ActionFunc(m.handleRemoveTask))
	m.actions.Register(0, "Exit", "🚪", ActionFunc(func(context.Context) error { return nil }))
	return m
}

// Run shows the menu until the user exits or input ends
func (m *Menu) Run(ctx context.Context) error {
	m.displayWelcome()

	for {
		m.displayMenu()
		choice, ok := m.readInt("Enter your choice: ")
		if !ok || choice == 0 {
			m.displayGoodbye()
			return m.scanner.Err()
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		err := m.actions.Execute(ctx, choice)

		switch {
		case err == nil:
		case errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
			m.app.presenter.DisplayError("Invalid option. Please try again.")
		default:
			logging.Debugf("menu: choice %d failed: %v\n", choice, err)
			m.app.presenter.DisplayError(errors.GetUserMessage(err))
		}
	}
}

func (m *Menu) handleAddTask(ctx context.Context) error {
	m.displayHeading("➕", "ADD NEW TASK")

	name, ok := m.readLine("Task name: ")
	if !ok {
		return nil
	}
	if name == "" {
		m.app.presenter.DisplayError("Task name cannot be empty.")
		return nil
	}

	description, ok := m.readLine("Description (optional): ")
	if !ok {
		return nil
	}
	m.bounded(ctx, func(ctx context.Context) { m.app.manager.AddTask(ctx, name, description) })
	return nil
}

func (m *Menu) handleListTasks(ctx context.Context) error {
	fmt.Fprintln(m.out)
	m.bounded(ctx, m.app.manager.ListTasks)
	return nil
}

func (m *Menu) handleEditTask(ctx context.Context) error {
	m.displayHeading("✏️ ", "EDIT TASK")

	position, ok, err := m.choosePosition(ctx, "edit")
	if err != nil || !ok {
		return err
	}

	name, ok := m.readLine("New task name: ")
	if !ok {
		return nil
	}
	if name == "" {
		m.app.presenter.DisplayError("Task name cannot be empty.")
		return nil
	}

	description, ok := m.readLine("New description (optional): ")
	if !ok {
		return nil
	}
	m.bounded(ctx, func(ctx context.Context) { m.app.manager.EditTask(ctx, position, name, description) })
	return nil
}

func (m *Menu) handleCompleteTask(ctx context.Context) error {
	m.displayHeading("✅", "MARK TASK AS COMPLETED")

	position, ok, err := m.choosePosition(ctx, "complete")
	if err != nil || !ok {
		return err
	}
	m.bounded(ctx, func(ctx context.Context) { m.app.manager.CompleteTask(ctx, position) })
	return nil
}

func (m *Menu) handleRemoveTask(ctx context.Context) error {
	m.displayHeading("🗑️ ", "REMOVE TASK")

	position, ok, err := m.choosePosition(ctx, "remove")
	if err != nil || !ok {
		return err
	}
	m.bounded(ctx, func(ctx context.Context) { m.app.manager.RemoveTask(ctx, position) })
	return nil
}

// choosePosition lists the tasks and asks for a 1-based position.
// ok is false when there is nothing to choose or the input was rejected.
func (m *Menu) choosePosition(ctx context.Context, verb string) (int, bool, error) {
	countCtx, cancel := m.app.actionContext(ctx)
	count, err := m.app.manager.GetTaskCount(countCtx)
	cancel()
	if err != nil {
		return 0, false, err
	}
	if count == 0 {
		m.app.presenter.DisplayInfo(fmt.Sprintf("No tasks available to %s.", verb))
		return 0, false, nil
	}

	m.bounded(ctx, m.app.manager.ListTasks)
	position, ok := m.readInt(fmt.Sprintf("\nEnter task number to %s: ", verb))
	if !ok {
		return 0, false, nil
	}
	if err := m.validator.ValidatePosition(position); err != nil {
		m.app.presenter.DisplayError("Invalid task number.")
		return 0, false, nil
	}
	return position, true, nil
}

// bounded runs a single core call under the action timeout.
// Prompts for input always run outside the deadline.
func (m *Menu) bounded(ctx context.Context, call func(context.Context)) {
	actionCtx, cancel := m.app.actionContext(ctx)
	defer cancel()
	call(actionCtx)
}

// readLine prompts and returns the next trimmed line; ok is false at end of input
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.scanner.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

// readInt reads a line as an integer. Non-numeric input yields -1.
func (m *Menu) readInt(prompt string) (int, bool) {
	line, ok := m.readLine(prompt)
	if !ok {
		return 0, false
	}
	return ParseChoice(line), true
}

// ParseChoice converts trimmed menu input to a number, or -1 when it is not one
func ParseChoice(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return -1
	}
	return n
}

func (m *Menu) displayWelcome() {
	rule := strings.Repeat(m.style.Banner, bannerWidth)
	fmt.Fprintf(m.out, "\n%s\n     %s\n%s\n\n", rule, m.decorate("📋", "Welcome to Task Manager Application"), rule)
}

func (m *Menu) displayGoodbye() {
	rule := strings.Repeat(m.style.Banner, bannerWidth)
	fmt.Fprintf(m.out, "\n%s\n   %s\n%s\n\n", rule, m.decorate("👋", "Thank you for using Task Manager!"), rule)
}

func (m *Menu) displayHeading(icon, title string) {
	fmt.Fprintf(m.out, "\n%s\n%s\n", m.decorate(icon, title), strings.Repeat(m.style.Rule, 40))
}

func (m *Menu) decorate(icon, text string) string {
	if !m.style.Emoji {
		return text
	}
	return icon + " " + text
}

func (m *Menu) displayMenu() {
	var b strings.Builder
	if m.style.Emoji {
		b.WriteString("\n┌" + strings.Repeat("─", menuWidth) + "┐\n")
		b.WriteString(boxLine("│", centre("MAIN MENU", menuWidth)))
		b.WriteString("├" + strings.Repeat("─", menuWidth) + "┤\n")
	} else {
		b.WriteString("\n+" + strings.Repeat("-", menuWidth) + "+\n")
		b.WriteString(boxLine("|", centre("MAIN MENU", menuWidth)))
		b.WriteString("+" + strings.Repeat("-", menuWidth) + "+\n")
	}

	for _, choice := range m.actions.Choices() {
		entry := m.actions.entries[choice]
		if m.style.Emoji {
			b.WriteString(boxLine("│", fmt.Sprintf("  %d. %s %s", choice, entry.icon, entry.label)))
		} else {
			b.WriteString(boxLine("|", fmt.Sprintf("  %d. %s", choice, entry.label)))
		}
	}

	if m.style.Emoji {
		b.WriteString("└" + strings.Repeat("─", menuWidth) + "┘\n")
	} else {
		b.WriteString("+" + strings.Repeat("-", menuWidth) + "+\n")
	}
	fmt.Fprint(m.out, b.String())
}

// boxLine pads content to the menu width in terminal columns
func boxLine(edge, content string) string {
	return edge + runewidth.FillRight(content, menuWidth) + edge + "\n"
}

func centre(text string, width int) string {
	left := (width - runewidth.StringWidth(text)) / 2
	if left < 0 {
		return text
	}
	return strings.Repeat(" ", left) + text
}

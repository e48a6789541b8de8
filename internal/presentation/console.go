package presentation

import (
	"fmt"
	"io"
	"os"
	"strings"

	"task-manager/internal/domain"
)

const defaultSeparatorWidth = 40

// ConsolePresenter writes tasks and messages as lines of text
type ConsolePresenter struct {
	out       io.Writer
	style     Style
	separator string
}

// NewConsolePresenter creates a presenter writing to out. A nil writer means stdout
// and a non-positive width uses the default separator width.
func NewConsolePresenter(out io.Writer, style Style, separatorWidth int) *ConsolePresenter {
	if out == nil {
		out = os.Stdout
	}
	if separatorWidth <= 0 {
		separatorWidth = defaultSeparatorWidth
	}
	return &ConsolePresenter{
		out:       out,
		style:     style,
		separator: strings.Repeat(style.Rule, separatorWidth),
	}
}

// Style returns the markers this presenter decorates output with
func (p *ConsolePresenter) Style() Style {
	return p.style
}

// Separator returns the horizontal rule framing task lists
func (p *ConsolePresenter) Separator() string {
	return p.separator
}

// DisplayTask prints one task as "[index] name[ marker] - description"
func (p *ConsolePresenter) DisplayTask(task *domain.Task, index int) {
	if task == nil {
		return
	}
	marker := ""
	if task.IsCompleted() {
		marker = p.style.Completed
	}
	description := task.Description()
	if description == "" {
		description = "No description"
	}
	fmt.Fprintf(p.out, "[%d] %s%s - %s\n", index, task.Name(), marker, description)
}

// DisplayTasks prints the framed task list, or an info line when there is nothing to show
func (p *ConsolePresenter) DisplayTasks(tasks []*domain.Task) {
	if len(tasks) == 0 {
		p.DisplayInfo("No tasks found.")
		return
	}

	fmt.Fprintln(p.out, p.separator)
	fmt.Fprintf(p.out, "%s (%d tasks)\n", p.style.ListTitle, len(tasks))
	fmt.Fprintln(p.out, p.separator)
	for i, task := range tasks {
		p.DisplayTask(task, i+1)
	}
	fmt.Fprintln(p.out, p.separator)
}

func (p *ConsolePresenter) DisplaySuccess(message string) {
	fmt.Fprintln(p.out, p.style.Success+message)
}

func (p *ConsolePresenter) DisplayError(message string) {
	fmt.Fprintln(p.out, p.style.Error+message)
}

func (p *ConsolePresenter) DisplayInfo(message string) {
	fmt.Fprintln(p.out, p.style.Info+message)
}

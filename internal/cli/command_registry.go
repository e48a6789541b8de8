package cli

import (
	"context"
	"sort"
	"strconv"

	"task-manager/internal/errors"
)

// Action is one entry of the main menu
type Action interface {
	Execute(ctx context.Context) error
}

// ActionFunc adapts a function to the Action interface
type ActionFunc func(ctx context.Context) error

func (f ActionFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

type menuEntry struct {
	label  string
	icon   string
	action Action
}

// ActionRegistry maps menu choices to actions
type ActionRegistry struct {
	entries map[int]menuEntry
}

// NewActionRegistry creates an empty registry
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{entries: make(map[int]menuEntry)}
}

// Register adds an action under a menu choice
func (r *ActionRegistry) Register(choice int, label, icon string, action Action) {
	r.entries[choice] = menuEntry{label: label, icon: icon, action: action}
}

// Execute runs the action registered for choice
func (r *ActionRegistry) Execute(ctx context.Context, choice int) error {
	entry, exists := r.entries[choice]
	if !exists {
		return errors.NewInvalidInputError("choice", strconv.Itoa(choice), "unknown menu option")
	}
	return entry.action.Execute(ctx)
}

// Choices returns the registered choices in menu order. Zero sorts last.
func (r *ActionRegistry) Choices() []int {
	choices := make([]int, 0, len(r.entries))
	for choice := range r.entries {
		choices = append(choices, choice)
	}
	sort.Slice(choices, func(i, j int) bool {
		if choices[i] == 0 || choices[j] == 0 {
			return choices[j] == 0 && choices[i] != 0
		}
		return choices[i] < choices[j]
	})
	return choices
}

package validation

// TaskNameField is the field name reported for task name failures.
const TaskNameField = "task_name"

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator that only requires a non-blank name
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithLimits creates a task validator that also caps the name length
func NewTaskValidatorWithLimits(maxNameLength int) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithLimits(maxNameLength),
	}
}

// ValidateTaskName validates a task name for creation or update
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError(TaskNameField, "Task name")
		return validationError
	}

	return tv.ValidateTaskNameLength(trimmedName)
}

// ValidateTaskNameLength checks only the length cap of the trimmed name.
// Blank names pass here.
func (tv *TaskValidator) ValidateTaskNameLength(name string) error {
	trimmedName := tv.validator.TrimAndValidateString(name)
	if tv.validator.IsValidTaskNameLength(trimmedName) {
		return nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidLengthError(TaskNameField, "Task name", trimmedName, tv.validator.MaxNameLength())
	return validationError
}

// ValidatePosition validates a user-facing 1-based task position
func (tv *TaskValidator) ValidatePosition(position int) error {
	if !tv.validator.IsValidPosition(position) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("position", position, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}

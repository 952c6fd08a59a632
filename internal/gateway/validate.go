package gateway

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wanjala-dev/duetrack/internal/api"
)

// Input carries the user-entered fields for create and update. Validation
// tags define the enumerations; the due-date rule needs the clock and lives
// in Validate.
type Input struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"due_date"`
	Priority    string    `json:"priority" validate:"required,oneof=low medium high"`
	Status      string    `json:"status" validate:"required,oneof=pending in_progress completed"`
}

func (in Input) body() api.AssignmentBody {
	return api.AssignmentBody{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		Status:      in.Status,
	}
}

// ValidationError reports per-field problems found before any request is
// sent. Keys are the wire field names so the form can place each message
// next to the offending input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// minDueLead is how far in the future a due date must be at submission time.
const minDueLead = 5 * time.Minute

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the input against the field rules and the due-date lead
// requirement. A nil return means the input is safe to send.
func Validate(in Input, now time.Time) error {
	fields := make(map[string]string)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	// Whitespace-only titles pass `required`; reject them here.
	if strings.TrimSpace(in.Title) == "" && fields["title"] == "" {
		fields["title"] = "please enter a title"
	}
	if strings.TrimSpace(in.Description) == "" && fields["description"] == "" {
		fields["description"] = "please enter a description"
	}

	switch {
	case in.DueDate.IsZero():
		fields["due_date"] = "please pick a due date and time"
	case in.DueDate.Before(now.Add(minDueLead)):
		fields["due_date"] = "the due date must be at least 5 minutes in the future"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "invalid value"
	}
}

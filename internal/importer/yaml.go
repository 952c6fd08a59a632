package importer

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wanjala-dev/duetrack/internal/gateway"
	"github.com/wanjala-dev/duetrack/internal/model"
)

// YAMLAssignment is a single assignment in the bulk-import file. Due dates
// are wall-clock times in the configured reference timezone.
type YAMLAssignment struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	DueDate     string `yaml:"due_date"` // "2006-01-02 15:04" or with seconds
	Priority    string `yaml:"priority,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

// YAMLInput is the root of the bulk-import file.
type YAMLInput struct {
	Assignments []YAMLAssignment `yaml:"assignments"`
}

var dueLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}

// Import parses a YAML document and creates each assignment through the
// gateway, so every record gets the same validation as the form. It stops at
// the first failure and returns how many assignments were created.
func Import(ctx context.Context, g *gateway.Gateway, yamlStr string, loc *time.Location) (int, error) {
	var input YAMLInput
	if err := yaml.Unmarshal([]byte(yamlStr), &input); err != nil {
		return 0, fmt.Errorf("YAML parse error: %w", err)
	}
	if len(input.Assignments) == 0 {
		return 0, fmt.Errorf("no assignments found in YAML")
	}

	count := 0
	for _, ya := range input.Assignments {
		in, err := toInput(ya, loc)
		if err != nil {
			return count, fmt.Errorf("assignment %q: %w", ya.Title, err)
		}
		if _, err := g.Create(ctx, in); err != nil {
			return count, fmt.Errorf("create %q: %w", ya.Title, err)
		}
		count++
	}
	return count, nil
}

func toInput(ya YAMLAssignment, loc *time.Location) (gateway.Input, error) {
	in := gateway.Input{
		Title:       ya.Title,
		Description: ya.Description,
		Priority:    ya.Priority,
		Status:      ya.Status,
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if in.Status == "" {
		in.Status = model.StatusPending
	}
	if ya.DueDate != "" {
		due, err := parseDue(ya.DueDate, loc)
		if err != nil {
			return gateway.Input{}, err
		}
		in.DueDate = due
	}
	return in, nil
}

func parseDue(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad due_date %q (want YYYY-MM-DD HH:MM)", s)
}
